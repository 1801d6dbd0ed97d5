package unitary

import "errors"

// ErrInvalidArgument is returned when a coefficient sequence cannot be
// converted into an Operation. It always signals a caller programming
// error; retrying never helps. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("unitary: invalid argument")
