package unitary

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
FromCoefficients builds an Operation from an ordered sequence of exactly
four coefficients in a, b, c, d order. Each element may be any Go real or
complex numeric value; everything else is rejected. This is the one
dynamically-typed entry point of the package; every other constructor
enforces its scalar type at the signature level.
*/
func FromCoefficients(coeffs []any) (Operation, error) {
	if len(coeffs) != 4 {
		errnie.Info("FromCoefficients - rejected sequence of length %d", len(coeffs))
		return Operation{}, fmt.Errorf("%w: want 4 coefficients, got %d", ErrInvalidArgument, len(coeffs))
	}

	var entries [4]complex128
	for i, v := range coeffs {
		s, ok := toScalar(v)
		if !ok {
			errnie.Info("FromCoefficients - rejected element %d of type %T", i, v)
			return Operation{}, fmt.Errorf("%w: coefficient %d has non-numeric type %T", ErrInvalidArgument, i, v)
		}
		entries[i] = s
	}

	return New(entries[0], entries[1], entries[2], entries[3]), nil
}

// toScalar widens any Go numeric value to complex128.
func toScalar(v any) (complex128, bool) {
	switch n := v.(type) {
	case complex128:
		return n, true
	case complex64:
		return complex128(n), true
	case float64:
		return complex(n, 0), true
	case float32:
		return complex(float64(n), 0), true
	case int:
		return complex(float64(n), 0), true
	case int8:
		return complex(float64(n), 0), true
	case int16:
		return complex(float64(n), 0), true
	case int32:
		return complex(float64(n), 0), true
	case int64:
		return complex(float64(n), 0), true
	case uint:
		return complex(float64(n), 0), true
	case uint8:
		return complex(float64(n), 0), true
	case uint16:
		return complex(float64(n), 0), true
	case uint32:
		return complex(float64(n), 0), true
	case uint64:
		return complex(float64(n), 0), true
	default:
		return 0, false
	}
}
