package unitary

import (
	"math"
	"strconv"
)

// formatScalar renders a complex scalar in its shortest exact form: "1"
// for pure reals, "0.5i" for pure imaginaries, "1+2i" otherwise.
func formatScalar(v complex128) string {
	re, im := real(v), imag(v)
	switch {
	case im == 0:
		return formatReal(re)
	case re == 0:
		return formatReal(im) + "i"
	case im < 0:
		return formatReal(re) + "-" + formatReal(-im) + "i"
	default:
		return formatReal(re) + "+" + formatReal(im) + "i"
	}
}

func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// scalarApproxEqual compares both components within tol.
func scalarApproxEqual(x, y complex128, tol float64) bool {
	return math.Abs(real(x)-real(y)) <= tol && math.Abs(imag(x)-imag(y)) <= tol
}
