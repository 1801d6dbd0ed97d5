package unitary

import (
	"math"
	"math/cmplx"
)

// The named gates are process-wide constants: built once, read-only after
// initialization, safe to share across goroutines.
var (
	// Identity leaves a state untouched.
	Identity = New(1, 0, 0, 1)

	// PauliX is the bit flip:
	//	[0 1]
	//	[1 0]
	PauliX = New(0, 1, 1, 0)

	// PauliY:
	//	[0 -i]
	//	[i  0]
	PauliY = New(0, -1i, 1i, 0)

	// PauliZ is the phase flip:
	//	[1  0]
	//	[0 -1]
	PauliZ = New(1, 0, 0, -1)

	// Hadamard maps the computational basis onto the diagonal basis:
	//	1/√2 * [1  1]
	//	       [1 -1]
	Hadamard = New(1, 1, 1, -1).Scale(complex(1/math.Sqrt2, 0))

	// S is the quarter-turn phase gate, Phase(π/2).
	S = Phase(math.Pi / 2)

	// T is the eighth-turn phase gate, Phase(π/4). T·T = S.
	T = Phase(math.Pi / 4)
)

// Phase returns the gate that leaves |0⟩ alone and advances |1⟩ by phi:
//
//	[1     0  ]
//	[0  e^(iφ)]
func Phase(phi float64) Operation {
	return New(1, 0, 0, cmplx.Exp(complex(0, phi)))
}

// RX returns the rotation by theta about the X axis.
func RX(theta float64) Operation {
	cos := complex(math.Cos(theta/2), 0)
	isin := complex(0, math.Sin(theta/2))
	return New(cos, -isin, -isin, cos)
}

// RY returns the rotation by theta about the Y axis.
func RY(theta float64) Operation {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	return New(cos, -sin, sin, cos)
}

// RZ returns the rotation by theta about the Z axis. It equals Phase(theta)
// up to a global phase of e^(-iθ/2).
func RZ(theta float64) Operation {
	return New(cmplx.Exp(complex(0, -theta/2)), 0, 0, cmplx.Exp(complex(0, theta/2)))
}
