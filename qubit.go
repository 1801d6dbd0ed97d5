package unitary

import (
	"math/cmplx"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

// Qubit is an immutable single-qubit state with |0⟩ amplitude alpha and
// |1⟩ amplitude beta. Amplitudes need not be normalized; measurement
// normalizes the Born probabilities itself.
type Qubit struct {
	alpha complex128
	beta  complex128
}

// Basis states.
var (
	KetZero = NewQubit(1, 0)
	KetOne  = NewQubit(0, 1)
)

func NewQubit(alpha, beta complex128) Qubit {
	return Qubit{alpha: alpha, beta: beta}
}

// Amplitudes returns the |0⟩ and |1⟩ amplitudes.
func (q Qubit) Amplitudes() (alpha, beta complex128) {
	return q.alpha, q.beta
}

// Apply returns the state after op acts on q as a column vector. Chaining
// q.Apply(g1).Apply(g2) therefore matches applying g2.Mul(g1) once.
func (q Qubit) Apply(op Operation) Qubit {
	return Qubit{
		alpha: op.a*q.alpha + op.b*q.beta,
		beta:  op.c*q.alpha + op.d*q.beta,
	}
}

// Equal reports exact structural equality of the two amplitudes.
func (q Qubit) Equal(other Qubit) bool {
	return q == other
}

// Probabilities returns the normalized Born probabilities of measuring 0
// and 1. A zero state yields (0, 0).
func (q Qubit) Probabilities() (p0, p1 float64) {
	p0 = cmplx.Abs(q.alpha)
	p0 *= p0
	p1 = cmplx.Abs(q.beta)
	p1 *= p1

	total := p0 + p1
	if total == 0 {
		return 0, 0
	}
	return p0 / total, p1 / total
}

// Measure samples an outcome from the Born probabilities and returns it
// together with the collapsed basis state. The receiver is unchanged.
func (q Qubit) Measure() (int, Qubit) {
	p0, _ := q.Probabilities()

	outcome := 1
	if rand.Float64() < p0 {
		outcome = 0
	}

	errnie.Info("Measure - collapse to |%d⟩ with p0 %v", outcome, p0)

	if outcome == 0 {
		return 0, KetZero
	}
	return 1, KetOne
}
