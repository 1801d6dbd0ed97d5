// Package unitary represents single-qubit quantum operations as 2×2 complex
// matrices and provides the algebra to construct, combine, and convert them.
package unitary

import (
	"fmt"
	"math/cmplx"
)

/*
Operation is an immutable 2×2 complex matrix

	[[a, b],
	 [c, d]]

intended to be unitary when built through the documented constructors
(Identity, the Pauli gates, Hadamard, FromRotationVector). Unitarity is
never enforced: arbitrary coefficients are accepted, and the results of
Add, Sub, and unconstrained Scale need not be unitary. Every method
returns a new value; an Operation is never mutated after construction.
*/
type Operation struct {
	a, b, c, d complex128
}

// New builds an Operation from its four row-major coefficients.
// Unitarity is the caller's responsibility.
func New(a, b, c, d complex128) Operation {
	return Operation{a: a, b: b, c: c, d: d}
}

// Coefficients returns the entries in row-major a, b, c, d order.
func (op Operation) Coefficients() (a, b, c, d complex128) {
	return op.a, op.b, op.c, op.d
}

// Adjoint returns the conjugate transpose. For unitary operations this
// equals the inverse.
func (op Operation) Adjoint() Operation {
	return New(
		cmplx.Conj(op.a), cmplx.Conj(op.c),
		cmplx.Conj(op.b), cmplx.Conj(op.d),
	)
}

// Scale multiplies every entry by v. Real factors convert implicitly.
func (op Operation) Scale(v complex128) Operation {
	return New(op.a*v, op.b*v, op.c*v, op.d*v)
}

// Add returns the entrywise sum of the two matrices.
func (op Operation) Add(other Operation) Operation {
	return New(op.a+other.a, op.b+other.b, op.c+other.c, op.d+other.d)
}

// Sub returns the entrywise difference of the two matrices.
func (op Operation) Sub(other Operation) Operation {
	return New(op.a-other.a, op.b-other.b, op.c-other.c, op.d-other.d)
}

/*
Mul returns the matrix product op·other, in that order. The product is not
commutative: acting on column state vectors it applies other first and op
second, so reversing the operands yields a different physical operation
whenever the two matrices do not commute.
*/
func (op Operation) Mul(other Operation) Operation {
	return New(
		op.a*other.a+op.b*other.c, op.a*other.b+op.b*other.d,
		op.c*other.a+op.d*other.c, op.c*other.b+op.d*other.d,
	)
}

// Equal reports exact structural equality of the four entries.
func (op Operation) Equal(other Operation) bool {
	return op == other
}

// ApproxEqual reports whether every entry of the two matrices is within
// tol of its counterpart.
func (op Operation) ApproxEqual(other Operation, tol float64) bool {
	return scalarApproxEqual(op.a, other.a, tol) &&
		scalarApproxEqual(op.b, other.b, tol) &&
		scalarApproxEqual(op.c, other.c, tol) &&
		scalarApproxEqual(op.d, other.d, tol)
}

// Trace returns a + d.
func (op Operation) Trace() complex128 {
	return op.a + op.d
}

// Det returns the determinant a·d − b·c.
func (op Operation) Det() complex128 {
	return op.a*op.d - op.b*op.c
}

// IsUnitary reports whether op·op† is the identity within tol. It is an
// advisory check only; no constructor enforces it.
func (op Operation) IsUnitary(tol float64) bool {
	return op.Mul(op.Adjoint()).ApproxEqual(Identity, tol)
}

// String renders the matrix as {{a, b}, {c, d}} using each scalar's
// display form. The nested-brace notation is a contract: external
// symbolic-math tools parse it as written.
func (op Operation) String() string {
	return fmt.Sprintf("{{%s, %s}, {%s, %s}}",
		formatScalar(op.a), formatScalar(op.b),
		formatScalar(op.c), formatScalar(op.d),
	)
}
