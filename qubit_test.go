package unitary

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQubit(t *testing.T) {
	Convey("Given a qubit in the |0⟩ basis state", t, func() {
		Convey("PauliX should flip it to |1⟩", func() {
			flipped := KetZero.Apply(PauliX)
			So(flipped.Equal(KetOne), ShouldBeTrue)

			outcome, collapsed := flipped.Measure()
			So(outcome, ShouldEqual, 1)
			So(collapsed.Equal(KetOne), ShouldBeTrue)
		})

		Convey("Hadamard should split the probabilities evenly", func() {
			p0, p1 := KetZero.Apply(Hadamard).Probabilities()
			So(p0, ShouldAlmostEqual, 0.5, 1e-12)
			So(p1, ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("Measurement should always collapse to a basis state", func() {
			superposed := KetZero.Apply(Hadamard)

			outcomes := make([]int, 0, 20)
			for i := 0; i < 20; i++ {
				outcome, collapsed := superposed.Measure()
				outcomes = append(outcomes, outcome)

				So(outcome, ShouldBeIn, []int{0, 1})
				if outcome == 0 {
					So(collapsed.Equal(KetZero), ShouldBeTrue)
				} else {
					So(collapsed.Equal(KetOne), ShouldBeTrue)
				}
			}
			spew.Dump(outcomes)
		})
	})

	Convey("Given unnormalized amplitudes", t, func() {
		Convey("Probabilities should normalize", func() {
			p0, p1 := NewQubit(3, 4i).Probabilities()
			So(p0, ShouldAlmostEqual, 0.36, 1e-12)
			So(p1, ShouldAlmostEqual, 0.64, 1e-12)
		})

		Convey("The zero state should yield zero probabilities", func() {
			p0, p1 := NewQubit(0, 0).Probabilities()
			So(p0, ShouldEqual, 0.0)
			So(p1, ShouldEqual, 0.0)
		})
	})

	Convey("Given a chain of operations", t, func() {
		Convey("Applying one at a time should match applying the product", func() {
			chained := KetZero.Apply(PauliX).Apply(Hadamard)
			alpha1, beta1 := chained.Amplitudes()
			alpha2, beta2 := KetZero.Apply(Hadamard.Mul(PauliX)).Amplitudes()

			So(real(alpha1), ShouldAlmostEqual, real(alpha2), 1e-12)
			So(imag(alpha1), ShouldAlmostEqual, imag(alpha2), 1e-12)
			So(real(beta1), ShouldAlmostEqual, real(beta2), 1e-12)
			So(imag(beta1), ShouldAlmostEqual, imag(beta2), 1e-12)
		})
	})
}
