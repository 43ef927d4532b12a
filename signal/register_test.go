package signal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mafic/signal"
)

var _ = Describe("RegisterMap", func() {
	var rm *signal.RegisterMap

	BeforeEach(func() {
		rm = signal.NewRegisterMap()
	})

	It("allocates ids monotonically starting at 1, independent of WireMap", func() {
		h1 := signal.AllocRegister(rm, uint32(0))
		h2 := signal.AllocRegister(rm, uint32(0))
		Expect(h1.ID()).To(Equal(uint64(1)))
		Expect(h2.ID()).To(Equal(uint64(2)))
	})

	It("peeks the init value before any drive (P4)", func() {
		h := signal.AllocRegister(rm, uint32(42))
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(42)))
	})

	It("stages a pending value without disturbing current (P3)", func() {
		h := signal.AllocRegister(rm, uint32(0))
		outcome := signal.Stage(rm, h, uint32(99))
		Expect(outcome.Conflict).To(BeFalse())

		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(0)))
	})

	It("reports a conflict on a second stage in the same cycle", func() {
		h := signal.AllocRegister(rm, uint32(0))
		signal.Stage(rm, h, uint32(1))
		outcome := signal.Stage(rm, h, uint32(2))

		Expect(outcome.Conflict).To(BeTrue())
		Expect(outcome.Prev).To(Equal(uint32(1)))
	})

	It("moves pending into current on Commit, and clears pending (P3)", func() {
		h := signal.AllocRegister(rm, uint32(0))
		signal.Stage(rm, h, uint32(7))

		rm.Commit()
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(7)))

		// no value was staged this cycle, so a second commit is a no-op
		rm.Commit()
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(7)))
	})

	It("leaves a register at its current value across a cycle with no stage", func() {
		h := signal.AllocRegister(rm, uint32(5))
		rm.Commit()
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(5)))
	})

	It("restores current to reset_value and clears pending on ResetAll", func() {
		h := signal.AllocRegister(rm, uint32(3))
		signal.Stage(rm, h, uint32(77))
		rm.Commit()
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(77)))

		signal.Stage(rm, h, uint32(123))
		rm.ResetAll()

		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(3)))

		// pending was cleared by ResetAll, so committing now is a no-op
		rm.Commit()
		Expect(signal.PeekRegister(rm, h)).To(Equal(uint32(3)))
	})

	It("panics on an unknown handle", func() {
		other := signal.NewRegisterMap()
		h := signal.AllocRegister(other, uint32(0))

		Expect(func() { signal.PeekRegister(rm, h) }).To(PanicWith(BeAssignableToTypeOf(&signal.UnknownHandleError{})))
	})

	It("panics on a type-mismatched handle (P8)", func() {
		signal.AllocRegister(rm, uint32(0)) // id 1, tagged uint32

		other := signal.NewRegisterMap()
		mismatched := signal.AllocRegister(other, false) // id 1, tagged bool

		Expect(func() {
			signal.PeekRegister(rm, mismatched)
		}).To(PanicWith(BeAssignableToTypeOf(&signal.TypeMismatchError{})))
	})

	It("reports how many registers have been allocated", func() {
		Expect(rm.Len()).To(Equal(0))
		signal.AllocRegister(rm, uint32(0))
		signal.AllocRegister(rm, uint32(0))
		Expect(rm.Len()).To(Equal(2))
	})
})
