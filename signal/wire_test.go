package signal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mafic/signal"
)

var _ = Describe("WireMap", func() {
	var wm *signal.WireMap

	BeforeEach(func() {
		wm = signal.NewWireMap()
	})

	It("allocates ids monotonically starting at 1", func() {
		h1 := signal.AllocWire[uint32](wm)
		h2 := signal.AllocWire[uint32](wm)
		Expect(h1.ID()).To(Equal(uint64(1)))
		Expect(h2.ID()).To(Equal(uint64(2)))
	})

	It("is undriven at allocation (P1 cycle isolation, cold start)", func() {
		h := signal.AllocWire[uint32](wm)
		_, ok := signal.PeekWire(wm, h)
		Expect(ok).To(BeFalse())
	})

	It("returns the driven value on first write (P2)", func() {
		h := signal.AllocWire[uint32](wm)
		outcome := signal.Write(wm, h, uint32(0xdeadbeef))
		Expect(outcome.Conflict).To(BeFalse())

		v, ok := signal.PeekWire(wm, h)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint32(0xdeadbeef)))
	})

	It("reports a conflict on a second drive in the same cycle (P2)", func() {
		h := signal.AllocWire[uint32](wm)
		signal.Write(wm, h, uint32(1))
		outcome := signal.Write(wm, h, uint32(2))

		Expect(outcome.Conflict).To(BeTrue())
		Expect(outcome.Prev).To(Equal(uint32(1)))
	})

	It("clears all cells back to undriven on Reset (P1)", func() {
		h := signal.AllocWire[uint32](wm)
		signal.Write(wm, h, uint32(7))

		wm.Reset()

		_, ok := signal.PeekWire(wm, h)
		Expect(ok).To(BeFalse())
	})

	It("panics on an unknown handle", func() {
		other := signal.NewWireMap()
		h := signal.AllocWire[uint32](other)

		Expect(func() { signal.PeekWire(wm, h) }).To(PanicWith(BeAssignableToTypeOf(&signal.UnknownHandleError{})))
	})

	It("panics on a type-mismatched handle (P8)", func() {
		signal.AllocWire[uint32](wm) // id 1, tagged uint32

		other := signal.NewWireMap()
		mismatched := signal.AllocWire[bool](other) // id 1, tagged bool

		Expect(func() {
			signal.PeekWire(wm, mismatched)
		}).To(PanicWith(BeAssignableToTypeOf(&signal.TypeMismatchError{})))
	})

	It("tracks how many wires are currently driven", func() {
		h1 := signal.AllocWire[uint32](wm)
		h2 := signal.AllocWire[uint32](wm)
		Expect(wm.DrivenCount()).To(Equal(0))

		signal.Write(wm, h1, uint32(1))
		Expect(wm.DrivenCount()).To(Equal(1))

		signal.Write(wm, h2, uint32(2))
		Expect(wm.DrivenCount()).To(Equal(2))

		wm.Reset()
		Expect(wm.DrivenCount()).To(Equal(0))
	})
})
