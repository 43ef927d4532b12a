package facade_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/facade"
)

var _ = Describe("Simulation", func() {
	It("allocates, schedules and steps a producer/consumer pair", func() {
		sim := facade.New()
		w := facade.AllocWire[int](sim)

		sim.Schedule("consumer", func(ctx *engine.Context) {
			v := engine.SampleWire(ctx, w)
			Expect(v).To(Equal(11))
		})
		sim.Schedule("producer", func(ctx *engine.Context) {
			engine.DriveWire(ctx, w, 11)
		})

		Expect(sim.Step()).To(Succeed())

		v, ok := facade.PeekWire(sim, w)
		Expect(ok).To(BeFalse(), "wires are reset at the end of Step")
		_ = v
		Expect(sim.Engine().Cycles()).To(Equal(1))
	})

	It("commits registers across Step boundaries", func() {
		sim := facade.New()
		r := facade.AllocRegister(sim, 0)

		sim.Schedule("incrementer", func(ctx *engine.Context) {
			cur := engine.SampleRegister(ctx, r)
			engine.DriveRegister(ctx, r, cur+1)
		})
		Expect(sim.Step()).To(Succeed())
		Expect(facade.PeekRegister(sim, r)).To(Equal(1))

		sim.Schedule("incrementer", func(ctx *engine.Context) {
			cur := engine.SampleRegister(ctx, r)
			engine.DriveRegister(ctx, r, cur+1)
		})
		Expect(sim.Step()).To(Succeed())
		Expect(facade.PeekRegister(sim, r)).To(Equal(2))
	})

	It("supports a second engine bound to the same shared state", func() {
		sim := facade.New()
		r := facade.AllocRegister(sim, 5)

		resetEngine := sim.NewEngine(engine.WithStepLimit(4))
		resetEngine.Schedule("reset", func(ctx *engine.Context) {
			engine.DriveRegister(ctx, r, 0)
		})
		Expect(resetEngine.Step()).To(Succeed())

		Expect(facade.PeekRegister(sim, r)).To(Equal(0))
	})

	It("propagates a deadlock error from Step", func() {
		sim := facade.New()
		w := facade.AllocWire[int](sim)

		sim.Schedule("stuck", func(ctx *engine.Context) {
			engine.SampleWire(ctx, w)
		})

		Expect(sim.Step()).To(HaveOccurred())
	})
})
