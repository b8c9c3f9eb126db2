package gochroma_test

import (
	. "github.com/pdf/gochroma"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/gochroma/common"
)

var _ = Describe("Scan", func() {
	var controller *Controller

	// Scan loops read the stable color; with on-demand sampling and a
	// stability of one, every tick pulls the next scripted sample.
	setup := func(script ...common.Color) {
		controller, _ = NewController(scriptedSource(script...))
		Expect(controller.Configure(Config{Stability: 1})).To(Succeed())
	}

	It("should derive the midpoint spec from observed extrema", func() {
		setup(
			common.Off,
			common.Color{R: 1, G: 40, B: 101},
			common.Color{R: 2, G: 45, B: 101},
			common.Color{R: 6, G: 50, B: 111},
			common.Off,
		)

		scan, err := controller.StartScan(200)
		Expect(err).NotTo(HaveOccurred())
		Eventually(scan.Count).Should(Equal(3))
		scan.Stop()

		spec, err := scan.ColorSpec()
		Expect(err).NotTo(HaveOccurred())
		Expect(spec).To(Equal(common.ColorSpec{
			R: common.ToleranceChannel{Value: 4, Tolerance: 3},
			G: common.ToleranceChannel{Value: 45, Tolerance: 5},
			B: common.ToleranceChannel{Value: 106, Tolerance: 5},
		}))
		Expect(scan.Count()).To(Equal(3))
	})

	It("should return identical specs on repeated derivation", func() {
		setup(common.Color{R: 10, G: 20, B: 30}, common.Off)

		scan, _ := controller.StartScan(200)
		Eventually(scan.Count).Should(Equal(1))
		scan.Stop()

		first, err := scan.ColorSpec()
		Expect(err).NotTo(HaveOccurred())
		second, _ := scan.ColorSpec()
		Expect(second).To(Equal(first))
	})

	It("should give a single observed value tolerance zero", func() {
		setup(common.Color{R: 10, G: 20, B: 30}, common.Off)

		scan, _ := controller.StartScan(200)
		Eventually(scan.Count).Should(Equal(1))
		scan.Stop()

		spec, _ := scan.ColorSpec()
		Expect(spec).To(Equal(common.ColorSpec{
			R: common.ToleranceChannel{Value: 10},
			G: common.ToleranceChannel{Value: 20},
			B: common.ToleranceChannel{Value: 30},
		}))
	})

	It("should exclude the off sentinel even as the only sample", func() {
		setup(common.Off)

		scan, _ := controller.StartScan(200)
		Consistently(scan.Count).Should(Equal(0))
		scan.Stop()

		_, err := scan.ColorSpec()
		Expect(err).To(MatchError(common.ErrNoSamples))
		Expect(scan.Count()).To(Equal(0))
	})

	It("should publish an EventScanComplete on stop", func() {
		setup(common.Off)
		sub, _ := controller.NewSubscription()

		scan, _ := controller.StartScan(200)
		scan.Stop()

		Expect(sub.Events()).To(Receive(Equal(common.EventScanComplete{Count: 0})))
	})

	It("should tolerate a double stop", func() {
		setup(common.Off)
		sub, _ := controller.NewSubscription()

		scan, _ := controller.StartScan(200)
		scan.Stop()
		scan.Stop()

		Expect(sub.Events()).To(Receive())
		Expect(sub.Events()).NotTo(Receive())
	})

	It("should select the default frequency for zero", func() {
		setup(common.Off)
		scan, err := controller.StartScan(0)
		Expect(err).NotTo(HaveOccurred())
		scan.Stop()
	})

	It("should reject a negative frequency", func() {
		setup(common.Off)
		_, err := controller.StartScan(-1)
		Expect(err).To(MatchError(common.ErrInvalidFrequency))
	})
})
