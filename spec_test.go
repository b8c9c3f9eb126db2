package gochroma_test

import (
	. "github.com/pdf/gochroma"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/gochroma/common"
)

var _ = Describe("Spec", func() {
	var (
		controller *Controller
		region     = common.ColorSpec{
			R: common.ToleranceChannel{Value: 100, Tolerance: 5},
			G: common.ToleranceChannel{Value: 100, Tolerance: 5},
			B: common.ToleranceChannel{Value: 100, Tolerance: 5},
		}
	)

	BeforeEach(func() {
		controller, _ = NewController(scriptedSource(common.Color{R: 100, G: 100, B: 100}))
		Expect(controller.Configure(Config{Stability: 1})).To(Succeed())
	})

	It("should match at the tolerance boundary, bounds inclusive", func() {
		spec := controller.NewSpec(region)

		match, err := spec.IsMatch(common.Color{R: 105, G: 95, B: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(match).To(BeTrue())

		match, _ = spec.IsMatch(common.Color{R: 106, G: 100, B: 100})
		Expect(match).To(BeFalse())
		match, _ = spec.IsMatch(common.Color{R: 100, G: 94, B: 100})
		Expect(match).To(BeFalse())
		match, _ = spec.IsMatch(common.Color{R: 100, G: 100, B: 106})
		Expect(match).To(BeFalse())
	})

	It("should evaluate against the stable color when no color is supplied", func() {
		spec := controller.NewSpec(region)
		match, err := spec.IsMatch()
		Expect(err).NotTo(HaveOccurred())
		Expect(match).To(BeTrue())
	})

	It("should report matches through Controller.IsMatching", func() {
		match, err := controller.IsMatching(controller.NewSpec(region))
		Expect(err).NotTo(HaveOccurred())
		Expect(match).To(BeTrue())
	})

	It("should treat a tolerance range crossing zero as inclusive of zero", func() {
		spec := controller.NewSpec(common.ColorSpec{
			R: common.ToleranceChannel{Value: 2, Tolerance: 5},
			G: common.ToleranceChannel{Value: 2, Tolerance: 5},
			B: common.ToleranceChannel{Value: 2, Tolerance: 5},
		})
		match, _ := spec.IsMatch(common.Color{})
		Expect(match).To(BeTrue())
		match, _ = spec.IsMatch(common.Color{R: 8})
		Expect(match).To(BeFalse())
	})
})
