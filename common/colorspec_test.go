package common_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/gochroma/common"
)

var _ = Describe("Color", func() {
	It("should recognize the off sentinel", func() {
		Expect(common.Off.IsOff()).To(BeTrue())
		Expect(common.Color{B: 1}.IsOff()).To(BeFalse())
	})
})

var _ = Describe("ToleranceChannel", func() {
	It("should contain both boundary values", func() {
		ch := common.ToleranceChannel{Value: 100, Tolerance: 5}
		Expect(ch.Contains(95)).To(BeTrue())
		Expect(ch.Contains(105)).To(BeTrue())
		Expect(ch.Contains(94)).To(BeFalse())
		Expect(ch.Contains(106)).To(BeFalse())
	})

	It("should handle a range extending below zero", func() {
		ch := common.ToleranceChannel{Value: 2, Tolerance: 5}
		Expect(ch.Contains(0)).To(BeTrue())
		Expect(ch.Contains(7)).To(BeTrue())
		Expect(ch.Contains(8)).To(BeFalse())
	})

	It("should match only the exact value at tolerance zero", func() {
		ch := common.ToleranceChannel{Value: 10}
		Expect(ch.Contains(10)).To(BeTrue())
		Expect(ch.Contains(9)).To(BeFalse())
		Expect(ch.Contains(11)).To(BeFalse())
	})
})

var _ = Describe("ColorSpec", func() {
	spec := common.ColorSpec{
		R: common.ToleranceChannel{Value: 100, Tolerance: 5},
		G: common.ToleranceChannel{Value: 50, Tolerance: 10},
		B: common.ToleranceChannel{Value: 200, Tolerance: 0},
	}

	It("should require every channel to match", func() {
		Expect(spec.Matches(common.Color{R: 100, G: 50, B: 200})).To(BeTrue())
		Expect(spec.Matches(common.Color{R: 105, G: 60, B: 200})).To(BeTrue())
		Expect(spec.Matches(common.Color{R: 106, G: 50, B: 200})).To(BeFalse())
		Expect(spec.Matches(common.Color{R: 100, G: 50, B: 201})).To(BeFalse())
	})
})
