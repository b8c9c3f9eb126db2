package common_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/gochroma/common"
)

type stubTarget struct {
	closed int
}

func (t *stubTarget) NewSubscription() (*common.Subscription, error) {
	return common.NewSubscription(t), nil
}

func (t *stubTarget) CloseSubscription(*common.Subscription) error {
	t.closed++
	return nil
}

var _ = Describe("Subscription", func() {
	var (
		target *stubTarget
		sub    *common.Subscription
	)

	BeforeEach(func() {
		target = new(stubTarget)
		sub, _ = target.NewSubscription()
	})

	It("should carry a unique ID", func() {
		other, _ := target.NewSubscription()
		Expect(sub.ID()).NotTo(BeEmpty())
		Expect(sub.ID()).NotTo(Equal(other.ID()))
	})

	It("should deliver written events in order", func() {
		Expect(sub.Write(`first`)).To(Succeed())
		Expect(sub.Write(`second`)).To(Succeed())
		Expect(<-sub.Events()).To(Equal(`first`))
		Expect(<-sub.Events()).To(Equal(`second`))
	})

	It("should notify the target on close", func() {
		Expect(sub.Close()).To(Succeed())
		Expect(target.closed).To(Equal(1))
	})

	It("should return an error on double-close", func() {
		Expect(sub.Close()).To(Succeed())
		Expect(sub.Close()).To(MatchError(common.ErrClosed))
		Expect(target.closed).To(Equal(1))
	})
})
