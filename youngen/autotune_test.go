package youngen

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("autotuneStep", func() {
	var y *Young

	BeforeEach(func() {
		y = &Young{lifetime: 3, origLifetime: 3}
	})

	Context("when the survivor space is sustained over-full", func() {
		It("shortens the lifetime once the over-full streak reaches the threshold", func() {
			for i := 0; i < overFullTimes; i++ {
				y.autotuneStep(overFullThreshold + 1)
				Expect(y.lifetime).To(Equal(3))
			}
			y.autotuneStep(overFullThreshold + 1)
			Expect(y.lifetime).To(Equal(2))
			Expect(y.tuneThreshold).To(Equal(0))
		})

		It("never shortens the lifetime below the minimum", func() {
			y.lifetime = minimumLifetime
			for i := 0; i < 4*overFullTimes; i++ {
				y.autotuneStep(overFullThreshold + 1)
			}
			Expect(y.lifetime).To(Equal(minimumLifetime))
		})
	})

	Context("when the survivor space is sustained under-full", func() {
		It("lengthens the lifetime once the under-full streak reaches the threshold", func() {
			streak := -underFullTimes
			for i := 0; i < streak; i++ {
				y.autotuneStep(underFullThreshold - 1)
				Expect(y.lifetime).To(Equal(3))
			}
			y.autotuneStep(underFullThreshold - 1)
			Expect(y.lifetime).To(Equal(4))
			Expect(y.tuneThreshold).To(Equal(0))
		})

		It("never lengthens the lifetime past the maximum", func() {
			y.lifetime = maximumLifetime
			streak := -underFullTimes
			for i := 0; i < 4*streak; i++ {
				y.autotuneStep(underFullThreshold - 1)
			}
			Expect(y.lifetime).To(Equal(maximumLifetime))
		})
	})

	Context("when occupancy is in the steady-state band", func() {
		It("decays a positive streak counter toward zero without touching lifetime", func() {
			y.tuneThreshold = 1
			y.autotuneStep(50)
			Expect(y.tuneThreshold).To(Equal(0))
			Expect(y.lifetime).To(Equal(3))
		})

		It("decays a negative streak counter toward zero without touching lifetime", func() {
			y.tuneThreshold = -1
			y.autotuneStep(50)
			Expect(y.tuneThreshold).To(Equal(0))
			Expect(y.lifetime).To(Equal(3))
		})

		It("drifts the lifetime back toward the original once the streak settles at zero", func() {
			y.lifetime = 5 // drifted away from origLifetime by a prior tuning episode
			y.autotuneStep(50)
			Expect(y.lifetime).To(Equal(4))

			y.lifetime = 1
			y.autotuneStep(50)
			Expect(y.lifetime).To(Equal(2))
		})

		It("leaves the lifetime alone once it has drifted back to the original", func() {
			y.autotuneStep(50)
			Expect(y.lifetime).To(Equal(3))
		})
	})
})
