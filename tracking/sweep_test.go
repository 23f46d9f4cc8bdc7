package tracking_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/tracking"
)

var _ = Describe("Linspace", func() {
	It("includes both endpoints", func() {
		Expect(tracking.Linspace(0, 1, 5)).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	})

	It("handles degenerate counts", func() {
		Expect(tracking.Linspace(2, 3, 0)).To(BeEmpty())
		Expect(tracking.Linspace(2, 3, -1)).To(BeEmpty())
		Expect(tracking.Linspace(2, 3, 1)).To(Equal([]float64{2}))
	})
})

var _ = Describe("Sweep", func() {
	It("runs one orbit per initial angle in order", func() {
		thetas := tracking.Linspace(0, 1, 20)
		trajs, err := tracking.Sweep(context.Background(), tracking.SweepConfig{
			Thetas:     thetas,
			P0:         0,
			K:          -0.5,
			Iterations: 300,
			Workers:    4,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(trajs).To(HaveLen(len(thetas)))

		for i, traj := range trajs {
			theta, p := tracking.StandardMapTracking(thetas[i], 0, -0.5, 300)
			Expect(traj.Theta).To(Equal(theta))
			Expect(traj.P).To(Equal(p))
		}
	})

	It("rejects a negative iteration count", func() {
		_, err := tracking.Sweep(context.Background(), tracking.SweepConfig{
			Thetas:     []float64{0.1},
			Iterations: -1,
		})
		Expect(errors.Is(err, dynamo.ErrNegativeCount)).To(BeTrue())
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tracking.Sweep(ctx, tracking.SweepConfig{
			Thetas:     tracking.Linspace(0, 1, 8),
			Iterations: 10,
		})
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("returns an empty result for no initial angles", func() {
		trajs, err := tracking.Sweep(context.Background(), tracking.SweepConfig{Iterations: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(trajs).To(BeEmpty())
	})
})
