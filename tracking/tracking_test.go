package tracking_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/physics"
	"github.com/san-kum/maptrack/tracking"
)

var _ = Describe("PendulumTracking", func() {
	w := 2 * math.Pi * 0.5

	DescribeTable("returns n samples per sequence",
		func(n int) {
			theta, thetaDot := tracking.PendulumTracking(0.1, 0.0, w, 1e-2, n)
			Expect(theta).To(HaveLen(n))
			Expect(thetaDot).To(HaveLen(n))
		},
		Entry("empty", 0),
		Entry("single", 1),
		Entry("short", 10),
		Entry("long", 5000),
	)

	It("returns empty, non-nil sequences for n = 0", func() {
		theta, thetaDot := tracking.PendulumTracking(0.1, 0.0, w, 1e-2, 0)
		Expect(theta).NotTo(BeNil())
		Expect(theta).To(BeEmpty())
		Expect(thetaDot).To(BeEmpty())
	})

	It("records the unmodified initial state first", func() {
		theta, thetaDot := tracking.PendulumTracking(0.785, -0.3, w, 1e-2, 1)
		Expect(theta).To(Equal([]float64{0.785}))
		Expect(thetaDot).To(Equal([]float64{-0.3}))
	})

	It("samples before advancing", func() {
		theta, thetaDot := tracking.PendulumTracking(0.4, 0.2, w, 1e-2, 3)

		x, p := 0.4, 0.2
		for i := 0; i < 3; i++ {
			Expect(theta[i]).To(Equal(x))
			Expect(thetaDot[i]).To(Equal(p))
			x, p = integrators.Yoshida4Pendulum(x, p, 1e-2, w)
		}
	})

	It("keeps the energy proxy bounded over 10000 steps", func() {
		theta, thetaDot := tracking.PendulumTracking(0.1, 0.0, w, 1e-2, 10000)

		e0 := physics.PendulumEnergy(theta[0], thetaDot[0], w)
		maxDev := 0.0
		for i := range theta {
			maxDev = math.Max(maxDev, math.Abs(physics.PendulumEnergy(theta[i], thetaDot[i], w)-e0))
		}
		Expect(maxDev).To(BeNumerically("<", 1e-6))

		eFirst := physics.PendulumEnergy(theta[5000], thetaDot[5000], w)
		eLast := physics.PendulumEnergy(theta[9999], thetaDot[9999], w)
		Expect(math.Abs(eLast - eFirst)).To(BeNumerically("<", 1e-6))
	})

	It("matches the generic driver bit for bit", func() {
		theta, thetaDot := tracking.PendulumTracking(0.785, 0.0, w, 1e-2, 500)
		traj := tracking.PendulumTrackingWith(integrators.NewYoshida4(), 0.785, 0.0, w, 1e-2, 500)

		Expect(traj.Theta).To(Equal(theta))
		Expect(traj.P).To(Equal(thetaDot))
	})

	It("is deterministic", func() {
		a1, b1 := tracking.PendulumTracking(1.0, 0.5, w, 1e-3, 200)
		a2, b2 := tracking.PendulumTracking(1.0, 0.5, w, 1e-3, 200)
		Expect(a1).To(Equal(a2))
		Expect(b1).To(Equal(b2))
	})

	It("panics on a negative count", func() {
		Expect(func() { tracking.PendulumTracking(0, 0, w, 1e-2, -1) }).To(Panic())
	})
})

var _ = Describe("StandardMapTracking", func() {
	DescribeTable("returns n samples per sequence",
		func(n int) {
			theta, p := tracking.StandardMapTracking(0.1, 0.2, -0.5, n)
			Expect(theta).To(HaveLen(n))
			Expect(p).To(HaveLen(n))
		},
		Entry("empty", 0),
		Entry("single", 1),
		Entry("hundred", 100),
	)

	DescribeTable("keeps the origin fixed",
		func(k float64, n int) {
			theta, p := tracking.StandardMapTracking(0, 0, k, n)
			for i := 0; i < n; i++ {
				Expect(theta[i]).To(BeZero())
				Expect(p[i]).To(BeZero())
			}
		},
		Entry("k = -0.5", -0.5, 50),
		Entry("k = -4", -4.0, 50),
		Entry("k = 0", 0.0, 10),
		Entry("k = 7.3", 7.3, 50),
	)

	It("kicks with the old angle, then drifts with the new momentum", func() {
		theta, p := tracking.StandardMapTracking(0.1, 0.2, -0.5, 100)

		Expect(theta[0]).To(Equal(0.1))
		Expect(p[0]).To(Equal(0.2))

		wantP := math.Mod(0.2+(-0.5)*math.Sin(0.1), 2*math.Pi)
		wantTheta := math.Mod(0.1+wantP, 2*math.Pi)
		Expect(p[1]).To(Equal(wantP))
		Expect(theta[1]).To(Equal(wantTheta))

		staleTheta := math.Mod(0.1+0.2, 2*math.Pi)
		Expect(theta[1]).NotTo(Equal(staleTheta))
	})

	It("stays within (-2π, 2π) and may go negative", func() {
		theta, p := tracking.StandardMapTracking(0.15, 0, -1, 10000)

		sawNegative := false
		for i := range theta {
			Expect(math.Abs(theta[i])).To(BeNumerically("<", 2*math.Pi))
			Expect(math.Abs(p[i])).To(BeNumerically("<", 2*math.Pi))
			if p[i] < 0 {
				sawNegative = true
			}
		}
		Expect(sawNegative).To(BeTrue())
	})

	It("is safe to call concurrently", func() {
		want, _ := tracking.StandardMapTracking(0.3, 0.1, -0.9, 1000)

		var wg sync.WaitGroup
		results := make([][]float64, 8)
		for i := range results {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx], _ = tracking.StandardMapTracking(0.3, 0.1, -0.9, 1000)
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			Expect(got).To(Equal(want))
		}
	})

	It("panics on a negative count", func() {
		Expect(func() { tracking.StandardMapTracking(0, 0, 1, -5) }).To(Panic())
	})
})
