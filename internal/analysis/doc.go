// Package analysis provides tools for characterizing sampled trajectories.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via orbit separation
//   - [EnergySeries] and [DriftTrend]: energy history and its secular drift
//   - [PowerSpectrum] and [DominantFrequency]: FFT magnitude spectrum
//   - [PhasePortraitToASCII]: terminal rendering of a phase portrait
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	m := physics.NewStandardMap(-5)
//	lambda := analysis.LyapunovExponent(m, x0, 1e-8, 5000, analysis.CircleDistance)
//	if lambda > 0 {
//	    // orbit is chaotic
//	}
package analysis
