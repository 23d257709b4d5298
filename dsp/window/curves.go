package window

import "math"

// Window curves over one period. phs runs over [0, 2*pi] for the cosine
// sums, [0, 2] for bartlett and [-1, 1] for welch.

func bartlett(phs float64) float64 {
	return 1 - math.Abs(phs-1)
}

func blackman(phs float64) float64 {
	return 0.42 - 0.5*math.Cos(phs) + 0.08*math.Cos(2*phs)
}

func blackmanHarris(phs float64) float64 {
	return 0.35875 - 0.48829*math.Cos(phs) + 0.14128*math.Cos(2*phs) - 0.01168*math.Cos(3*phs)
}

func hamming(phs float64) float64 {
	return 0.54 - 0.46*math.Cos(phs)
}

func hann(phs float64) float64 {
	return 0.5 - 0.5*math.Cos(phs)
}

func welch(phs float64) float64 {
	return 1 - phs*phs
}
