package testutil

import "math"

// FourierSaw evaluates sum_{k=lo..hi} (2/pi)/k * sin(k*x) at x = 2*pi*i/n
// for every i in [0, n).
func FourierSaw(n, lo, hi int) []float64 {
	return fourier(n, lo, hi, 1, func(k int) float64 { return 2 / math.Pi / float64(k) })
}

// FourierSquare evaluates the odd-harmonic series (4/pi)/k * sin(k*x).
func FourierSquare(n, lo, hi int) []float64 {
	return fourier(n, lo|1, hi, 2, func(k int) float64 { return 4 / math.Pi / float64(k) })
}

// FourierTriangle evaluates the odd-harmonic series
// (-1)^((k-1)/2) * (8/pi^2)/k^2 * sin(k*x).
func FourierTriangle(n, lo, hi int) []float64 {
	return fourier(n, lo|1, hi, 2, func(k int) float64 {
		amp := 8 / (math.Pi * math.Pi) / float64(k*k)
		if (k>>1)&1 == 1 {
			return -amp
		}
		return amp
	})
}

// FourierImpulse evaluates sum_{k=lo..hi} cos(k*x).
func FourierImpulse(n, lo, hi int) []float64 {
	out := make([]float64, n)
	for k := lo; k <= hi; k++ {
		for i := range out {
			out[i] += math.Cos(2 * math.Pi * float64(k) * float64(i) / float64(n))
		}
	}
	return out
}

func fourier(n, lo, hi, step int, amp func(k int) float64) []float64 {
	out := make([]float64, n)
	for k := lo; k <= hi; k += step {
		a := amp(k)
		for i := range out {
			out[i] += a * math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
		}
	}
	return out
}

// Triangle returns the ideal unit triangle at normalized phase p in [0, 1):
// 0 at p=0, 1 at p=1/4, -1 at p=3/4.
func Triangle(p float64) float64 {
	switch {
	case p < 0.25:
		return 4 * p
	case p < 0.75:
		return 2 - 4*p
	default:
		return 4*p - 4
	}
}
