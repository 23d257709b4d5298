package table

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
)

type harmonicRange struct{ lo, hi int }

func rangesFor(n int) []harmonicRange {
	m := MaxHarmonics(n)
	rs := []harmonicRange{{1, 1}, {1, m}, {2, m / 2}, {m / 2, m}}
	if m >= 8 {
		rs = append(rs, harmonicRange{3, 7}, harmonicRange{m / 4, m/2 - 1})
	}
	return rs
}

func powerOfTwoLengths() []int {
	var ns []int
	for n := 8; n <= 8192; n <<= 1 {
		ns = append(ns, n)
	}
	return ns
}

func TestSumsMatchFourierSeries(t *testing.T) {
	waves := []struct {
		wave Wave
		ref  func(n, lo, hi int) []float64
	}{
		{WaveSaw, testutil.FourierSaw},
		{WaveSquare, testutil.FourierSquare},
		{WaveTriangle, testutil.FourierTriangle},
		{WaveImpulse, testutil.FourierImpulse},
	}

	for _, w := range waves {
		t.Run(w.wave.String(), func(t *testing.T) {
			for _, n := range powerOfTwoLengths() {
				if testing.Short() && n > 1024 {
					continue
				}
				for _, r := range rangesFor(n) {
					if n > 1024 && r.lo == 1 && r.hi == 1 {
						continue
					}
					got := make([]float64, n)
					Sum(w.wave, got, r.lo, r.hi)
					want := w.ref(n, r.lo, r.hi)

					e, err := testutil.RelativeSquaredError(got, want)
					if err != nil {
						t.Fatalf("RelativeSquaredError() error = %v", err)
					}
					if e > 1e-10 {
						t.Fatalf("n=%d range=[%d,%d]: relative error %g", n, r.lo, r.hi, e)
					}
				}
			}
		})
	}
}

func TestSumsFloat32MatchFourierSeries(t *testing.T) {
	for _, n := range []int{16, 256, 2048} {
		for _, r := range rangesFor(n) {
			got := make([]float32, n)
			SquareSum(got, r.lo, r.hi)
			e, err := testutil.RelativeSquaredError(got, testutil.FourierSquare(n, r.lo, r.hi))
			if err != nil {
				t.Fatalf("RelativeSquaredError() error = %v", err)
			}
			if e > 1e-8 {
				t.Fatalf("n=%d range=[%d,%d]: relative error %g", n, r.lo, r.hi, e)
			}
		}
	}
}

func TestSquareSumSixteenPoints(t *testing.T) {
	got := make([]float64, 16)
	SquareSum(got, 1, 3)

	want := make([]float64, 16)
	for i := range want {
		x := 2 * math.Pi * float64(i) / 16
		want[i] = 4 / math.Pi * (math.Sin(x) + math.Sin(3*x)/3)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSymmetryLawsExact(t *testing.T) {
	for _, n := range []int{8, 64, 1024} {
		saw := make([]float32, n)
		SawSum(saw, 1, n/2)
		for i := 1; i < n/2; i++ {
			if saw[n-i] != -saw[i] {
				t.Fatalf("saw n=%d: t[%d]=%v, -t[%d]=%v", n, n-i, saw[n-i], i, -saw[i])
			}
		}
		if saw[0] != 0 || saw[n/2] != 0 {
			t.Fatalf("saw n=%d: zero crossings %v %v", n, saw[0], saw[n/2])
		}

		imp := make([]float64, n)
		ImpulseSum(imp, 1, n/2)
		for i := 1; i < n/2; i++ {
			if imp[n-i] != imp[i] {
				t.Fatalf("impulse n=%d: t[%d]=%v, t[%d]=%v", n, n-i, imp[n-i], i, imp[i])
			}
		}

		for _, w := range []Wave{WaveSquare, WaveTriangle} {
			sq := make([]float64, n)
			Sum(w, sq, 1, n/2)
			for i := 1; i < n/4; i++ {
				if sq[n/2-i] != sq[i] {
					t.Fatalf("%v n=%d: direct reflection fails at %d", w, n, i)
				}
			}
			for i := 0; i < n/2; i++ {
				if sq[n/2+i] != -sq[i] {
					t.Fatalf("%v n=%d: point inversion fails at %d", w, n, i)
				}
			}
		}
	}
}

func TestImpulseTrainMatchesFullSum(t *testing.T) {
	for _, n := range []int{4, 8, 32, 256} {
		train := make([]float64, n)
		ImpulseTrain(train)

		sum := make([]float64, n)
		ImpulseSum(sum, 1, n/2-1)

		testutil.RequireSliceNearlyEqual(t, train, sum, 1e-9)
	}

	train := make([]float32, 8)
	ImpulseTrain(train)
	want := []float32{3, 0, -1, 0, -1, 0, -1, 0}
	testutil.RequireSliceNearlyEqual(t, train, want, 0)
}

func TestEmptyRangeIsNoOp(t *testing.T) {
	for _, w := range Waves() {
		dst := make([]float64, 32)
		dst[5] = 0.25
		Accumulate(w, dst, 9, 4)
		for i, v := range dst {
			want := 0.0
			if i == 5 {
				want = 0.25
			}
			if v != want {
				t.Fatalf("%v: dst[%d] = %v, want %v", w, i, v, want)
			}
		}
	}
}

func TestZeroLowerBoundClamped(t *testing.T) {
	for _, w := range Waves() {
		got := make([]float64, 32)
		Sum(w, got, 0, 3)
		testutil.RequireFinite(t, got)

		want := make([]float64, 32)
		Sum(w, want, 1, 3)
		testutil.RequireSliceNearlyEqual(t, got, want, 0)
	}
}

func TestOddWavesSkipEvenHarmonics(t *testing.T) {
	even := make([]float64, 64)
	TriangleSum(even, 2, 2)
	for i, v := range even {
		if v != 0 {
			t.Fatalf("even-only triangle band: dst[%d] = %v", i, v)
		}
	}

	// hrmLo = 2 starts at harmonic 3, which carries a negative sign.
	got := make([]float64, 64)
	TriangleSum(got, 2, 3)
	want := testutil.FourierTriangle(64, 3, 3)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	if got[16] <= 0 {
		t.Fatalf("third harmonic at quarter period = %v, want > 0", got[16])
	}
}

func TestAdditiveBands(t *testing.T) {
	for _, w := range Waves() {
		whole := make([]float64, 128)
		Sum(w, whole, 1, 20)

		banded := make([]float64, 128)
		Accumulate(w, banded, 1, 5)
		Accumulate(w, banded, 6, 11)
		Accumulate(w, banded, 12, 20)
		Extrapolate(banded, w.Symmetry())

		testutil.RequireSliceNearlyEqual(t, banded, whole, 1e-12)

		resummed := make([]float64, 128)
		Sum(w, resummed, 1, 9)
		Sum(w, resummed, 10, 20)
		testutil.RequireSliceNearlyEqual(t, resummed, whole, 1e-12)
	}
}

func TestMaxHarmonics(t *testing.T) {
	if MaxHarmonics(1024) != 512 || MaxHarmonics(4) != 2 {
		t.Fatal("MaxHarmonics mismatch")
	}
}

func BenchmarkSquareSum(b *testing.B) {
	dst := make([]float32, 2048)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := range dst {
			dst[j] = 0
		}
		SquareSum(dst, 1, 1023)
	}
}
