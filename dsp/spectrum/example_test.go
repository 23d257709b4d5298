package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
)

func ExampleHarmonics() {
	tbl := make([]float64, 8)
	for i := range tbl {
		tbl[i] = math.Sin(2 * math.Pi * 2 * float64(i) / 8)
	}

	amps, _ := spectrum.Harmonics(tbl)
	fmt.Printf("%.2f %.2f %.2f\n", amps[1], amps[2], amps[3])
	// Output:
	// 0.00 1.00 0.00
}
