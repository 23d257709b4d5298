package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100))

	fmt.Printf("sampleRate=%.0f nyquist=%.0f\n", cfg.SampleRate, cfg.Nyquist())

	// Output:
	// sampleRate=44100 nyquist=22050
}

func ExampleMulComplex() {
	re, im := 1.0, 0.0
	// Rotate by 90 degrees twice.
	core.MulComplex(&re, &im, 0, 1)
	core.MulComplex(&re, &im, 0, 1)

	fmt.Printf("%.0f %.0f\n", re, im)

	// Output:
	// -1 0
}
