// Command tblgen builds band-limited wavetables and windows and prints
// them for inspection or for pasting into precomputed constant tables.
//
// Usage:
//
//	tblgen [flags]
//
// Examples:
//
//	tblgen -wave saw -size 2048 -orders 11
//	tblgen -wave square -size 64 -orders 4 -spectrum
//	tblgen -wave triangle -size 256 -orders 1 -hex -quarter
//	tblgen -window hann -size 1024
//	tblgen -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/spectrum"
	"github.com/cwbudde/algo-wavetable/dsp/table"
	"github.com/cwbudde/algo-wavetable/dsp/window"
)

type options struct {
	wave       string
	window     string
	size       int
	orders     int
	sampleRate float64
	hex        bool
	perLine    int
	quarter    bool
	spectrum   bool
	threshold  float64
}

func main() {
	var o options
	flag.StringVar(&o.wave, "wave", "saw", "waveform: impulse, saw, square, triangle")
	flag.StringVar(&o.window, "window", "", "generate this window instead of a wave")
	flag.IntVar(&o.size, "size", 1024, "table length in samples (power of two)")
	flag.IntVar(&o.orders, "orders", 1, "number of tables; order k holds harmonics 1..2^k")
	flag.Float64Var(&o.sampleRate, "rate", 48000, "playback sample rate used for pitch ranges")
	flag.BoolVar(&o.hex, "hex", false, "print float32 bit patterns as an array literal")
	flag.IntVar(&o.perLine, "per-line", 8, "values per line for -hex")
	flag.BoolVar(&o.quarter, "quarter", false, "with -hex, print only the stored quarter period")
	flag.BoolVar(&o.spectrum, "spectrum", false, "print measured harmonic content per order")
	flag.Float64Var(&o.threshold, "threshold", 1e-6, "amplitude below which a harmonic counts as absent")
	list := flag.Bool("list", false, "list waveforms and windows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tblgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Builds band-limited wavetables and window tables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	var err error
	if o.window != "" {
		err = runWindow(os.Stdout, o)
	} else {
		err = runWave(os.Stdout, o)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "waves:")
	for _, wv := range table.Waves() {
		fmt.Fprintf(w, "  %s (%s)\n", wv, wv.Symmetry())
	}
	fmt.Fprintln(w, "windows:")
	for _, t := range window.Types() {
		fmt.Fprintf(w, "  %s\n", t)
	}
}

func runWave(w io.Writer, o options) error {
	wave, err := table.ParseWave(o.wave)
	if err != nil {
		return err
	}

	s, err := table.NewStack[float32](wave, o.size, o.orders, core.WithSampleRate(o.sampleRate))
	if err != nil {
		return err
	}

	switch {
	case o.hex:
		return writeStackHex(w, s, o)
	case o.spectrum:
		return writeSpectrum(w, s, o.threshold)
	default:
		return writeSummary(w, s)
	}
}

func writeStackHex(w io.Writer, s *table.Stack[float32], o options) error {
	for k := 0; k < s.Orders(); k++ {
		src := s.Table(k)
		if o.quarter {
			src = table.Quarter(src)
		}

		if _, err := fmt.Fprintf(w, "// %s, %d samples, harmonics 1-%d\n", s.Wave(), len(src), s.MaxHarmonic(k)); err != nil {
			return err
		}
		if err := table.WriteHex(w, src, o.perLine); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(w io.Writer, s *table.Stack[float32]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Order\tHarmonics\tPeak\tMax Pitch [Hz]\n")
	fmt.Fprintf(tw, "-----\t---------\t----\t--------------\n")

	nyquist := s.SampleRate() / 2
	for k := 0; k < s.Orders(); k++ {
		peak := float32(0)
		for _, v := range s.Table(k) {
			peak = max(peak, v, -v)
		}
		fmt.Fprintf(tw, "%d\t1-%d\t%.6f\t%.2f\n", k, s.MaxHarmonic(k), peak, nyquist/float64(s.MaxHarmonic(k)))
	}

	return tw.Flush()
}

func writeSpectrum(w io.Writer, s *table.Stack[float32], threshold float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Order\tCeiling\tHighest\tFundamental\tTop Amplitude\n")
	fmt.Fprintf(tw, "-----\t-------\t-------\t-----------\t-------------\n")

	for k := 0; k < s.Orders(); k++ {
		amps, err := spectrum.Harmonics(s.Table(k))
		if err != nil {
			return fmt.Errorf("order %d: %w", k, err)
		}

		top := spectrum.HighestHarmonic(amps, threshold)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t%.6f\n", k, s.MaxHarmonic(k), top, amps[1], amps[top])
	}

	return tw.Flush()
}

func runWindow(w io.Writer, o options) error {
	t, err := window.ParseType(o.window)
	if err != nil {
		return err
	}
	if o.size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", o.size)
	}

	if o.hex {
		buf := make([]float32, o.size)
		window.Fill(buf, t)
		if err := table.WriteHex(w, buf, o.perLine); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	a, err := window.Analyze(window.Generate(t, o.size))
	if err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t------------\n")
	fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.4f\n", t, o.size, a.CoherentGain, a.ENBW, a.Bandwidth3dB, a.ScallopLossdB)

	return tw.Flush()
}
