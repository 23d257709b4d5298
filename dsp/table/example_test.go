package table_test

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-wavetable/dsp/table"
)

func ExampleSquareSum() {
	buf := make([]float64, 8)
	table.SquareSum(buf, 1, 1)
	for _, v := range buf {
		fmt.Printf("%.3f ", v+0)
	}
	fmt.Println()
	// Output:
	// 0.000 0.900 1.273 0.900 0.000 -0.900 -1.273 -0.900
}

func ExampleImpulseTrain() {
	buf := make([]float32, 8)
	table.ImpulseTrain(buf)
	fmt.Println(buf)
	// Output:
	// [3 0 -1 0 -1 0 -1 0]
}

func ExampleNewStack() {
	s, err := table.NewStack[float32](table.WaveSaw, 1024, 10)
	if err != nil {
		fmt.Println(err)
		return
	}

	k := s.Select(440)
	fmt.Println(k, s.MaxHarmonic(k), len(s.Table(k)))
	// Output:
	// 5 32 1024
}

func ExampleWriteHex() {
	_ = table.WriteHex(os.Stdout, []float32{1, 0.5, 0, -1}, 2)
	fmt.Println()
	// Output:
	// {
	// 	0x3f800000,0x3f000000,
	// 	0x00000000,0xbf800000
	// };
}
