package window

import (
	"strconv"
	"testing"
)

func BenchmarkFill(b *testing.B) {
	for _, n := range []int{256, 1024, 4096, 16384} {
		buf := make([]float32, n)
		for _, typ := range []Type{TypeHann, TypeBlackmanHarris} {
			b.Run(typ.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					Fill(buf, typ)
				}
			})
		}
	}
}

func BenchmarkApply(b *testing.B) {
	for _, n := range []int{256, 4096} {
		buf := make([]float64, n)
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Apply(TypeHann, buf)
			}
		})
	}
}
