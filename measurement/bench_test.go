package measurement_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/solver"
)

var sinkM measurement.Measurement

func BenchmarkSumUncorrelated(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 5} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			list := make([]measurement.Measurement, n)
			for i := range list {
				list[i] = measurement.New(float64(i+1), 0.6, 0.4)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := measurement.SumUncorrelated(list)
				if err != nil && !errors.Is(err, solver.ErrNotConverged) {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkProd(b *testing.B) {
	b.ReportAllocs()
	x, y := measurement.NewSymmetric(2, 0.2), measurement.NewSymmetric(3, 0.3)
	for i := 0; i < b.N; i++ {
		m, err := measurement.Prod(x, y)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkLazyEvaluateUncorrelated(b *testing.B) {
	b.ReportAllocs()
	list := []measurement.Measurement{measurement.New(3, 1, 0.5), measurement.New(4, 2, 1)}
	for i := 0; i < b.N; i++ {
		m, err := measurement.LazyEvaluateUncorrelated(list, solver.Sum)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
