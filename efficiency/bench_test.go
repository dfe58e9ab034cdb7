package efficiency_test

import (
	"testing"

	"github.com/katalvlaran/minos/efficiency"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/stat"
)

var sinkM measurement.Measurement

func BenchmarkMinos(b *testing.B) {
	b.ReportAllocs()
	cl := stat.OneSigmaLevel()
	for i := 0; i < b.N; i++ {
		m, err := efficiency.Minos(37, 120, cl)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkBayesianShortest(b *testing.B) {
	b.ReportAllocs()
	cl := stat.OneSigmaLevel()
	for i := 0; i < b.N; i++ {
		m, err := efficiency.Bayesian(37, 120, cl, efficiency.ShortestInterval, 1, 1)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
