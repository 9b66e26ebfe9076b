package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Undefined is the correlation of a degenerate pair of vectors. It is NaN so
// it can never be mistaken for a measured correlation of zero.
var Undefined = math.NaN()

// IsUndefined reports whether r is the undefined sentinel.
func IsUndefined(r float64) bool {
	return math.IsNaN(r)
}

// isConstant reports whether every value equals the first one.
func isConstant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}

// Pearson returns the Pearson correlation of x and y, or Undefined when
// either vector has zero variance or the vectors cannot be paired.
func Pearson(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return Undefined
	}
	if isConstant(x) || isConstant(y) {
		return Undefined
	}
	return stat.Correlation(x, y, nil)
}

// Correlate computes the expression/accessibility correlation of one sample.
func Correlate(obs []Observation) float64 {
	rna, atac := Split(obs)
	return Pearson(rna, atac)
}

// Split separates observations into expression and accessibility vectors.
func Split(obs []Observation) (rna, atac []float64) {
	rna = make([]float64, len(obs))
	atac = make([]float64, len(obs))
	for i, o := range obs {
		rna[i] = o.Expression
		atac[i] = o.Accessibility
	}
	return rna, atac
}

// FormatCorrelation renders r with two decimals. Undefined renders as "nan".
func FormatCorrelation(r float64) string {
	if IsUndefined(r) {
		return "nan"
	}
	return fmt.Sprintf("%.2f", r)
}
