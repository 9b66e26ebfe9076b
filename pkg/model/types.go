package model

import "errors"

// Pipeline errors. All but ErrGeneNotFound are data-integrity violations and
// abort a render.
var (
	ErrGeneNotFound  = errors.New("gene not found")
	ErrUnknownSample = errors.New("unknown sample id")
	ErrUnknownColor  = errors.New("unknown cell-type color")
	ErrSampleMissing = errors.New("sample missing from expression data")
)

// GeneRecord is one exon row of the reference gene table.
type GeneRecord struct {
	GeneName string `json:"gene_name"`
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
	Strand   string `json:"strand"`
}

// AccessibilityPeak is one ATAC peak linked to a gene.
type AccessibilityPeak struct {
	GeneName string `json:"gene_name"`
	SampleID string `json:"sample_id"`
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
}

// Observation is one metacell: RNA expression, ATAC accessibility and the
// display color of its cell type.
type Observation struct {
	Expression    float64 `json:"rna"`
	Accessibility float64 `json:"atac"`
	Color         string  `json:"color"`
}

// GeneExpression holds the observations of a single gene keyed by sample id.
type GeneExpression map[string][]Observation

// ExpressionSet maps gene name to its per-sample observations.
type ExpressionSet map[string]GeneExpression

// Genes returns the gene names in the set, unsorted.
func (s ExpressionSet) Genes() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	return out
}

// Range is an inclusive genomic interval.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

func (r Range) Len() int64 {
	return r.End - r.Start
}
