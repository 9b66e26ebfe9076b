package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	GridRows = 2
	GridCols = 3
)

// GridPosition returns the 1-based subplot cell of the i-th timepoint.
func GridPosition(i int) (row, col int) {
	return i/GridCols + 1, i%GridCols + 1
}

// Panel is one scatter subplot of the correlation grid.
type Panel struct {
	Timepoint    Timepoint
	Row, Col     int
	Observations []Observation
	CellTypes    []string
	Correlation  float64
}

// Title is the subplot heading: sample label and correlation.
func (p Panel) Title() string {
	return fmt.Sprintf("%s<br>Correlation: %s", p.Timepoint.Label, FormatCorrelation(p.Correlation))
}

// Grid is the correlation figure of one gene. XMax and YMax are shared by
// every panel so the panels are directly comparable.
type Grid struct {
	Gene   string
	Panels []Panel
	XMax   float64 // accessibility
	YMax   float64 // expression
}

// BuildGrid computes per-timepoint correlations and the shared axis maxima.
func BuildGrid(gene string, data GeneExpression, table *TimepointTable, palette *Palette) (*Grid, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneNotFound, gene)
	}

	g := &Grid{Gene: gene}
	for i, tp := range table.All() {
		obs, ok := data[tp.SampleID]
		if !ok {
			return nil, fmt.Errorf("%s: %w: %s", gene, ErrSampleMissing, tp.SampleID)
		}

		cellTypes, err := palette.LabelObservations(obs)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", gene, tp.SampleID, err)
		}

		if len(obs) > 0 {
			rna, atac := Split(obs)
			g.YMax = max(g.YMax, floats.Max(rna))
			g.XMax = max(g.XMax, floats.Max(atac))
		}

		row, col := GridPosition(i)
		g.Panels = append(g.Panels, Panel{
			Timepoint:    tp,
			Row:          row,
			Col:          col,
			Observations: obs,
			CellTypes:    cellTypes,
			Correlation:  Correlate(obs),
		})
	}
	return g, nil
}
