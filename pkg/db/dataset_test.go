package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/atacrna/pkg/model"
)

// seedDataDir writes a one-gene data directory: slc4a1a with two exons, one
// TDR126 peak and two metacells per timepoint.
func seedDataDir(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(DatabasePath(dir))
	require.NoError(t, err)
	require.NoError(t, store.InsertGenes(ctx, []model.GeneRecord{
		{GeneName: "slc4a1a", Start: 100, End: 200, Strand: "+"},
		{GeneName: "slc4a1a", Start: 300, End: 400, Strand: "+"},
	}))
	require.NoError(t, store.InsertPeaks(ctx, []model.AccessibilityPeak{
		{GeneName: "slc4a1a", SampleID: "TDR126", Start: 150, End: 250},
	}))
	require.NoError(t, store.Close())

	var rows []ExpressionRow
	for i, tp := range model.Timepoints.All() {
		rows = append(rows,
			ExpressionRow{GeneName: "slc4a1a", SampleID: tp.SampleID, RNA: 1, ATAC: 1, Color: "#ffff33"},
			ExpressionRow{GeneName: "slc4a1a", SampleID: tp.SampleID, RNA: float64(i + 2), ATAC: float64(2 * (i + 2)), Color: "#666666"},
		)
	}
	require.NoError(t, WriteExpression(ExpressionPath(dir), rows))
	return dir
}

func TestLoadDataset(t *testing.T) {
	ctx := context.Background()
	ds, err := LoadDataset(ctx, seedDataDir(t))
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, []string{"slc4a1a"}, ds.TrackGenes())
	assert.Equal(t, []string{"slc4a1a"}, ds.CorrelationGenes())
	assert.True(t, ds.HasTrackGene("slc4a1a"))
	assert.False(t, ds.HasTrackGene("hbba1"))
	assert.True(t, ds.HasCorrelationGene("slc4a1a"))

	view, err := ds.TrackView(ctx, "slc4a1a", model.Timepoints)
	require.NoError(t, err)
	assert.Equal(t, model.Range{Start: 100, End: 400}, view.Range)
	assert.Len(t, view.Peaks, 1)

	grid, err := ds.Grid("slc4a1a", model.Timepoints, model.CellTypePalette)
	require.NoError(t, err)
	require.Len(t, grid.Panels, 6)
	assert.Equal(t, 14.0, grid.XMax)
	assert.Equal(t, 7.0, grid.YMax)
	assert.Equal(t, "1.00", model.FormatCorrelation(grid.Panels[0].Correlation))
	assert.Equal(t, []string{"neural", "somites"}, grid.Panels[0].CellTypes)
}

func TestLoadDataset_UnknownGene(t *testing.T) {
	ctx := context.Background()
	ds, err := LoadDataset(ctx, seedDataDir(t))
	require.NoError(t, err)
	defer ds.Close()

	_, err = ds.TrackView(ctx, "hbba1", model.Timepoints)
	assert.ErrorIs(t, err, model.ErrGeneNotFound)

	_, err = ds.Grid("hbba1", model.Timepoints, model.CellTypePalette)
	assert.ErrorIs(t, err, model.ErrGeneNotFound)
}

func TestLoadDataset_WithoutExpression(t *testing.T) {
	dir := seedDataDir(t)
	require.NoError(t, os.Remove(ExpressionPath(dir)))

	ds, err := LoadDataset(context.Background(), dir)
	require.NoError(t, err)
	defer ds.Close()

	assert.Empty(t, ds.CorrelationGenes())
	assert.Equal(t, filepath.Join(dir, "db", "atacrna.db"), ds.Store.Path())
}
