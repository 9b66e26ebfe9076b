package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/atacrna/pkg/model"
)

func slc4a1aView(t *testing.T, strand string) *model.TrackView {
	t.Helper()
	view, err := model.BuildTrackView("slc4a1a",
		[]model.GeneRecord{
			{GeneName: "slc4a1a", Start: 100, End: 200, Strand: strand},
			{GeneName: "slc4a1a", Start: 300, End: 400, Strand: strand},
		},
		[]model.AccessibilityPeak{
			{GeneName: "slc4a1a", SampleID: "TDR126", Start: 150, End: 250},
		},
		model.Timepoints)
	require.NoError(t, err)
	return view
}

func TestTrackFigure(t *testing.T) {
	fig := TrackFigure(slc4a1aView(t, "+"))

	// axis, one tick, gene line, two exons, one peak, eight legend items
	require.Len(t, fig.Data, 14)
	require.Len(t, fig.Layout.Shapes, 3)
	require.Len(t, fig.Layout.Annotations, 1)

	arrow := fig.Layout.Annotations[0]
	assert.Equal(t, 400.0, arrow.X)
	assert.Equal(t, 100.0, *arrow.AX)
	assert.Equal(t, model.ArrowY, arrow.Y)
	assert.True(t, arrow.ShowArrow)

	peak := fig.Layout.Shapes[2]
	assert.InDelta(t, 0.19, peak.Y0, 1e-9)
	assert.InDelta(t, 0.21, peak.Y1, 1e-9)
	assert.Equal(t, "#440154", peak.FillColor)

	peakHover := fig.Data[5]
	assert.Equal(t, "<b>Sample:</b> 10 hours post fertilization<br><b>Start:</b> 150<br><b>End:</b> 250<br>", peakHover.Text)

	x := fig.Layout.Axes["x"]
	assert.Equal(t, []float64{99, 401}, x.Range)
	assert.Equal(t, "Genomic Coordinate (kbp)", x.Title.Text)
	assert.Equal(t, []string{"0"}, x.TickText)

	y := fig.Layout.Axes["y"]
	assert.Equal(t, []float64{-1, 1}, y.Range)
	assert.False(t, *y.Visible)

	assert.Equal(t, "gene_track", fig.Config.ToImageButtonOptions.Filename)
}

func TestTrackFigure_ReverseStrand(t *testing.T) {
	fig := TrackFigure(slc4a1aView(t, "-"))
	arrow := fig.Layout.Annotations[0]
	assert.Equal(t, 100.0, arrow.X)
	assert.Equal(t, 400.0, *arrow.AX)
}

func TestTrackFigure_Legend(t *testing.T) {
	fig := TrackFigure(slc4a1aView(t, "+"))
	legend := fig.Data[len(fig.Data)-8:]

	assert.Equal(t, "Transcription direction", legend[0].Name)
	assert.Equal(t, "lines+markers", legend[0].Mode)
	assert.Equal(t, "Exon", legend[1].Name)
	assert.Equal(t, "dodgerblue", legend[1].Marker.Color)
	assert.Equal(t, "ATAC peak - 24 hours post fertilization", legend[7].Name)
	assert.Equal(t, "#FDE725", legend[7].Marker.Color)
}

func TestTrackFigure_JSON(t *testing.T) {
	js, err := TrackFigure(slc4a1aView(t, "+")).JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &decoded))
	layout := decoded["layout"].(map[string]any)
	assert.Contains(t, layout, "xaxis")
	assert.Contains(t, layout, "yaxis")
	assert.Equal(t, "rgba(0,0,0,0)", layout["plot_bgcolor"])

	config := decoded["config"].(map[string]any)
	assert.Equal(t, true, config["displayModeBar"])
}
