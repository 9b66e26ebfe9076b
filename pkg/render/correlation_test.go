package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/atacrna/pkg/model"
)

func testGrid(t *testing.T) *model.Grid {
	t.Helper()
	data := model.GeneExpression{}
	for i, tp := range model.Timepoints.All() {
		data[tp.SampleID] = []model.Observation{
			{Expression: 1, Accessibility: 1, Color: "#ffff33"},
			{Expression: float64(i + 2), Accessibility: 3, Color: "#666666"},
		}
	}
	// constant accessibility in the last sample
	data["TDR124"] = []model.Observation{
		{Expression: 1, Accessibility: 2, Color: "#ffff33"},
		{Expression: 2, Accessibility: 2, Color: "#ffff33"},
	}
	grid, err := model.BuildGrid("slc4a1a", data, model.Timepoints, model.CellTypePalette)
	require.NoError(t, err)
	return grid
}

func TestCorrelationFigure(t *testing.T) {
	fig := CorrelationFigure(testGrid(t))

	require.Len(t, fig.Data, 6)
	require.Len(t, fig.Layout.Annotations, 6)

	for i, trace := range fig.Data {
		assert.Equal(t, "markers", trace.Mode)
		if i == 0 {
			assert.Equal(t, "x", trace.XAxis)
		} else {
			assert.True(t, strings.HasSuffix(trace.XAxis, string(rune('1'+i))))
		}
	}
	assert.Equal(t, []string{"neural", "somites"}, fig.Data[0].Text)

	assert.Equal(t, "10 hours post fertilization<br>Correlation: 1.00", fig.Layout.Annotations[0].Text)
	assert.Equal(t, "24 hours post fertilization<br>Correlation: nan", fig.Layout.Annotations[5].Text)
	assert.Equal(t, 14.0, fig.Layout.Annotations[0].Font.Size)

	for _, id := range []string{"x", "x2", "x3", "x4", "x5", "x6"} {
		axis := fig.Layout.Axes[id]
		require.NotNil(t, axis, id)
		assert.Equal(t, []float64{0, 3}, axis.Range)
		assert.Equal(t, "ATAC", axis.Title.Text)
	}
	for _, id := range []string{"y", "y2", "y3", "y4", "y5", "y6"} {
		axis := fig.Layout.Axes[id]
		require.NotNil(t, axis, id)
		assert.Equal(t, []float64{0, 6}, axis.Range)
		assert.Equal(t, 5.0, *axis.Title.Standoff)
	}

	assert.Equal(t, 70, fig.Layout.Margin.T)
	assert.False(t, *fig.Layout.ShowLegend)
	assert.Equal(t, "correlation_scatterplot", fig.Config.ToImageButtonOptions.Filename)
}
