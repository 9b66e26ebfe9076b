package render

import (
	"github.com/yumyai/atacrna/pkg/figure"
	"github.com/yumyai/atacrna/pkg/model"
)

// CorrelationFigure lays the panels of grid out as a 2x3 subplot figure with
// shared [0, max] axes.
func CorrelationFigure(grid *model.Grid) *figure.Figure {
	fig := figure.New()
	fig.Config = ExportConfig(CorrelationExportStem)

	sub := figure.NewGrid(model.GridRows, model.GridCols)
	sub.Apply(fig.Layout)

	for _, panel := range grid.Panels {
		xID, yID := sub.AxisIDs(panel.Row, panel.Col)

		rna, atac := model.Split(panel.Observations)
		colors := make([]string, len(panel.Observations))
		for i, o := range panel.Observations {
			colors[i] = o.Color
		}

		t := figure.Scatter()
		t.X = figure.Values(atac...)
		t.Y = figure.Values(rna...)
		t.Mode = "markers"
		t.Marker = &figure.Marker{Color: colors}
		t.HoverInfo = "text"
		t.Text = panel.CellTypes
		t.XAxis = xID
		t.YAxis = yID
		fig.AddTrace(t)

		title := sub.Title(panel.Row, panel.Col, panel.Title())
		title.Font = &figure.Font{Size: 14}
		fig.AddAnnotation(title)

		x := fig.Layout.Axis(xID)
		x.Title = &figure.Title{Text: "ATAC", Font: &figure.Font{Size: 10}, Standoff: figure.Float(4)}
		x.Range = []float64{0, grid.XMax}

		y := fig.Layout.Axis(yID)
		y.Title = &figure.Title{Text: "RNA", Font: &figure.Font{Size: 10}, Standoff: figure.Float(5)}
		y.Range = []float64{0, grid.YMax}
	}

	fig.Layout.Margin = &figure.Margin{L: 10, R: 10, T: 70, B: 0}
	fig.Layout.ShowLegend = figure.Bool(false)
	return fig
}
