package render

import (
	"github.com/yumyai/atacrna/pkg/figure"
	"github.com/yumyai/atacrna/pkg/model"
)

const (
	TrackExportStem       = "gene_track"
	CorrelationExportStem = "correlation_scatterplot"

	tickWidth    = 1.25
	legendMarker = 12
)

// ExportConfig lets the mode bar download a figure as SVG named after stem.
func ExportConfig(stem string) *figure.Config {
	return figure.SVGExport(stem)
}

// TrackFigure draws the genomic axis, gene model, ATAC peaks and legend of a
// track view in that order.
func TrackFigure(view *model.TrackView) *figure.Figure {
	fig := figure.New()
	fig.Config = ExportConfig(TrackExportStem)

	addAxisLayer(fig, view.Range, view.Ticks)
	addGeneLayer(fig, view.Track)
	for _, peak := range view.Peaks {
		addRect(fig, peak)
	}
	for _, entry := range view.Legend {
		fig.AddTrace(legendTrace(entry))
	}

	x := fig.Layout.Axis("x")
	x.AutoRange = figure.Bool(true)
	x.ShowGrid = figure.Bool(false)

	y := fig.Layout.Axis("y")
	y.Range = []float64{-1, 1}
	y.Visible = figure.Bool(false)
	y.ShowGrid = figure.Bool(false)

	fig.Layout.PlotBGColor = "rgba(0,0,0,0)"
	return fig
}

func addAxisLayer(fig *figure.Figure, r model.Range, ticks []model.Tick) {
	axis := figure.Scatter()
	axis.X = figure.Values(r.Start, r.End)
	axis.Y = figure.Values(0.0, 0.0)
	axis.Mode = "lines"
	axis.HoverInfo = "none"
	axis.Line = &figure.Line{Color: "black", Width: 2}
	axis.ShowLegend = figure.Bool(false)
	fig.AddTrace(axis)

	tickVals := make([]any, 0, len(ticks))
	tickText := make([]string, 0, len(ticks))
	for _, tick := range ticks {
		t := figure.Scatter()
		t.X = figure.Values(tick.Position, tick.Position)
		t.Y = figure.Values(-model.TickLength/2, model.TickLength/2)
		t.Mode = "lines"
		t.HoverInfo = "text"
		t.Text = tick.Hover
		t.Line = &figure.Line{Color: "black", Width: tickWidth}
		t.ShowLegend = figure.Bool(false)
		fig.AddTrace(t)

		tickVals = append(tickVals, tick.Position)
		tickText = append(tickText, tick.Label)
	}

	x := fig.Layout.Axis("x")
	x.Range = []float64{float64(r.Start - 1), float64(r.End + 1)}
	x.Title = &figure.Title{Text: "Genomic Coordinate (kbp)"}
	x.TickVals = tickVals
	x.TickText = tickText
}

func addGeneLayer(fig *figure.Figure, track model.Track) {
	line := figure.Scatter()
	line.X = figure.Values(track.Span.Start, track.Span.End)
	line.Y = figure.Values(model.GeneLineY, model.GeneLineY)
	line.Mode = "lines"
	line.HoverInfo = "none"
	line.Line = &figure.Line{Color: "gray", Width: 2}
	line.ShowLegend = figure.Bool(false)
	fig.AddTrace(line)

	for _, exon := range track.Exons {
		addRect(fig, exon)
	}

	a := track.Arrow
	fig.AddAnnotation(figure.Annotation{
		X:          float64(a.Head),
		Y:          a.Y,
		AX:         figure.Float(float64(a.Tail)),
		AY:         figure.Float(a.Y),
		XRef:       "x",
		YRef:       "y",
		AXRef:      "x",
		AYRef:      "y",
		ShowArrow:  true,
		ArrowHead:  3,
		ArrowSize:  1,
		ArrowWidth: 2,
		ArrowColor: "lightgray",
	})
}

// addRect draws a filled box as a layout shape plus a closed trace over the
// same outline that carries its hover text.
func addRect(fig *figure.Figure, r model.Rect) {
	fig.AddShape(figure.Shape{
		Type:      "rect",
		X0:        float64(r.X0),
		Y0:        r.Y0,
		X1:        float64(r.X1),
		Y1:        r.Y1,
		Line:      &figure.Line{Color: r.Color},
		FillColor: r.Color,
	})

	hover := figure.Scatter()
	hover.X = figure.Values(r.X0, r.X1, r.X1, r.X0, r.X0)
	hover.Y = figure.Values(r.Y1, r.Y1, r.Y0, r.Y0, r.Y1)
	hover.Fill = "toself"
	hover.Mode = "lines"
	hover.HoverInfo = "text"
	hover.Text = r.Hover
	hover.ShowLegend = figure.Bool(false)
	fig.AddTrace(hover)
}

func legendTrace(entry model.LegendEntry) *figure.Trace {
	t := figure.Scatter()
	t.Name = entry.Name
	t.X = figure.Nulls(1)
	if entry.Y != 0 {
		t.Y = figure.Values(entry.Y, entry.Y)
	} else {
		t.Y = figure.Nulls(1)
	}

	switch entry.Glyph {
	case model.GlyphArrow:
		t.Mode = "lines+markers"
		t.Line = &figure.Line{Color: entry.Color, Width: 3}
		t.Marker = &figure.Marker{Symbol: "triangle-right", Size: legendMarker, Color: entry.Color}
	default:
		t.Mode = "markers"
		t.Marker = &figure.Marker{Symbol: "square", Size: legendMarker, Color: entry.Color}
	}
	return t
}
