// Package figure is a small declarative figure model that serializes to the
// JSON accepted by plotly.js (Plotly.newPlot(el, data, layout, config)).
package figure

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Figure is a complete plot: traces, layout and the browser-side config.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
	Config *Config  `json:"config,omitempty"`
}

func New() *Figure {
	return &Figure{Layout: NewLayout()}
}

func (f *Figure) AddTrace(t *Trace) {
	f.Data = append(f.Data, t)
}

func (f *Figure) AddShape(s Shape) {
	f.Layout.Shapes = append(f.Layout.Shapes, s)
}

func (f *Figure) AddAnnotation(a Annotation) {
	f.Layout.Annotations = append(f.Layout.Annotations, a)
}

// JSON encodes the figure for embedding in a page.
func (f *Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode figure: %w", err)
	}
	return string(b), nil
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Marker struct {
	Color  any     `json:"color,omitempty"` // one color or one per point
	Size   float64 `json:"size,omitempty"`
	Symbol string  `json:"symbol,omitempty"`
}

// Trace is a scatter trace. X and Y hold any so that legend-only traces can
// carry null coordinates.
type Trace struct {
	Type       string  `json:"type"`
	Name       string  `json:"name,omitempty"`
	X          []any   `json:"x"`
	Y          []any   `json:"y"`
	Mode       string  `json:"mode,omitempty"`
	Fill       string  `json:"fill,omitempty"`
	HoverInfo  string  `json:"hoverinfo,omitempty"`
	Text       any     `json:"text,omitempty"`
	Line       *Line   `json:"line,omitempty"`
	Marker     *Marker `json:"marker,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	XAxis      string  `json:"xaxis,omitempty"`
	YAxis      string  `json:"yaxis,omitempty"`
}

// Scatter returns an empty scatter trace.
func Scatter() *Trace {
	return &Trace{Type: "scatter"}
}

// Values converts numbers into trace coordinates.
func Values[T ~int | ~int64 | ~float64](v ...T) []any {
	out := make([]any, len(v))
	for i, x := range v {
		out[i] = x
	}
	return out
}

// Nulls returns n null coordinates.
func Nulls(n int) []any {
	return make([]any, n)
}

type Font struct {
	Size float64 `json:"size,omitempty"`
}

type Title struct {
	Text     string   `json:"text,omitempty"`
	Font     *Font    `json:"font,omitempty"`
	Standoff *float64 `json:"standoff,omitempty"`
}

type Axis struct {
	Title     *Title    `json:"title,omitempty"`
	Range     []float64 `json:"range,omitempty"`
	AutoRange *bool     `json:"autorange,omitempty"`
	Visible   *bool     `json:"visible,omitempty"`
	ShowGrid  *bool     `json:"showgrid,omitempty"`
	TickVals  []any     `json:"tickvals,omitempty"`
	TickText  []string  `json:"ticktext,omitempty"`
	Domain    []float64 `json:"domain,omitempty"`
	Anchor    string    `json:"anchor,omitempty"`
}

type Shape struct {
	Type      string  `json:"type"`
	X0        float64 `json:"x0"`
	Y0        float64 `json:"y0"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	Line      *Line   `json:"line,omitempty"`
	FillColor string  `json:"fillcolor,omitempty"`
}

// Annotation is either a text label or, with ShowArrow, an arrow drawn from
// (AX, AY) to (X, Y).
type Annotation struct {
	Text       string   `json:"text"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	AX         *float64 `json:"ax,omitempty"`
	AY         *float64 `json:"ay,omitempty"`
	XRef       string   `json:"xref,omitempty"`
	YRef       string   `json:"yref,omitempty"`
	AXRef      string   `json:"axref,omitempty"`
	AYRef      string   `json:"ayref,omitempty"`
	XAnchor    string   `json:"xanchor,omitempty"`
	YAnchor    string   `json:"yanchor,omitempty"`
	ShowArrow  bool     `json:"showarrow"`
	ArrowHead  int      `json:"arrowhead,omitempty"`
	ArrowSize  float64  `json:"arrowsize,omitempty"`
	ArrowWidth float64  `json:"arrowwidth,omitempty"`
	ArrowColor string   `json:"arrowcolor,omitempty"`
	Font       *Font    `json:"font,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout holds figure-wide settings. Axes are keyed by trace axis id
// ("x", "y2", ...) and written out as plotly's "xaxis", "yaxis2", ...
type Layout struct {
	Axes        map[string]*Axis
	Shapes      []Shape
	Annotations []Annotation
	Margin      *Margin
	ShowLegend  *bool
	PlotBGColor string
}

func NewLayout() *Layout {
	return &Layout{Axes: make(map[string]*Axis)}
}

// Axis returns the axis with the given id, creating it if needed.
func (l *Layout) Axis(id string) *Axis {
	if a, ok := l.Axes[id]; ok {
		return a
	}
	a := &Axis{}
	l.Axes[id] = a
	return a
}

// LayoutKey maps an axis id to its layout attribute: "x" -> "xaxis",
// "y3" -> "yaxis3".
func LayoutKey(id string) string {
	if id == "" {
		return ""
	}
	return id[:1] + "axis" + id[1:]
}

func (l *Layout) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Axes)+5)
	for id, axis := range l.Axes {
		if !strings.HasPrefix(id, "x") && !strings.HasPrefix(id, "y") {
			return nil, fmt.Errorf("layout: bad axis id %q", id)
		}
		out[LayoutKey(id)] = axis
	}
	if len(l.Shapes) > 0 {
		out["shapes"] = l.Shapes
	}
	if len(l.Annotations) > 0 {
		out["annotations"] = l.Annotations
	}
	if l.Margin != nil {
		out["margin"] = l.Margin
	}
	if l.ShowLegend != nil {
		out["showlegend"] = *l.ShowLegend
	}
	if l.PlotBGColor != "" {
		out["plot_bgcolor"] = l.PlotBGColor
	}
	return json.Marshal(out)
}

// ImageOptions configures the mode bar's "download plot" button.
type ImageOptions struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Height   *int   `json:"height"`
	Width    *int   `json:"width"`
	Scale    int    `json:"scale"`
}

type Config struct {
	ToImageButtonOptions ImageOptions `json:"toImageButtonOptions"`
	DisplayModeBar       bool         `json:"displayModeBar"`
}

// SVGExport downloads the figure as an unscaled SVG named after stem. Height
// and width stay null so the on-screen size is used.
func SVGExport(stem string) *Config {
	return &Config{
		ToImageButtonOptions: ImageOptions{
			Format:   "svg",
			Filename: stem,
			Scale:    1,
		},
		DisplayModeBar: true,
	}
}

func Bool(b bool) *bool {
	return &b
}

func Float(f float64) *float64 {
	return &f
}
