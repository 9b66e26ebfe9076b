package figure

import "fmt"

// Grid reproduces plotly's make_subplots placement for a rows x cols grid
// with row 1 at the top.
type Grid struct {
	Rows, Cols int
	HSpacing   float64
	VSpacing   float64
}

// NewGrid uses make_subplots' default spacing.
func NewGrid(rows, cols int) Grid {
	return Grid{
		Rows:     rows,
		Cols:     cols,
		HSpacing: 0.2 / float64(cols),
		VSpacing: 0.3 / float64(rows),
	}
}

// AxisIDs names the x and y axes of a 1-based cell: "x"/"y" for the first
// cell, then "x2"/"y2", ...
func (g Grid) AxisIDs(row, col int) (x, y string) {
	n := (row-1)*g.Cols + col
	if n == 1 {
		return "x", "y"
	}
	return fmt.Sprintf("x%d", n), fmt.Sprintf("y%d", n)
}

// Domains returns the paper-coordinate extents of a 1-based cell.
func (g Grid) Domains(row, col int) (xDomain, yDomain [2]float64) {
	width := (1 - g.HSpacing*float64(g.Cols-1)) / float64(g.Cols)
	height := (1 - g.VSpacing*float64(g.Rows-1)) / float64(g.Rows)

	x0 := float64(col-1) * (width + g.HSpacing)
	top := 1 - float64(row-1)*(height+g.VSpacing)
	return [2]float64{x0, x0 + width}, [2]float64{top - height, top}
}

// Apply creates the axes of every cell in the layout, anchored to each other.
func (g Grid) Apply(l *Layout) {
	for row := 1; row <= g.Rows; row++ {
		for col := 1; col <= g.Cols; col++ {
			xID, yID := g.AxisIDs(row, col)
			xd, yd := g.Domains(row, col)

			x := l.Axis(xID)
			x.Domain = xd[:]
			x.Anchor = yID

			y := l.Axis(yID)
			y.Domain = yd[:]
			y.Anchor = xID
		}
	}
}

// Title returns a subplot heading centred above a cell, as make_subplots'
// subplot_titles does.
func (g Grid) Title(row, col int, text string) Annotation {
	xd, yd := g.Domains(row, col)
	return Annotation{
		Text:      text,
		X:         (xd[0] + xd[1]) / 2,
		Y:         yd[1],
		XRef:      "paper",
		YRef:      "paper",
		XAnchor:   "center",
		YAnchor:   "bottom",
		ShowArrow: false,
		Font:      &Font{Size: 16},
	}
}
