package model

import (
	"fmt"
	"math"
)

// Track layout constants, in data units of the hidden y axis.
const (
	TickStride     int64 = 5000
	TickLength           = 0.015
	GeneLineY            = 0.1
	ExonHalfHeight       = 0.01
	ArrowY               = 0.07
	PeakHalfHeight       = 0.01
	legendPeakY          = 0.15
)

const (
	StrandForward = "+"
	StrandReverse = "-"
)

// ResolveRange returns the interval covering every exon and every peak of a
// gene. A gene missing from either table is reported as ErrGeneNotFound.
func ResolveRange(exons []GeneRecord, peaks []AccessibilityPeak) (Range, error) {
	if len(exons) == 0 {
		return Range{}, fmt.Errorf("%w: no exon records", ErrGeneNotFound)
	}
	if len(peaks) == 0 {
		return Range{}, fmt.Errorf("%w: no accessibility peaks", ErrGeneNotFound)
	}

	r := Range{Start: math.MaxInt64, End: math.MinInt64}
	for _, e := range exons {
		r.Start = min(r.Start, e.Start)
		r.End = max(r.End, e.End)
	}
	for _, p := range peaks {
		r.Start = min(r.Start, p.Start)
		r.End = max(r.End, p.End)
	}
	return r, nil
}

// Tick is one labelled position on the genomic axis.
type Tick struct {
	Position int64
	Label    string // bare kbp value shown on the axis
	Hover    string // value with unit
}

// Ticks places a tick every TickStride bases from r.Start up to r.End.
func Ticks(r Range) []Tick {
	if r.End < r.Start {
		return nil
	}
	ticks := make([]Tick, 0, r.Len()/TickStride+1)
	for pos := r.Start; pos <= r.End; pos += TickStride {
		kbp := pos / 1000
		ticks = append(ticks, Tick{
			Position: pos,
			Label:    fmt.Sprintf("%d", kbp),
			Hover:    fmt.Sprintf("%d kbp", kbp),
		})
	}
	return ticks
}

// Rect is a filled box with hover text.
type Rect struct {
	X0, X1 int64
	Y0, Y1 float64
	Color  string
	Hover  string
}

// Arrow points from Tail to Head along the genomic axis.
type Arrow struct {
	Tail, Head int64
	Y          float64
}

// Forward reports whether the arrow points toward higher coordinates.
func (a Arrow) Forward() bool {
	return a.Head >= a.Tail
}

// Track is the drawable gene model of one gene.
type Track struct {
	Span   Range
	Strand string
	Exons  []Rect
	Arrow  Arrow
}

// DirectionArrow spans the gene and points along the strand.
func DirectionArrow(span Range, strand string) Arrow {
	if strand == StrandForward {
		return Arrow{Tail: span.Start, Head: span.End, Y: ArrowY}
	}
	return Arrow{Tail: span.End, Head: span.Start, Y: ArrowY}
}

// BuildTrack lays out the gene line, exon boxes and the direction arrow.
// The strand of the first exon row applies to the whole gene.
func BuildTrack(exons []GeneRecord) (Track, error) {
	if len(exons) == 0 {
		return Track{}, fmt.Errorf("%w: no exon records", ErrGeneNotFound)
	}

	span := Range{Start: exons[0].Start, End: exons[0].End}
	rects := make([]Rect, 0, len(exons))
	for _, e := range exons {
		span.Start = min(span.Start, e.Start)
		span.End = max(span.End, e.End)
		rects = append(rects, Rect{
			X0:    e.Start,
			X1:    e.End,
			Y0:    GeneLineY - ExonHalfHeight,
			Y1:    GeneLineY + ExonHalfHeight,
			Color: "dodgerblue",
			Hover: fmt.Sprintf("<b>Start:</b> %d<br><b>End:</b> %d", e.Start, e.End),
		})
	}

	strand := exons[0].Strand
	return Track{
		Span:   span,
		Strand: strand,
		Exons:  rects,
		Arrow:  DirectionArrow(span, strand),
	}, nil
}

// BuildPeaks draws each peak at the height and color of its sample.
func BuildPeaks(peaks []AccessibilityPeak, table *TimepointTable) ([]Rect, error) {
	out := make([]Rect, 0, len(peaks))
	for _, p := range peaks {
		tp, err := table.Lookup(p.SampleID)
		if err != nil {
			return nil, fmt.Errorf("peak %d-%d of %s: %w", p.Start, p.End, p.GeneName, err)
		}
		out = append(out, Rect{
			X0:    p.Start,
			X1:    p.End,
			Y0:    tp.Height - PeakHalfHeight,
			Y1:    tp.Height + PeakHalfHeight,
			Color: tp.Color,
			Hover: fmt.Sprintf("<b>Sample:</b> %s<br><b>Start:</b> %d<br><b>End:</b> %d<br>",
				tp.Label, p.Start, p.End),
		})
	}
	return out, nil
}

// Glyph is the legend marker shape.
type Glyph string

const (
	GlyphArrow  Glyph = "arrow"
	GlyphSquare Glyph = "square"
)

// LegendEntry is a legend-only item that carries no data.
type LegendEntry struct {
	Name  string
	Glyph Glyph
	Color string
	Y     float64
}

// LegendEntries returns direction, exon, then one entry per timepoint.
func LegendEntries(table *TimepointTable) []LegendEntry {
	entries := []LegendEntry{
		{Name: "Transcription direction", Glyph: GlyphArrow, Color: "lightgray"},
		{Name: "Exon", Glyph: GlyphSquare, Color: "dodgerblue"},
	}
	for _, tp := range table.All() {
		entries = append(entries, LegendEntry{
			Name:  "ATAC peak - " + tp.Label,
			Glyph: GlyphSquare,
			Color: tp.Color,
			Y:     legendPeakY,
		})
	}
	return entries
}

// TrackView is everything needed to draw the combined track figure.
type TrackView struct {
	Gene   string
	Range  Range
	Ticks  []Tick
	Track  Track
	Peaks  []Rect
	Legend []LegendEntry
}

// BuildTrackView runs the track pipeline for one gene.
func BuildTrackView(gene string, exons []GeneRecord, peaks []AccessibilityPeak, table *TimepointTable) (*TrackView, error) {
	r, err := ResolveRange(exons, peaks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gene, err)
	}

	track, err := BuildTrack(exons)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gene, err)
	}

	peakRects, err := BuildPeaks(peaks, table)
	if err != nil {
		return nil, err
	}

	return &TrackView{
		Gene:   gene,
		Range:  r,
		Ticks:  Ticks(r),
		Track:  track,
		Peaks:  peakRects,
		Legend: LegendEntries(table),
	}, nil
}
