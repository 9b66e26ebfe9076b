package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		name  string
		exons []GeneRecord
		peaks []AccessibilityPeak
		want  Range
	}{
		{
			name:  "exons cover peaks",
			exons: []GeneRecord{{Start: 100, End: 200}, {Start: 300, End: 400}},
			peaks: []AccessibilityPeak{{SampleID: "TDR126", Start: 150, End: 350}},
			want:  Range{Start: 100, End: 400},
		},
		{
			name:  "peaks extend both sides",
			exons: []GeneRecord{{Start: 1000, End: 2000}},
			peaks: []AccessibilityPeak{{Start: 500, End: 900}, {Start: 2100, End: 2600}},
			want:  Range{Start: 500, End: 2600},
		},
		{
			name:  "unordered rows",
			exons: []GeneRecord{{Start: 700, End: 800}, {Start: 10, End: 20}},
			peaks: []AccessibilityPeak{{Start: 300, End: 900}},
			want:  Range{Start: 10, End: 900},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRange(tt.exons, tt.peaks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRange_GeneNotFound(t *testing.T) {
	_, err := ResolveRange(nil, []AccessibilityPeak{{Start: 1, End: 2}})
	assert.ErrorIs(t, err, ErrGeneNotFound)

	_, err = ResolveRange([]GeneRecord{{Start: 1, End: 2}}, nil)
	assert.ErrorIs(t, err, ErrGeneNotFound)
}

func TestTicks(t *testing.T) {
	r := Range{Start: 12345, End: 30000}
	ticks := Ticks(r)

	require.Len(t, ticks, 4)
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Position, r.Start)
		assert.LessOrEqual(t, tick.Position, r.End)
		assert.Zero(t, (tick.Position-r.Start)%TickStride)
	}
	assert.Equal(t, "12", ticks[0].Label)
	assert.Equal(t, "12 kbp", ticks[0].Hover)
	assert.Equal(t, "27", ticks[3].Label)
}

func TestTicks_ShortRange(t *testing.T) {
	ticks := Ticks(Range{Start: 100, End: 400})
	require.Len(t, ticks, 1)
	assert.Equal(t, int64(100), ticks[0].Position)
	assert.Equal(t, "0", ticks[0].Label)

	assert.Len(t, Ticks(Range{Start: 7, End: 7}), 1)
	assert.Empty(t, Ticks(Range{Start: 10, End: 9}))
}

func TestTicks_InclusiveEnd(t *testing.T) {
	ticks := Ticks(Range{Start: 0, End: 10000})
	require.Len(t, ticks, 3)
	assert.Equal(t, int64(10000), ticks[2].Position)
}

func TestDirectionArrow(t *testing.T) {
	span := Range{Start: 100, End: 400}

	fwd := DirectionArrow(span, StrandForward)
	rev := DirectionArrow(span, StrandReverse)

	assert.Equal(t, Arrow{Tail: 100, Head: 400, Y: ArrowY}, fwd)
	assert.Equal(t, Arrow{Tail: 400, Head: 100, Y: ArrowY}, rev)
	assert.True(t, fwd.Forward())
	assert.False(t, rev.Forward())
}

func TestBuildTrack(t *testing.T) {
	exons := []GeneRecord{
		{GeneName: "g", Start: 300, End: 400, Strand: "-"},
		{GeneName: "g", Start: 100, End: 200, Strand: "-"},
	}

	track, err := BuildTrack(exons)
	require.NoError(t, err)

	assert.Equal(t, Range{Start: 100, End: 400}, track.Span)
	assert.Equal(t, "-", track.Strand)
	require.Len(t, track.Exons, 2)
	assert.Equal(t, "<b>Start:</b> 300<br><b>End:</b> 400", track.Exons[0].Hover)
	assert.InDelta(t, 0.09, track.Exons[0].Y0, 1e-9)
	assert.InDelta(t, 0.11, track.Exons[0].Y1, 1e-9)
	assert.Equal(t, int64(400), track.Arrow.Tail)
	assert.Equal(t, int64(100), track.Arrow.Head)
}

func TestBuildPeaks_UnknownSample(t *testing.T) {
	_, err := BuildPeaks([]AccessibilityPeak{{GeneName: "g", SampleID: "TDR999", Start: 1, End: 2}}, Timepoints)
	assert.ErrorIs(t, err, ErrUnknownSample)
}

func TestLegendEntries(t *testing.T) {
	entries := LegendEntries(Timepoints)

	require.Len(t, entries, 2+Timepoints.Len())
	assert.Equal(t, "Transcription direction", entries[0].Name)
	assert.Equal(t, GlyphArrow, entries[0].Glyph)
	assert.Equal(t, "Exon", entries[1].Name)
	for i, tp := range Timepoints.All() {
		e := entries[i+2]
		assert.Equal(t, "ATAC peak - "+tp.Label, e.Name)
		assert.Equal(t, tp.Color, e.Color)
		assert.Equal(t, GlyphSquare, e.Glyph)
	}
}

func TestBuildTrackView_Slc4a1a(t *testing.T) {
	exons := []GeneRecord{
		{GeneName: "slc4a1a", Start: 100, End: 200, Strand: "+"},
		{GeneName: "slc4a1a", Start: 300, End: 400, Strand: "+"},
	}
	peaks := []AccessibilityPeak{
		{GeneName: "slc4a1a", SampleID: "TDR126", Start: 150, End: 350},
	}

	view, err := BuildTrackView("slc4a1a", exons, peaks, Timepoints)
	require.NoError(t, err)

	assert.Equal(t, Range{Start: 100, End: 400}, view.Range)
	assert.Equal(t, Arrow{Tail: 100, Head: 400, Y: ArrowY}, view.Track.Arrow)
	assert.Len(t, view.Track.Exons, 2)

	require.Len(t, view.Peaks, 1)
	peak := view.Peaks[0]
	assert.InDelta(t, 0.19, peak.Y0, 1e-9)
	assert.InDelta(t, 0.21, peak.Y1, 1e-9)
	assert.Equal(t, "#440154", peak.Color)
	assert.True(t, strings.Contains(peak.Hover, "10 hours post fertilization"))
}

func TestBuildTrackView_MissingPeaks(t *testing.T) {
	exons := []GeneRecord{{GeneName: "g", Start: 1, End: 2, Strand: "+"}}
	_, err := BuildTrackView("g", exons, nil, Timepoints)
	assert.ErrorIs(t, err, ErrGeneNotFound)
}
