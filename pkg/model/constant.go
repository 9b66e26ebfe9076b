package model

import "fmt"

// Timepoint describes one sequenced sample and how it is drawn.
type Timepoint struct {
	SampleID string
	Label    string
	Height   float64
	Color    string
}

// TimepointTable is the ordered, read-only set of known samples.
type TimepointTable struct {
	entries []Timepoint
	index   map[string]int
}

func newTimepointTable(entries ...Timepoint) *TimepointTable {
	t := &TimepointTable{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, tp := range entries {
		t.index[tp.SampleID] = i
	}
	return t
}

// Timepoints is shared by the track and the correlation grid so that order,
// labels and colors agree everywhere.
var Timepoints = newTimepointTable(
	Timepoint{SampleID: "TDR126", Label: "10 hours post fertilization", Height: 0.200, Color: "#440154"},
	Timepoint{SampleID: "TDR127", Label: "12 hours post fertilization", Height: 0.225, Color: "#414487"},
	Timepoint{SampleID: "TDR128", Label: "14 hours post fertilization", Height: 0.250, Color: "#2A788E"},
	Timepoint{SampleID: "TDR118", Label: "16 hours post fertilization", Height: 0.275, Color: "#22A884"},
	Timepoint{SampleID: "TDR125", Label: "19 hours post fertilization", Height: 0.300, Color: "#7AD151"},
	Timepoint{SampleID: "TDR124", Label: "24 hours post fertilization", Height: 0.325, Color: "#FDE725"},
)

// All returns a copy of the entries in display order.
func (t *TimepointTable) All() []Timepoint {
	out := make([]Timepoint, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *TimepointTable) Len() int {
	return len(t.entries)
}

// Lookup finds a sample by id. Unknown ids are an ErrUnknownSample.
func (t *TimepointTable) Lookup(sampleID string) (Timepoint, error) {
	i, ok := t.index[sampleID]
	if !ok {
		return Timepoint{}, fmt.Errorf("%w: %q", ErrUnknownSample, sampleID)
	}
	return t.entries[i], nil
}

// Palette is an injective mapping between cell types and display colors.
type Palette struct {
	order   []string
	toColor map[string]string
	toType  map[string]string
}

// NewPalette builds a palette from (cell type, color) pairs. A repeated cell
// type or color breaks the inverse mapping and is rejected.
func NewPalette(pairs [][2]string) (*Palette, error) {
	p := &Palette{
		toColor: make(map[string]string, len(pairs)),
		toType:  make(map[string]string, len(pairs)),
	}
	for _, pair := range pairs {
		cellType, color := pair[0], pair[1]
		if _, dup := p.toColor[cellType]; dup {
			return nil, fmt.Errorf("palette: duplicate cell type %q", cellType)
		}
		if prev, dup := p.toType[color]; dup {
			return nil, fmt.Errorf("palette: color %s used by %q and %q", color, prev, cellType)
		}
		p.order = append(p.order, cellType)
		p.toColor[cellType] = color
		p.toType[color] = cellType
	}
	return p, nil
}

func mustPalette(pairs [][2]string) *Palette {
	p, err := NewPalette(pairs)
	if err != nil {
		panic(err)
	}
	return p
}

// CellTypePalette holds the colors metacells are drawn with.
var CellTypePalette = mustPalette([][2]string{
	{"NMPs", "#8dd3c7"},
	{"PSM", "#008080"},
	{"differentiating_neurons", "#bebada"},
	{"endocrine_pancreas", "#fb8072"},
	{"endoderm", "#80b1d3"},
	{"enteric_neurons", "#fdb462"},
	{"epidermis", "#DAA520"},
	{"fast_muscle", "#df4b9b"},
	{"floor_plate", "#d9d9d9"},
	{"hatching_gland", "#bc80bd"},
	{"heart_myocardium", "#ccebc5"},
	{"hemangioblasts", "#ffed6f"},
	{"hematopoietic_vasculature", "#e41a1c"},
	{"hindbrain", "#377eb8"},
	{"lateral_plate_mesoderm", "#4daf4a"},
	{"midbrain_hindbrain_boundary", "#984ea3"},
	{"muscle", "#ff7f00"},
	{"neural", "#ffff33"},
	{"neural_crest", "#a65628"},
	{"neural_floor_plate", "#f781bf"},
	{"neural_optic", "#999999"},
	{"neural_posterior", "#393b7f"},
	{"neural_telencephalon", "#1b9e77"},
	{"neurons", "#d95f02"},
	{"notochord", "#7570b3"},
	{"optic_cup", "#e7298a"},
	{"pharyngeal_arches", "#66a61e"},
	{"primordial_germ_cells", "#e6ab02"},
	{"pronephros", "#a6761d"},
	{"somites", "#666666"},
	{"spinal_cord", "#b15928"},
	{"tail_bud", "#6a3d9a"},
})

// CellTypes lists the cell types in palette order.
func (p *Palette) CellTypes() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Palette) ColorOf(cellType string) (string, bool) {
	c, ok := p.toColor[cellType]
	return c, ok
}

func (p *Palette) CellTypeOf(color string) (string, error) {
	t, ok := p.toType[color]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColor, color)
	}
	return t, nil
}

// InvertColors maps a per-metacell color list back to cell-type names.
// The first unknown color aborts the whole lookup.
func (p *Palette) InvertColors(colors []string) ([]string, error) {
	out := make([]string, len(colors))
	for i, c := range colors {
		t, err := p.CellTypeOf(c)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// LabelObservations is InvertColors over the colors of obs.
func (p *Palette) LabelObservations(obs []Observation) ([]string, error) {
	colors := make([]string, len(obs))
	for i, o := range obs {
		colors[i] = o.Color
	}
	return p.InvertColors(colors)
}
