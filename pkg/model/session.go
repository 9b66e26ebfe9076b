package model

// Selection is the ordered list of genes a page shows. It is plain data: each
// interaction takes the current selection and returns the next one.
type Selection []string

// NewSelection starts with a single default gene.
func NewSelection(defaultGene string) Selection {
	return Selection{defaultGene}
}

// Add appends another dropdown preset to the default gene.
func (s Selection) Add(defaultGene string) Selection {
	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, defaultGene)
}

// Reset drops every dropdown but one, set to the default gene.
func (s Selection) Reset(defaultGene string) Selection {
	return NewSelection(defaultGene)
}

// Normalize replaces unknown genes with the default and guarantees at least
// one entry.
func (s Selection) Normalize(defaultGene string, known func(string) bool) Selection {
	if len(s) == 0 {
		return NewSelection(defaultGene)
	}
	out := make(Selection, 0, len(s))
	for _, gene := range s {
		if !known(gene) {
			gene = defaultGene
		}
		out = append(out, gene)
	}
	return out
}

// Apply performs a sidebar action: "add", "reset", or anything else for none.
func (s Selection) Apply(action, defaultGene string) Selection {
	switch action {
	case "add":
		return s.Add(defaultGene)
	case "reset":
		return s.Reset(defaultGene)
	default:
		return s
	}
}
