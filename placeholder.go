package sqlexpand

// Placeholder is one unquoted placeholder token found in a statement.
type Placeholder struct {
	Ordinal int        // 0-based position among the located placeholders
	Offset  int        // byte offset of the token character
	Name    Identifier // named mode only; empty for ?
}

// Len returns the byte length of the token, including the token character.
func (p Placeholder) Len() int {
	return len(p.Name) + 1
}

// Placeholders are always ordered by Offset.
type Placeholders []Placeholder

func (ps Placeholders) Offsets() (offsets []int) {
	offsets = make([]int, len(ps))
	for i, p := range ps {
		offsets[i] = p.Offset
	}
	return offsets
}

// Names returns the name of every named placeholder in order of appearance,
// duplicates included.
func (ps Placeholders) Names() (names []Identifier) {
	names = make([]Identifier, 0, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// ByOffset maps the offset of each named placeholder to its name.
func (ps Placeholders) ByOffset() map[int]Identifier {
	m := make(map[int]Identifier, len(ps))
	for _, p := range ps {
		m[p.Offset] = p.Name
	}
	return m
}

func (ps Placeholders) clone() Placeholders {
	if ps == nil {
		return nil
	}
	c := make(Placeholders, len(ps))
	copy(c, ps)
	return c
}
