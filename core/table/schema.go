package table

// Schema is an ordered set of column names.
// Duplicate names keep their first position.
type Schema struct {
	names []string
	pos   map[string]int
}

// NewSchema builds a schema from column names in order.
func NewSchema(names []string) *Schema {
	s := &Schema{
		names: make([]string, 0, len(names)),
		pos:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, exists := s.pos[name]; exists {
			continue
		}
		s.pos[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s
}

// Names returns a copy of the column names in order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.names)
}

// Has reports whether the schema contains the column.
func (s *Schema) Has(name string) bool {
	_, ok := s.pos[name]
	return ok
}

// Index returns the position of a column, or -1 if absent.
func (s *Schema) Index(name string) int {
	if i, ok := s.pos[name]; ok {
		return i
	}
	return -1
}

// Without returns a new schema with the given columns removed.
func (s *Schema) Without(names ...string) *Schema {
	skip := make(map[string]struct{}, len(names))
	for _, n := range names {
		skip[n] = struct{}{}
	}
	kept := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if _, ok := skip[n]; !ok {
			kept = append(kept, n)
		}
	}
	return NewSchema(kept)
}
