package reconcile

// StageResult reports the outcome of a single join stage.
type StageResult struct {
	// Stage is the name of the stage.
	Stage string `json:"stage"`

	// Matched counts targets that found an indexed item.
	Matched int `json:"matched"`

	// Total counts targets the stage considered.
	Total int `json:"total"`
}

// Unmatched returns the number of considered targets without a match.
func (r StageResult) Unmatched() int {
	return r.Total - r.Matched
}

// Columns is the namespaced copy list of one source.
// A column "ISIN" under prefix "SR" is exposed as "SR_ISIN".
type Columns struct {
	prefix string
	names  []string
	pos    map[string]int
}

// NewColumns builds a copy list. Duplicate names are ignored.
func NewColumns(prefix string, names []string) *Columns {
	c := &Columns{
		prefix: prefix,
		names:  make([]string, 0, len(names)),
		pos:    make(map[string]int, len(names)),
	}
	for _, n := range names {
		q := c.Qualify(n)
		if _, dup := c.pos[q]; dup {
			continue
		}
		c.pos[q] = len(c.names)
		c.names = append(c.names, n)
	}
	return c
}

// Available keeps the wanted names that exist in header, in wanted order.
func Available(wanted []string, header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	out := make([]string, 0, len(wanted))
	for _, w := range wanted {
		if _, ok := present[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Names returns the unqualified source column names.
func (c *Columns) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.names)
}

// Qualify returns the namespaced name of a source column.
func (c *Columns) Qualify(name string) string {
	return c.prefix + "_" + name
}

// Qualified returns every namespaced column name in order.
func (c *Columns) Qualified() []string {
	out := make([]string, len(c.names))
	for i, n := range c.names {
		out[i] = c.Qualify(n)
	}
	return out
}

// Position returns the slot of a namespaced column.
func (c *Columns) Position(qualified string) (int, bool) {
	i, ok := c.pos[qualified]
	return i, ok
}

// Enrichment holds the values one stage copied into a merged row.
type Enrichment struct {
	// Matched is true once a stage found a source item for the row.
	Matched bool `json:"matched"`

	// Via names the stage that produced the match ("" when unmatched).
	Via string `json:"via,omitempty"`

	// Values are aligned with the Columns of the source.
	Values []string `json:"values"`
}

// Unmatched returns the empty placeholder for a copy list.
func Unmatched(cols *Columns) Enrichment {
	return Enrichment{Values: make([]string, cols.Len())}
}

// Matched copies every column of the copy list out of a source item.
func Matched(cols *Columns, via string, get func(name string) string) Enrichment {
	values := make([]string, cols.Len())
	for i, n := range cols.names {
		values[i] = get(n)
	}
	return Enrichment{Matched: true, Via: via, Values: values}
}

// Value resolves a namespaced column against the enrichment.
// ok is false if the column does not belong to the copy list.
func (e Enrichment) Value(cols *Columns, qualified string) (string, bool) {
	i, ok := cols.Position(qualified)
	if !ok {
		return "", false
	}
	if i >= len(e.Values) {
		return "", true
	}
	return e.Values[i], true
}

// Get returns the value of an unqualified source column.
func (e Enrichment) Get(cols *Columns, name string) string {
	v, _ := e.Value(cols, cols.Qualify(name))
	return v
}
