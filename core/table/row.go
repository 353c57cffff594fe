package table

// Field is a single named value.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Row holds one record's values positioned by its schema.
// The zero Row has no columns and answers "" for every lookup.
type Row struct {
	schema *Schema
	values []string
}

// NewRow binds values to a schema. Missing trailing values are treated as empty
// and surplus values are ignored.
func NewRow(schema *Schema, values []string) Row {
	v := make([]string, schema.Len())
	copy(v, values)
	return Row{schema: schema, values: v}
}

// Schema returns the schema the row is bound to.
func (r Row) Schema() *Schema {
	return r.schema
}

// Lookup returns the value of a column and whether the column exists.
func (r Row) Lookup(name string) (string, bool) {
	if r.schema == nil {
		return "", false
	}
	i := r.schema.Index(name)
	if i < 0 {
		return "", false
	}
	return r.values[i], true
}

// Get returns the value of a column, or "" if the column is absent.
func (r Row) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Fields returns the row's values as ordered name/value pairs.
func (r Row) Fields() []Field {
	if r.schema == nil {
		return nil
	}
	out := make([]Field, len(r.values))
	for i, name := range r.schema.names {
		out[i] = Field{Name: name, Value: r.values[i]}
	}
	return out
}

// Project copies the row onto another schema, matching columns by name.
func (r Row) Project(schema *Schema) Row {
	values := make([]string, schema.Len())
	for i, name := range schema.names {
		values[i] = r.Get(name)
	}
	return Row{schema: schema, values: values}
}

// Table is a named, ordered collection of rows sharing one schema.
type Table struct {
	// Name identifies where the table was read from.
	Name string

	// Schema is the header of the table.
	Schema *Schema

	// Rows are the records in source order.
	Rows []Row

	// Ragged counts records whose width differed from the header.
	Ragged int
}
