package models

import "master-reference/core/table"

// Key columns of the three reference sources.
const (
	ColMSCompanyID   = "MS_CompanyID"
	ColMSSecurityID  = "MS_SecurityID"
	ColGcode         = "Gcode"
	ColCompanyTicker = "CompanyTicker"

	ColCompanyID    = "CompanyId"
	ColShareClassID = "ShareClassId"
	ColISIN         = "ISIN"

	ColSymbol = "Symbol"
)

// Required columns per source. Absent columns are read as "".
var (
	SecurityColumns   = []string{ColMSCompanyID, ColMSSecurityID, ColGcode, ColCompanyTicker}
	ShareClassColumns = []string{ColCompanyID, ColShareClassID, ColISIN}
	CompanyColumns    = []string{ColISIN, ColSymbol}
)

// Security is one row of the primary source: a listed security in the SIRCA
// names file. Every column that is not a named field is kept in Extra.
type Security struct {
	MSCompanyID   string
	MSSecurityID  string
	Gcode         string
	CompanyTicker string
	Extra         table.Row
}

// Get returns a column of the row by its source name.
func (s Security) Get(column string) string {
	switch column {
	case ColMSCompanyID:
		return s.MSCompanyID
	case ColMSSecurityID:
		return s.MSSecurityID
	case ColGcode:
		return s.Gcode
	case ColCompanyTicker:
		return s.CompanyTicker
	default:
		return s.Extra.Get(column)
	}
}

// ShareClass is one row of the security reference source.
type ShareClass struct {
	CompanyID    string
	ShareClassID string
	ISIN         string
	Extra        table.Row
}

// Get returns a column of the row by its source name.
func (s ShareClass) Get(column string) string {
	switch column {
	case ColCompanyID:
		return s.CompanyID
	case ColShareClassID:
		return s.ShareClassID
	case ColISIN:
		return s.ISIN
	default:
		return s.Extra.Get(column)
	}
}

// Company is one row of the master company source.
type Company struct {
	ISIN   string
	Symbol string
	Extra  table.Row
}

// Get returns a column of the row by its source name.
func (c Company) Get(column string) string {
	switch column {
	case ColISIN:
		return c.ISIN
	case ColSymbol:
		return c.Symbol
	default:
		return c.Extra.Get(column)
	}
}

// Collection is the typed content of one source.
type Collection[T any] struct {
	// Source names where the rows were read from.
	Source string

	// Header is the source's column order as read.
	Header []string

	// Rows are the records in source order.
	Rows []T
}

// Len returns the number of rows.
func (c Collection[T]) Len() int {
	return len(c.Rows)
}

// NewSecurities types a table as the primary source.
func NewSecurities(t *table.Table) Collection[Security] {
	extra := t.Schema.Without(SecurityColumns...)
	rows := make([]Security, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = Security{
			MSCompanyID:   r.Get(ColMSCompanyID),
			MSSecurityID:  r.Get(ColMSSecurityID),
			Gcode:         r.Get(ColGcode),
			CompanyTicker: r.Get(ColCompanyTicker),
			Extra:         r.Project(extra),
		}
	}
	return Collection[Security]{Source: t.Name, Header: t.Schema.Names(), Rows: rows}
}

// NewShareClasses types a table as the security reference source.
func NewShareClasses(t *table.Table) Collection[ShareClass] {
	extra := t.Schema.Without(ShareClassColumns...)
	rows := make([]ShareClass, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = ShareClass{
			CompanyID:    r.Get(ColCompanyID),
			ShareClassID: r.Get(ColShareClassID),
			ISIN:         r.Get(ColISIN),
			Extra:        r.Project(extra),
		}
	}
	return Collection[ShareClass]{Source: t.Name, Header: t.Schema.Names(), Rows: rows}
}

// NewCompanies types a table as the master company source.
func NewCompanies(t *table.Table) Collection[Company] {
	extra := t.Schema.Without(CompanyColumns...)
	rows := make([]Company, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = Company{
			ISIN:   r.Get(ColISIN),
			Symbol: r.Get(ColSymbol),
			Extra:  r.Project(extra),
		}
	}
	return Collection[Company]{Source: t.Name, Header: t.Schema.Names(), Rows: rows}
}

// MissingColumns lists the required columns absent from a schema.
func MissingColumns(schema *table.Schema, required []string) []string {
	var missing []string
	for _, r := range required {
		if !schema.Has(r) {
			missing = append(missing, r)
		}
	}
	return missing
}
