package models

import (
	"strings"
	"testing"

	"master-reference/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, name, csv string) *table.Table {
	t.Helper()
	tbl, err := table.ReadCSV(name, strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}

func TestNewSecurities(t *testing.T) {
	tbl := readTable(t, "si_au_ref_names.csv",
		"Gcode,FullCompanyName,MS_CompanyID,MS_SecurityID,CompanyTicker,SecurityTicker\n"+
			"BHP1,BHP Group,0C000006UU,0P000001D7,BHP,BHP\n")

	c := NewSecurities(tbl)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "si_au_ref_names.csv", c.Source)
	assert.Equal(t, tbl.Schema.Names(), c.Header)

	s := c.Rows[0]
	assert.Equal(t, "0C000006UU", s.MSCompanyID)
	assert.Equal(t, "0P000001D7", s.MSSecurityID)
	assert.Equal(t, "BHP1", s.Gcode)
	assert.Equal(t, "BHP", s.CompanyTicker)

	assert.Equal(t, []string{"FullCompanyName", "SecurityTicker"}, s.Extra.Schema().Names())
	assert.Equal(t, "BHP Group", s.Get("FullCompanyName"))
	assert.Equal(t, "BHP1", s.Get(ColGcode))
	assert.Equal(t, "", s.Get("Unknown"))
}

func TestNewShareClasses_MissingColumns(t *testing.T) {
	tbl := readTable(t, "secref.csv", "CompanyId,CUSIP\n5,123\n")

	c := NewShareClasses(tbl)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "5", c.Rows[0].CompanyID)
	assert.Equal(t, "", c.Rows[0].ShareClassID)
	assert.Equal(t, "", c.Rows[0].ISIN)
	assert.Equal(t, "123", c.Rows[0].Get("CUSIP"))

	assert.Equal(t, []string{ColShareClassID, ColISIN}, MissingColumns(tbl.Schema, ShareClassColumns))
}

func TestNewCompanies(t *testing.T) {
	tbl := readTable(t, "MasterCompany.csv", "ISIN,Symbol,ABN\nAU1,xyz,123\n")

	c := NewCompanies(tbl)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "AU1", c.Rows[0].Get(ColISIN))
	assert.Equal(t, "xyz", c.Rows[0].Get(ColSymbol))
	assert.Equal(t, "123", c.Rows[0].Get("ABN"))
	assert.Nil(t, MissingColumns(tbl.Schema, CompanyColumns))
}

func TestNewCollections_EmptyTable(t *testing.T) {
	tbl := readTable(t, "empty.csv", "")

	assert.Equal(t, 0, NewSecurities(tbl).Len())
	assert.Equal(t, 0, NewShareClasses(tbl).Len())
	assert.Equal(t, 0, NewCompanies(tbl).Len())
}
