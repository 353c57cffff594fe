package reference

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	in := newInputs(t,
		"Gcode,MS_CompanyID,MS_SecurityID,CompanyTicker\n"+
			"G1,1,A,AAA\n"+
			"G1,1,B,AAA\n"+
			"G2,2,A,BBB\n"+
			"G3,,,CCC\n",
		"CompanyId,ShareClassId,ISIN,ActiveOrDelisted\n"+
			"1,A,AU1,A\n"+
			"1,B,,D\n"+
			"2,A,AU2,A\n",
		"ISIN,Symbol,ABN,TradingStatus\n"+
			"AU1,AAA,1,Listed\n"+
			",CCC,3,Delisted\n",
	)

	r := Build(in, DefaultOptions())
	s := Summarize(r)

	assert.Equal(t, 4, s.TotalRows)
	assert.Equal(t, len(r.Columns()), s.TotalColumns)
	assert.Equal(t, 3, s.UniqueGcodes)
	assert.Equal(t, 3, s.WithShareClass)
	assert.Equal(t, 2, s.WithISIN)

	// G1/A by ISIN, G1/B and G3 by symbol; G2 has an unknown ISIN and ticker.
	assert.Equal(t, 3, s.WithCompany)
	assert.Equal(t, 3, s.CompanyMatches)
	assert.Len(t, s.Stages, 3)

	assert.Equal(t, []Count{
		{Label: EmptyLabel, Count: 1},
		{Label: "Delisted", Count: 1},
		{Label: "Listed", Count: 2},
	}, s.TradingStatus)
	assert.Equal(t, []Count{
		{Label: EmptyLabel, Count: 1},
		{Label: "A", Count: 2},
		{Label: "D", Count: 1},
	}, s.ActiveOrDelisted)

	assert.InDelta(t, 75.0, s.Percent(s.WithCompany), 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Build(newInputs(t, "", "", ""), DefaultOptions()))

	assert.Equal(t, 0, s.TotalRows)
	assert.Equal(t, 0.0, s.Percent(0))
	assert.Empty(t, s.TradingStatus)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_rows":0`)
}
