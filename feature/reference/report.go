package reference

import (
	"sort"

	"master-reference/core/reconcile"
	"master-reference/feature/reference/models"
)

// EmptyLabel replaces an empty value in frequency breakdowns.
const EmptyLabel = "(unmatched/empty)"

// Count is one entry of a frequency breakdown.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds the statistics of a build.
type Summary struct {
	TotalRows      int `json:"total_rows"`
	TotalColumns   int `json:"total_columns"`
	UniqueGcodes   int `json:"unique_gcodes"`
	WithShareClass int `json:"with_security_reference"`
	WithCompany    int `json:"with_master_company"`
	WithISIN       int `json:"with_isin"`
	CompanyMatches int `json:"company_matches"`

	Stages   []reconcile.StageResult `json:"stages"`
	Appended []string                `json:"appended_columns,omitempty"`
	Dropped  []string                `json:"dropped_columns,omitempty"`

	TradingStatus    []Count `json:"trading_status"`
	ActiveOrDelisted []Count `json:"active_or_delisted"`
}

// Summarize computes the statistics of a build result.
func Summarize(result *Result) Summary {
	s := Summary{
		TotalRows:      len(result.Rows),
		TotalColumns:   len(result.Plan.Columns),
		CompanyMatches: result.CompanyMatches(),
		Stages:         result.Stages,
		Appended:       result.Plan.Appended,
		Dropped:        result.Plan.Dropped,
	}

	srISIN := result.Layout.ShareClass.Qualify(models.ColISIN)
	mcStatus := result.Layout.Company.Qualify("TradingStatus")
	srActive := result.Layout.ShareClass.Qualify("ActiveOrDelisted")

	gcodes := make(map[string]struct{})
	status := make(map[string]int)
	active := make(map[string]int)
	for i := range result.Rows {
		row := &result.Rows[i]
		gcodes[row.Security.Gcode] = struct{}{}
		if row.SR.Matched {
			s.WithShareClass++
		}
		if row.MC.Matched {
			s.WithCompany++
		}
		if row.Get(srISIN) != "" {
			s.WithISIN++
		}
		status[row.Get(mcStatus)]++
		active[row.Get(srActive)]++
	}
	s.UniqueGcodes = len(gcodes)
	s.TradingStatus = breakdown(status)
	s.ActiveOrDelisted = breakdown(active)

	return s
}

// Percent returns n as a percentage of the total row count.
func (s Summary) Percent(n int) float64 {
	if s.TotalRows == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.TotalRows)
}

func breakdown(counts map[string]int) []Count {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]Count, len(labels))
	for i, l := range labels {
		label := l
		if label == "" {
			label = EmptyLabel
		}
		out[i] = Count{Label: label, Count: counts[l]}
	}
	return out
}
