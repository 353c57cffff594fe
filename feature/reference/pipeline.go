package reference

import (
	"slices"

	"master-reference/core/reconcile"
	"master-reference/feature/reference/models"
)

// Inputs are the three typed sources of a build.
type Inputs struct {
	Securities   models.Collection[models.Security]
	ShareClasses models.Collection[models.ShareClass]
	Companies    models.Collection[models.Company]
}

// Layout is the namespaced column set shared by every merged row.
type Layout struct {
	ShareClass *reconcile.Columns
	Company    *reconcile.Columns
}

// NewLayout keeps the copy columns that exist in the source headers.
func NewLayout(in *Inputs, opts Options) *Layout {
	return &Layout{
		ShareClass: reconcile.NewColumns(PrefixShareClass, reconcile.Available(opts.ShareClassColumns, in.ShareClasses.Header)),
		Company:    reconcile.NewColumns(PrefixCompany, reconcile.Available(opts.CompanyColumns, in.Companies.Header)),
	}
}

// traceColumns are the primary keys every merged row carries, even when the
// primary header lacks them.
var traceColumns = []string{models.ColMSCompanyID, models.ColMSSecurityID}

// Schema returns the column names every merged row answers for: the primary
// header, any missing trace columns, then the SR_* and MC_* columns.
func (l *Layout) Schema(primary []string) []string {
	out := make([]string, 0, len(primary)+len(traceColumns)+l.ShareClass.Len()+l.Company.Len())
	out = append(out, primary...)
	for _, c := range traceColumns {
		if !slices.Contains(primary, c) {
			out = append(out, c)
		}
	}
	out = append(out, l.ShareClass.Qualified()...)
	out = append(out, l.Company.Qualified()...)
	return out
}

// MasterRow is one output row: a primary row plus the values each join copied into it.
type MasterRow struct {
	// Security is the primary row.
	Security models.Security

	// SR holds the security reference columns.
	SR reconcile.Enrichment

	// MC holds the master company columns.
	MC reconcile.Enrichment

	layout *Layout
}

// Get resolves an output column. SR_* and MC_* names are answered by the
// enrichments; anything else comes from the primary row.
func (r *MasterRow) Get(column string) string {
	if r.layout != nil {
		if v, ok := r.SR.Value(r.layout.ShareClass, column); ok {
			return v
		}
		if v, ok := r.MC.Value(r.layout.Company, column); ok {
			return v
		}
	}
	return r.Security.Get(column)
}

// NewMasterRows creates one unmatched merged row per primary row.
func NewMasterRows(securities []models.Security, layout *Layout) []MasterRow {
	rows := make([]MasterRow, len(securities))
	for i, s := range securities {
		rows[i] = MasterRow{
			Security: s,
			SR:       reconcile.Unmatched(layout.ShareClass),
			MC:       reconcile.Unmatched(layout.Company),
			layout:   layout,
		}
	}
	return rows
}

// ShareClassKey is the composite join key of the security reference.
type ShareClassKey struct {
	CompanyID    string
	ShareClassID string
}

// IsZero reports whether both parts of the key are empty.
func (k ShareClassKey) IsZero() bool {
	return k == ShareClassKey{}
}

// ShareClassIndex indexes share classes by (CompanyId, ShareClassId).
func ShareClassIndex(rows []models.ShareClass) *reconcile.Index[ShareClassKey, models.ShareClass] {
	return reconcile.BuildIndex(rows, func(sc models.ShareClass) (ShareClassKey, bool) {
		k := ShareClassKey{CompanyID: sc.CompanyID, ShareClassID: sc.ShareClassID}
		return k, !k.IsZero()
	})
}

// CompanyISINIndex indexes companies by ISIN.
func CompanyISINIndex(rows []models.Company) *reconcile.Index[string, models.Company] {
	return reconcile.BuildIndex(rows, func(c models.Company) (string, bool) {
		return c.ISIN, c.ISIN != ""
	})
}

// CompanySymbolIndex indexes companies by upper-cased symbol.
func CompanySymbolIndex(rows []models.Company) *reconcile.Index[string, models.Company] {
	return reconcile.BuildIndex(rows, func(c models.Company) (string, bool) {
		k := tickerKey(c.Symbol)
		return k, k != ""
	})
}

// JoinShareClasses copies SR_* onto every row whose (MS_CompanyID, MS_SecurityID)
// pair matches a share class. A row with both parts empty never matches.
func JoinShareClasses(rows []MasterRow, idx *reconcile.Index[ShareClassKey, models.ShareClass], layout *Layout) reconcile.StageResult {
	stage := reconcile.Stage[ShareClassKey, MasterRow, models.ShareClass]{
		Name: StageShareClass,
		Key: func(r *MasterRow) (ShareClassKey, bool) {
			k := ShareClassKey{CompanyID: r.Security.MSCompanyID, ShareClassID: r.Security.MSSecurityID}
			return k, !k.IsZero()
		},
		Match: func(r *MasterRow, sc models.ShareClass) {
			r.SR = reconcile.Matched(layout.ShareClass, StageShareClass, sc.Get)
		},
		Miss: func(r *MasterRow) {
			r.SR = reconcile.Unmatched(layout.ShareClass)
		},
	}
	return stage.Run(rows, idx)
}

// JoinCompaniesByISIN copies MC_* onto every row whose SR_ISIN matches a company.
func JoinCompaniesByISIN(rows []MasterRow, idx *reconcile.Index[string, models.Company], layout *Layout) reconcile.StageResult {
	stage := reconcile.Stage[string, MasterRow, models.Company]{
		Name: StageISIN,
		Key: func(r *MasterRow) (string, bool) {
			isin := r.SR.Get(layout.ShareClass, models.ColISIN)
			return isin, isin != ""
		},
		Match: func(r *MasterRow, c models.Company) {
			r.MC = reconcile.Matched(layout.Company, StageISIN, c.Get)
		},
		Miss: func(r *MasterRow) {
			r.MC = reconcile.Unmatched(layout.Company)
		},
	}
	return stage.Run(rows, idx)
}

// JoinCompaniesBySymbol retries rows without a master company match using the
// primary ticker against the company symbol, ignoring case. Rows already matched
// are left untouched.
func JoinCompaniesBySymbol(rows []MasterRow, idx *reconcile.Index[string, models.Company], layout *Layout) reconcile.StageResult {
	stage := reconcile.Stage[string, MasterRow, models.Company]{
		Name:     StageSymbol,
		Eligible: func(r *MasterRow) bool { return !r.MC.Matched },
		Key: func(r *MasterRow) (string, bool) {
			k := tickerKey(r.Security.CompanyTicker)
			return k, k != ""
		},
		Match: func(r *MasterRow, c models.Company) {
			r.MC = reconcile.Matched(layout.Company, StageSymbol, c.Get)
		},
	}
	return stage.Run(rows, idx)
}

// Result is the outcome of a build.
type Result struct {
	// Rows holds one merged row per primary row, in primary order.
	Rows []MasterRow

	// Layout is the enrichment column set shared by all rows.
	Layout *Layout

	// Plan is the output column layout.
	Plan reconcile.Plan

	// Stages reports every join stage in execution order.
	Stages []reconcile.StageResult

	// Shadowed counts indexed rows ignored because an earlier row had the same key.
	Shadowed map[string]int
}

// Build normalizes the inputs in place, runs the three joins and plans the
// output columns. Every primary row yields exactly one merged row.
func Build(in *Inputs, opts Options) *Result {
	NormalizeSecurities(&in.Securities)
	NormalizeShareClasses(&in.ShareClasses)
	NormalizeCompanies(&in.Companies)

	layout := NewLayout(in, opts)
	rows := NewMasterRows(in.Securities.Rows, layout)

	scIndex := ShareClassIndex(in.ShareClasses.Rows)
	isinIndex := CompanyISINIndex(in.Companies.Rows)
	symbolIndex := CompanySymbolIndex(in.Companies.Rows)

	stages := []reconcile.StageResult{
		JoinShareClasses(rows, scIndex, layout),
		JoinCompaniesByISIN(rows, isinIndex, layout),
		JoinCompaniesBySymbol(rows, symbolIndex, layout),
	}

	plan := reconcile.PlanColumns(
		opts.OutputColumns,
		layout.Schema(in.Securities.Header),
		in.Securities.Header,
		opts.ExcludedColumns,
	)

	return &Result{
		Rows:   rows,
		Layout: layout,
		Plan:   plan,
		Stages: stages,
		Shadowed: map[string]int{
			StageShareClass: scIndex.Shadowed(),
			StageISIN:       isinIndex.Shadowed(),
			StageSymbol:     symbolIndex.Shadowed(),
		},
	}
}

// Columns returns the output header.
func (r *Result) Columns() []string {
	return r.Plan.Columns
}

// Records renders every merged row in output column order.
func (r *Result) Records() [][]string {
	records := make([][]string, len(r.Rows))
	for i := range r.Rows {
		row := &r.Rows[i]
		record := make([]string, len(r.Plan.Columns))
		for j, col := range r.Plan.Columns {
			record[j] = row.Get(col)
		}
		records[i] = record
	}
	return records
}

// Stage returns the result of a named stage.
func (r *Result) Stage(name string) (reconcile.StageResult, bool) {
	for _, s := range r.Stages {
		if s.Stage == name {
			return s, true
		}
	}
	return reconcile.StageResult{}, false
}

// CompanyMatches is the number of rows matched to a master company by either
// ISIN or symbol. A row is counted at most once.
func (r *Result) CompanyMatches() int {
	isin, _ := r.Stage(StageISIN)
	symbol, _ := r.Stage(StageSymbol)
	return isin.Matched + symbol.Matched
}
