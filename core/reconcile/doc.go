// Package reconcile provides the generic machinery for merging independently
// maintained reference tables on overlapping but inconsistent keys.
//
// The package knows nothing about companies or securities. It supplies the
// building blocks that the reference feature composes into a multi-stage join:
//
// 1. Index: a first-match-wins lookup over one source. Items with an empty key are
//    never indexed, and later items sharing a key are counted as shadowed instead of
//    replacing the winner.
//
// 2. Stage: a left join of a target slice against an Index. Every target is visited
//    exactly once; targets are never dropped. An optional eligibility predicate lets a
//    later stage skip targets an earlier stage already matched.
//
// 3. Columns and Enrichment: the namespaced copy list of a stage (e.g. "SR_ISIN") and
//    the per-row values copied from the winning item, together with an explicit
//    matched flag. Unmatched rows carry the same columns set to "", so every merged
//    row has the same schema.
//
// 4. Plan: the output column policy. A requested column order is filtered to the
//    merged schema and pass-through columns not covered by it are appended.
//
// # Usage Example
//
//	idx := reconcile.BuildIndex(companies, func(c Company) (string, bool) {
//	    return c.ISIN, c.ISIN != ""
//	})
//	stage := reconcile.Stage[string, MasterRow, Company]{
//	    Name:  "isin",
//	    Key:   func(r *MasterRow) (string, bool) { return r.ISIN(), r.ISIN() != "" },
//	    Match: func(r *MasterRow, c Company) { r.MC = reconcile.Matched(cols, "isin", c.Get) },
//	}
//	result := stage.Run(rows, idx)
//
// All operations are synchronous and hold no state beyond their arguments.
package reconcile
