package reconcile

// Plan is the final output column layout.
type Plan struct {
	// Columns is the complete output order.
	Columns []string `json:"columns"`

	// Appended lists pass-through columns added after the requested ones.
	Appended []string `json:"appended"`

	// Dropped lists requested columns that are not in the merged schema.
	Dropped []string `json:"dropped"`
}

// PlanColumns filters the requested order to columns present in available, then
// appends every passthrough column not yet covered unless it is listed in skip.
// Appended columns keep their passthrough order. Requested columns missing from
// available are dropped without error.
func PlanColumns(requested, available, passthrough, skip []string) Plan {
	have := make(map[string]struct{}, len(available))
	for _, c := range available {
		have[c] = struct{}{}
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, c := range skip {
		skipped[c] = struct{}{}
	}

	var plan Plan
	used := make(map[string]struct{}, len(requested)+len(passthrough))
	for _, c := range requested {
		if _, ok := have[c]; !ok {
			plan.Dropped = append(plan.Dropped, c)
			continue
		}
		if _, dup := used[c]; dup {
			continue
		}
		used[c] = struct{}{}
		plan.Columns = append(plan.Columns, c)
	}

	for _, c := range passthrough {
		if _, ok := used[c]; ok {
			continue
		}
		if _, ok := skipped[c]; ok {
			continue
		}
		used[c] = struct{}{}
		plan.Columns = append(plan.Columns, c)
		plan.Appended = append(plan.Appended, c)
	}

	return plan
}
