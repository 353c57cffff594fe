package reconcile

// Stage is one left-join pass of targets against an Index.
type Stage[K comparable, T any, V any] struct {
	// Name identifies the stage in results and logs.
	Name string

	// Eligible filters the targets this stage may touch. Nil means every target.
	// Ineligible targets are skipped entirely and not counted in the total.
	Eligible func(t *T) bool

	// Key extracts the join key of a target. ok=false means the target cannot match.
	Key func(t *T) (K, bool)

	// Match is called with the indexed item when a target matches.
	Match func(t *T, item V)

	// Miss is called for eligible targets without a match. May be nil.
	Miss func(t *T)
}

// Run applies the stage to every target in order and reports the match count.
func (s Stage[K, T, V]) Run(targets []T, idx *Index[K, V]) StageResult {
	result := StageResult{Stage: s.Name}

	for i := range targets {
		t := &targets[i]
		if s.Eligible != nil && !s.Eligible(t) {
			continue
		}
		result.Total++

		if k, ok := s.Key(t); ok {
			if item, found := idx.Lookup(k); found {
				s.Match(t, item)
				result.Matched++
				continue
			}
		}
		if s.Miss != nil {
			s.Miss(t)
		}
	}

	return result
}
