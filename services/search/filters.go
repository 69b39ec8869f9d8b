package search

import "strings"

// Filter semantics, applied identically regardless of data origin:
// numeric range bounds are inclusive; multi-select criteria require EVERY
// requested value to appear as a case-insensitive substring of at least one
// of the record's own candidate fields. Filtering the same list twice with
// the same criteria yields the same list.

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// matchesAll reports whether every required value substring-matches one of
// the candidate fields, case-insensitively. An empty requirement matches.
func matchesAll(required []string, fields ...string) bool {
	for _, want := range required {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		found := false
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// filterRecords keeps records satisfying the predicate, preserving order.
func filterRecords[R any](records []R, keep func(R) bool) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
