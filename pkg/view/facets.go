package view

import "sort"

// Facets are the distinct filter values present in a fetched row set. The
// list screens derive them from what actually came back, so the filter
// dropdowns never offer values with zero matches.
type Facets struct {
	Statuses []string `json:"statuses"`
	Names    []string `json:"names,omitempty"` // customers, suppliers, requesters
}

// DeriveFacets collects sorted distinct statuses and display names from a
// row set via the two accessor funcs. Empty values are skipped.
func DeriveFacets[T any](rows []T, status func(T) string, name func(T) string) Facets {
	statusSet := map[string]struct{}{}
	nameSet := map[string]struct{}{}

	for _, r := range rows {
		if s := status(r); s != "" {
			statusSet[s] = struct{}{}
		}
		if name != nil {
			if n := name(r); n != "" {
				nameSet[n] = struct{}{}
			}
		}
	}

	return Facets{
		Statuses: sortedKeys(statusSet),
		Names:    sortedKeys(nameSet),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
