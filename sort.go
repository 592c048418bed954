package dove

import (
	"sort"
	"strings"
)

// SortMode defines final output ordering.
type SortMode int

const (
	// SortNone keeps the original order.
	SortNone SortMode = iota
	// SortAsc sorts oldest first.
	SortAsc
	// SortDesc sorts newest first.
	SortDesc
)

// Sort orders literals by version precedence when every entry parses,
// otherwise falls back to lexicographic sort.
//
// Note: structurally equal versions ("1.2" vs "v1.200.0") are ordered by
// their original string so the result is deterministic.
func Sort(in []string, mode SortMode) []string {
	if mode == SortNone || len(in) < 2 {
		return in
	}

	type item struct {
		orig string
		v    Version
	}

	arr := make([]item, 0, len(in))
	for _, s := range in {
		v, err := Parse(s)
		if err != nil {
			// Fallback: lexicographic sort if any literal is malformed.
			return sortLex(in, mode)
		}
		arr = append(arr, item{orig: s, v: v})
	}

	sort.Slice(arr, func(i, j int) bool {
		cmp := arr[i].v.Compare(arr[j].v)
		if cmp == 0 {
			cmp = strings.Compare(arr[i].orig, arr[j].orig)
		}
		if mode == SortAsc {
			return cmp < 0
		}
		return cmp > 0 // SortDesc
	})

	out := make([]string, len(arr))
	for i, it := range arr {
		out[i] = it.orig
	}

	return out
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, n int) []string {
	return capStrings(Sort(in, mode), n)
}

// sortLex does a plain lexicographic sort as a fallback.
func sortLex(in []string, mode SortMode) []string {
	out := append([]string(nil), in...)
	if mode == SortAsc {
		sort.Strings(out)
	} else { // SortDesc
		sort.Sort(sort.Reverse(sort.StringSlice(out)))
	}

	return out
}
