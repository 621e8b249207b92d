// Package hierarchy implements the Hierarchy Engine (spec.md §4.4):
// for the active model variant, it suppresses lower-severity CCs when
// a dominating CC is also present in the input set.
package hierarchy

import (
	"sort"

	"github.com/cmshealth/hccraf/internal/tables"
)

// Suppress computes S' = S \ { c : exists p in S, (p, c) is an edge }.
// Hierarchies are not computed transitively here — the table is
// expected to already encode the transitive closure the model authors
// intend (spec.md §4.4: "Do not compute a closure; doing so produces
// different results for some variants"). The result is sorted
// ascending and is always a subset of the input.
func Suppress(ccs []tables.CC, h *tables.HierarchyTable) []tables.CC {
	suppressed := make(map[tables.CC]bool)
	for _, parent := range ccs {
		for _, child := range h.ChildrenOf(parent) {
			suppressed[child] = true
		}
	}

	var survivors []tables.CC
	for _, cc := range ccs {
		if !suppressed[cc] {
			survivors = append(survivors, cc)
		}
	}

	sort.Slice(survivors, func(i, j int) bool { return survivors[i] < survivors[j] })
	return survivors
}
