// Package mapper implements the Diagnosis-to-CC Mapper (spec.md §4.3):
// for each distinct diagnosis code it looks up the Condition
// Categories it contributes under the active model variant.
package mapper

import (
	"sort"

	"github.com/cmshealth/hccraf/internal/tables"
)

// Result is the mapper's output: the CC set, the per-CC contributing
// diagnoses (for the result builder's cc_to_dx trace), and the
// diagnoses that produced no mapping at all (spec.md §4.3, §6).
type Result struct {
	CCs      []tables.CC
	CCToDx   map[tables.CC][]string
	Unmapped []string
}

// Map looks up each distinct diagnosis in t.DxCC. Lookup cannot fail —
// absence of a mapping is normal and recorded in Unmapped, never
// treated as an error (spec.md §4.3 "Error semantics").
func Map(diagnoses []string, t *tables.DxCCTable) Result {
	ccSet := make(map[tables.CC]bool)
	ccToDx := make(map[tables.CC][]string)
	var unmapped []string
	seen := make(map[string]bool, len(diagnoses))

	for _, dx := range diagnoses {
		if seen[dx] {
			continue
		}
		seen[dx] = true
		ccs, ok := t.CCsFor(dx)
		if !ok || len(ccs) == 0 {
			unmapped = append(unmapped, dx)
			continue
		}
		for _, cc := range ccs {
			ccSet[cc] = true
			ccToDx[cc] = append(ccToDx[cc], dx)
		}
	}

	ccs := make([]tables.CC, 0, len(ccSet))
	for cc := range ccSet {
		ccs = append(ccs, cc)
	}
	sort.Slice(ccs, func(i, j int) bool { return ccs[i] < ccs[j] })

	for cc, dxs := range ccToDx {
		sort.Strings(dxs)
		ccToDx[cc] = dxs
	}

	return Result{CCs: ccs, CCToDx: ccToDx, Unmapped: unmapped}
}
