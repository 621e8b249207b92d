package tables

// CC is a Condition Category identifier. An HCC is a CC that survives
// the hierarchy stage — the two terms are used interchangeably
// downstream of that stage (spec.md §3).
type CC int

// DxCCTable maps a diagnosis code to the CCs it contributes under a
// single, already-selected ModelVariant. Built once at load and queried
// by hash thereafter (spec.md §4.3 — "Lookup tables MUST be constructed
// once and queried by hash").
type DxCCTable struct {
	byDx map[string][]CC
}

// CCsFor returns the CCs diagnosis maps to, and whether any mapping
// exists at all.
func (t *DxCCTable) CCsFor(diagnosis string) ([]CC, bool) {
	ccs, ok := t.byDx[diagnosis]
	return ccs, ok
}

// NewDxCCTable builds a DxCCTable directly from a diagnosis->CCs map,
// bypassing the CSV loader. Used by other packages' tests to build
// fixtures without writing a CSV file.
func NewDxCCTable(byDx map[string][]CC) *DxCCTable {
	return &DxCCTable{byDx: byDx}
}

// HierarchyTable maps a parent CC to the child CCs it suppresses when
// both are present, for a single ModelVariant (spec.md §4.4).
type HierarchyTable struct {
	children map[CC][]CC
}

// ChildrenOf returns the CCs suppressed by parent.
func (t *HierarchyTable) ChildrenOf(parent CC) []CC {
	return t.children[parent]
}

// NewHierarchyTable builds a HierarchyTable directly from a
// parent->children map, bypassing the CSV loader.
func NewHierarchyTable(children map[CC][]CC) *HierarchyTable {
	return &HierarchyTable{children: children}
}

// CoefficientTable maps (segment, variable) to a coefficient value, for
// a single ModelVariant (spec.md §4.7, §6).
type CoefficientTable struct {
	bySegment map[string]map[string]float64
}

// Lookup returns the coefficient for (segment, variable), and whether
// the entry exists. A missing entry is not an error — the caller
// records it in RAFResult.CoefficientsMissing (spec.md §7,
// TableLookupMiss).
func (t *CoefficientTable) Lookup(segment, variable string) (float64, bool) {
	byVariable := t.bySegment[segment]
	if byVariable == nil {
		return 0, false
	}
	v, ok := byVariable[variable]
	return v, ok
}

// NewCoefficientTable builds a CoefficientTable directly from a
// segment->variable->value map, bypassing the CSV loader.
func NewCoefficientTable(bySegment map[string]map[string]float64) *CoefficientTable {
	return &CoefficientTable{bySegment: bySegment}
}

// EligibleProcedureTable holds the CPT/HCPCS codes eligible for risk
// adjustment in a given model year, plus retained institutional
// facility bill-type prefixes (spec.md §4.2, §6).
type EligibleProcedureTable struct {
	codes          map[string]bool
	facilityPrefix map[string]bool
}

// Eligible reports whether code is an eligible CPT/HCPCS code.
func (t *EligibleProcedureTable) Eligible(code string) bool {
	return t.codes[code]
}

// NewEligibleProcedureTable builds an EligibleProcedureTable directly
// from code/prefix lists, bypassing the CSV loader. Used by other
// packages' tests to build fixtures without writing a CSV file.
func NewEligibleProcedureTable(codes, facilityPrefixes []string) *EligibleProcedureTable {
	t := &EligibleProcedureTable{
		codes:          make(map[string]bool, len(codes)),
		facilityPrefix: make(map[string]bool, len(facilityPrefixes)),
	}
	for _, c := range codes {
		t.codes[c] = true
	}
	for _, p := range facilityPrefixes {
		t.facilityPrefix[p] = true
	}
	return t
}

// RetainedFacilityPrefix reports whether billType begins with a
// configured retained institutional facility prefix.
func (t *EligibleProcedureTable) RetainedFacilityPrefix(billType string) bool {
	if len(billType) == 0 {
		return false
	}
	for p := range t.facilityPrefix {
		if len(billType) >= len(p) && billType[:len(p)] == p {
			return true
		}
	}
	return false
}

// ChronicFlagTable maps a CC to whether it is a chronic condition, used
// to split risk_score_hcc into its chronic-only subset (spec.md §4.7).
type ChronicFlagTable struct {
	chronic map[CC]bool
}

// IsChronic reports whether cc is flagged chronic. Absent entries are
// treated as non-chronic.
func (t *ChronicFlagTable) IsChronic(cc CC) bool {
	return t.chronic[cc]
}

// NewChronicFlagTable builds a ChronicFlagTable directly from a
// CC->bool map, bypassing the CSV loader.
func NewChronicFlagTable(chronic map[CC]bool) *ChronicFlagTable {
	return &ChronicFlagTable{chronic: chronic}
}

// InteractionDef is one row of the interaction mini-language table: a
// named variable and the expression that defines when it fires
// (spec.md §4.6, §6).
type InteractionDef struct {
	Variable   string
	Expression string
}
