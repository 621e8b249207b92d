// Package extractor implements the Service-Level Extractor & Filter
// (spec.md §4.2): it presents a uniform view over 837-parsed and
// FHIR-sourced ServiceRecords and retains only records eligible for
// risk adjustment under the configured model year.
package extractor

import (
	"sort"

	"github.com/cmshealth/hccraf/internal/servicerecord"
	"github.com/cmshealth/hccraf/internal/tables"
)

// Result is the extractor's output: the eligible diagnosis set plus a
// trace of what was filtered out and what was deduplicated, so the
// result builder can report on filtering decisions (spec.md §4.2,
// §6 "service_level_data").
type Result struct {
	Diagnoses      []string
	TotalRecords   int
	EligibleRecords int
	DuplicateDiagnoses []string
}

// eligible reports whether rec passes the CMS procedure-code (and, for
// institutional outpatient, bill-type prefix) eligibility rule for its
// claim type (spec.md §4.2). Place of service is not checked. Only
// called when filtering is enabled.
func eligible(rec servicerecord.Record, t *tables.EligibleProcedureTable, passEligibleBillTypeOnly bool) bool {
	switch rec.ClaimType {
	case servicerecord.ClaimTypeProfessional:
		return t.Eligible(rec.ProcedureCode)
	case servicerecord.ClaimTypeInstitutionalOutpat:
		if t.Eligible(rec.ProcedureCode) {
			return true
		}
		return passEligibleBillTypeOnly && t.RetainedFacilityPrefix(rec.BillType)
	case servicerecord.ClaimTypeInstitutionalInpat:
		return true
	default:
		return false
	}
}

// Extract filters records per opts and returns the union of surviving
// diagnosis codes, deduplicated but with duplicates recorded in the
// trace (spec.md §4.2: "Duplicates are collapsed but remembered in the
// trace").
func Extract(records []servicerecord.Record, t *tables.Tables, requireExplicitPointers bool, filterClaims bool, passEligibleBillTypeOnly bool) Result {
	res := Result{TotalRecords: len(records)}

	seen := make(map[string]bool)
	var dupes []string

	for _, rec := range records {
		if filterClaims && !eligible(rec, t.Procedures, passEligibleBillTypeOnly) {
			continue
		}
		res.EligibleRecords++

		for _, dx := range rec.Diagnoses(requireExplicitPointers) {
			if dx == "" {
				continue
			}
			if seen[dx] {
				dupes = append(dupes, dx)
				continue
			}
			seen[dx] = true
			res.Diagnoses = append(res.Diagnoses, dx)
		}
	}

	sort.Strings(dupes)
	res.DuplicateDiagnoses = dupes

	return res
}
