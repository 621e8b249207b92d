// Package servicerecord defines the normalized, wire-neutral service
// record shape shared by the X12 837 parser, the FHIR adapter, and the
// service-level extractor.
package servicerecord

import "time"

// Claim type codes, as carried on a normalized ServiceRecord.
const (
	ClaimTypeProfessional         = "71"
	ClaimTypeInstitutionalOutpat  = "72"
	ClaimTypeInstitutionalInpat   = "73"
)

// Record is the normalized service record produced by the 837 parser or
// the FHIR adapter, and consumed by the extractor.
type Record struct {
	ClaimType                string
	BillType                 string
	ServiceDate              *time.Time
	ThroughDate              *time.Time
	PlaceOfService           string
	ProcedureCode            string
	ProcedureModifiers       []string
	DiagnosisCodes           []string
	LinkedDiagnosisPointers  []int
	ProviderSpecialty        string
	PerformingProviderNPI    string
}

// Diagnoses returns the diagnosis codes this record actually contributes
// to scoring: the pointer-linked subset whenever pointers are present,
// otherwise the full claim-level diagnosis list (or none, when the
// caller requires explicit pointers).
//
// requireExplicitPointers implements spec.md's "explicit-pointers-
// preferred" Open Question 2 resolution: when false (the default) and no
// pointers were recorded, all diagnoses on the record are used.
func (r Record) Diagnoses(requireExplicitPointers bool) []string {
	if len(r.LinkedDiagnosisPointers) == 0 {
		if requireExplicitPointers {
			return nil
		}
		return r.DiagnosisCodes
	}
	out := make([]string, 0, len(r.LinkedDiagnosisPointers))
	for _, p := range r.LinkedDiagnosisPointers {
		idx := p - 1
		if idx < 0 || idx >= len(r.DiagnosisCodes) {
			continue
		}
		out = append(out, r.DiagnosisCodes[idx])
	}
	return out
}
