// Package fhir adapts a FHIR ExplanationOfBenefit resource into the
// normalized ServiceRecord shape (spec.md §3, §6). FHIR ingestion is an
// external collaborator per spec.md §1 — "the FHIR EOB ingestion path
// (treated as a source that yields the same normalized service record
// shape as the 837 parser)" — so this package decodes only the handful
// of EOB fields that contract actually needs, not a general FHIR
// client.
package fhir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmshealth/hccraf/internal/servicerecord"
)

type coding struct {
	System string `json:"system"`
	Code   string `json:"code"`
}

type codeableConcept struct {
	Coding []coding `json:"coding"`
}

type period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type eobDiagnosis struct {
	Sequence                int             `json:"sequence"`
	DiagnosisCodeableConcept codeableConcept `json:"diagnosisCodeableConcept"`
}

type eobItem struct {
	ProductOrService  codeableConcept `json:"productOrService"`
	Modifier          []codeableConcept `json:"modifier"`
	DiagnosisSequence []int           `json:"diagnosisSequence"`
	Serviced          *period         `json:"servicedPeriod"`
	LocationCode      *codeableConcept `json:"locationCodeableConcept"`
}

// ExplanationOfBenefit is the minimal subset of the FHIR R4
// ExplanationOfBenefit resource this adapter reads.
type ExplanationOfBenefit struct {
	ResourceType   string          `json:"resourceType"`
	Type           codeableConcept `json:"type"`
	BillablePeriod *period         `json:"billablePeriod"`
	Diagnosis      []eobDiagnosis  `json:"diagnosis"`
	Item           []eobItem       `json:"item"`
}

// claimTypeFromEOBType maps the FHIR EOB "type" coding to the 2-char
// claim_type codes spec.md §3 defines, using the
// http://terminology.hl7.org/CodeSystem/claim-type codes: "professional"
// gives 71 and "institutional" gives 72. Inpatient (73) is never
// produced; any other code gives "".
func claimTypeFromEOBType(t codeableConcept) string {
	for _, c := range t.Coding {
		switch c.Code {
		case "professional":
			return servicerecord.ClaimTypeProfessional
		case "institutional":
			return servicerecord.ClaimTypeInstitutionalOutpat
		}
	}
	return ""
}

func parseFHIRDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	layouts := []string{time.RFC3339, "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func firstCode(cc codeableConcept) string {
	if len(cc.Coding) == 0 {
		return ""
	}
	return cc.Coding[0].Code
}

// ToServiceRecords decodes raw as a FHIR ExplanationOfBenefit and
// returns one ServiceRecord per item, or a single claim-level record
// when the EOB has no items, mirroring the 837 parser's
// one-record-per-service-line contract (spec.md §4.1, §4.2).
func ToServiceRecords(raw []byte) ([]servicerecord.Record, error) {
	var eob ExplanationOfBenefit
	if err := json.Unmarshal(raw, &eob); err != nil {
		return nil, fmt.Errorf("decode ExplanationOfBenefit: %w", err)
	}

	diagnoses := make([]string, len(eob.Diagnosis))
	bySequence := make(map[int]int, len(eob.Diagnosis))
	for i, d := range eob.Diagnosis {
		code := firstCode(d.DiagnosisCodeableConcept)
		diagnoses[i] = code
		bySequence[d.Sequence] = i + 1
	}

	claimType := claimTypeFromEOBType(eob.Type)
	var claimFrom, claimTo *time.Time
	if eob.BillablePeriod != nil {
		claimFrom = parseFHIRDate(eob.BillablePeriod.Start)
		claimTo = parseFHIRDate(eob.BillablePeriod.End)
	}

	if len(eob.Item) == 0 {
		return []servicerecord.Record{{
			ClaimType:      claimType,
			ServiceDate:    claimFrom,
			ThroughDate:    claimTo,
			DiagnosisCodes: diagnoses,
		}}, nil
	}

	records := make([]servicerecord.Record, 0, len(eob.Item))
	for _, item := range eob.Item {
		from, to := claimFrom, claimTo
		if item.Serviced != nil {
			from = parseFHIRDate(item.Serviced.Start)
			to = parseFHIRDate(item.Serviced.End)
		}

		pos := ""
		if item.LocationCode != nil {
			pos = firstCode(*item.LocationCode)
		}

		var modifiers []string
		for _, m := range item.Modifier {
			if code := firstCode(m); code != "" && len(modifiers) < 4 {
				modifiers = append(modifiers, code)
			}
		}

		var pointers []int
		for _, seq := range item.DiagnosisSequence {
			if idx, ok := bySequence[seq]; ok {
				pointers = append(pointers, idx)
			}
		}

		records = append(records, servicerecord.Record{
			ClaimType:               claimType,
			ServiceDate:             from,
			ThroughDate:             to,
			PlaceOfService:          pos,
			ProcedureCode:           firstCode(item.ProductOrService),
			ProcedureModifiers:      modifiers,
			DiagnosisCodes:          diagnoses,
			LinkedDiagnosisPointers: pointers,
		})
	}

	return records, nil
}
