package raf

import (
	"github.com/cmshealth/hccraf/internal/demographics"
	"github.com/cmshealth/hccraf/internal/tables"
)

// CCDiagnoses is one entry of the cc_to_dx trace: a mapped Condition
// Category and the diagnosis codes that produced it (spec.md §4.3,
// §6). Kept as a sorted slice rather than a map so JSON output order
// is guaranteed regardless of map key encoding quirks (spec.md §6:
// "cc_to_dx (sorted keys)").
type CCDiagnoses struct {
	CC         tables.CC `json:"cc"`
	Diagnoses  []string  `json:"diagnoses"`
}

// ServiceLevelData is the optional trace emitted when a pipeline run
// started from raw claims or service records rather than bare
// diagnoses (spec.md §6: "service_level_data (optional, when a service
// pipeline was used)").
type ServiceLevelData struct {
	TotalRecords       int      `json:"total_records"`
	EligibleRecords    int      `json:"eligible_records"`
	DuplicateDiagnoses []string `json:"duplicate_diagnoses,omitempty"`
}

// Result is the RAFResult assembled by the Result Builder (spec.md
// §2 item 10, §6).
type Result struct {
	RiskScore             float64                 `json:"risk_score"`
	RiskScoreDemographics float64                 `json:"risk_score_demographics"`
	RiskScoreChronicOnly  float64                 `json:"risk_score_chronic_only"`
	RiskScoreHCC          float64                 `json:"risk_score_hcc"`
	HCCList               []tables.CC             `json:"hcc_list"`
	CCToDx                []CCDiagnoses           `json:"cc_to_dx"`
	Coefficients          map[string]float64      `json:"coefficients"`
	Interactions          []string                `json:"interactions"`
	Demographics          demographics.Demographics `json:"demographics"`
	ModelName             tables.ModelVariant     `json:"model_name"`
	DiagnosisCodes        []string                `json:"diagnosis_codes"`
	ServiceLevelData      *ServiceLevelData       `json:"service_level_data,omitempty"`
	UnmappedDiagnoses     []string                `json:"unmapped_diagnoses"`
	CoefficientsMissing   []string                `json:"coefficients_missing"`
}
