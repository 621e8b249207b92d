// Package demographics implements the Demographics Classifier
// (spec.md §4.5): it derives the beneficiary's coefficient-table
// segment and the set of demographic variables that contribute to the
// score.
package demographics

import (
	"fmt"

	"github.com/cmshealth/hccraf/internal/tables"
)

// Demographics is the immutable per-call beneficiary input (spec.md §3).
type Demographics struct {
	Age             int
	Sex             string
	DualEligibility string
	OrigDisabled    bool
	NewEnrollee     bool
	ESRD            bool
	SNP             bool
	LowIncome       bool
	GraftMonths     *int
	Category        string
}

var validDualCodes = map[string]bool{"00": true, "01": true, "02": true}

// InvalidDemographicsError reports a fatal demographics validation
// failure (spec.md §7: age negative, sex not in {M,F}, dual code not
// in known set, ESRD-specific field required but absent).
type InvalidDemographicsError struct {
	Reason string
}

func (e *InvalidDemographicsError) Error() string {
	return fmt.Sprintf("invalid demographics: %s", e.Reason)
}

// Validate checks that age is non-negative, sex is M or F, the dual
// code is 00, 01 or 02, and graft_months, when given, is non-negative.
// It does not check for absent ESRD-specific fields: an ESRD
// beneficiary with no graft_months passes. Internal structs downstream
// of Validate are assumed valid (spec.md design note "Pydantic-style
// validation").
func (d Demographics) Validate() error {
	if d.Age < 0 {
		return &InvalidDemographicsError{Reason: fmt.Sprintf("age must be non-negative, got %d", d.Age)}
	}
	if d.Sex != "M" && d.Sex != "F" {
		return &InvalidDemographicsError{Reason: fmt.Sprintf("sex must be M or F, got %q", d.Sex)}
	}
	if !validDualCodes[d.DualEligibility] {
		return &InvalidDemographicsError{Reason: fmt.Sprintf("dual_eligibility must be 00, 01, or 02, got %q", d.DualEligibility)}
	}
	if d.GraftMonths != nil && *d.GraftMonths < 0 {
		return &InvalidDemographicsError{Reason: fmt.Sprintf("graft_months must be non-negative, got %d", *d.GraftMonths)}
	}
	return nil
}

// Classified is the classifier's output: the coefficient-table segment
// key and the demographic variable names that contribute to the score
// (age-sex cell plus any fired modifiers).
type Classified struct {
	Segment   string
	Variables []string
}

// esrdSegment picks the ESRD dialysis/post-transplant sub-segment,
// preferring a graft-month bucket from the coefficient table's own
// segment names (spec.md design note "Open question 3": bucket
// boundaries live in reference data, not hardcoded in this function)
// and falling back to the plain dialysis segment when graft_months is
// absent or matches no configured bucket.
func esrdSegment(d Demographics, buckets []tables.GraftBucket) string {
	if d.NewEnrollee {
		return "DNE"
	}
	if d.GraftMonths != nil {
		for _, b := range buckets {
			if *d.GraftMonths >= b.Lo && *d.GraftMonths <= b.Hi {
				return b.Segment
			}
		}
	}
	return "DI"
}

// communitySegment derives the CNA/CND/CPA/CPD/CFA/CFD family from dual
// status and age (spec.md §4.5).
func communitySegment(d Demographics) string {
	aged := d.Age >= 65
	switch d.DualEligibility {
	case "01":
		if aged {
			return "CPA"
		}
		return "CPD"
	case "02":
		if aged {
			return "CFA"
		}
		return "CFD"
	default:
		if aged {
			return "CNA"
		}
		return "CND"
	}
}

// ageSexCell buckets age into the fixed spec.md §4.5 age bands crossed
// with sex, e.g. "F75_79", "M65_69", "M95" (95+).
func ageSexCell(d Demographics) string {
	bands := []struct {
		lo, hi int
		label  string
	}{
		{0, 34, "0_34"}, {35, 44, "35_44"}, {45, 54, "45_54"},
		{55, 59, "55_59"}, {60, 64, "60_64"}, {65, 69, "65_69"},
		{70, 74, "70_74"}, {75, 79, "75_79"}, {80, 84, "80_84"},
		{85, 89, "85_89"}, {90, 94, "90_94"},
	}
	for _, b := range bands {
		if d.Age >= b.lo && d.Age <= b.hi {
			return d.Sex + b.label
		}
	}
	return d.Sex + "95"
}

// Classify computes the segment and demographic variables for d under
// variant, using graftBuckets (derived from the loaded coefficient
// table, see tables.CoefficientTable.GraftBuckets) to resolve ESRD
// sub-segments.
func Classify(d Demographics, variant tables.ModelVariant, graftBuckets []tables.GraftBucket) Classified {
	var segment string
	switch {
	case d.Category != "":
		segment = d.Category
	case variant.IsESRD() && d.ESRD:
		segment = esrdSegment(d, graftBuckets)
	case d.NewEnrollee:
		segment = "NE"
	default:
		segment = communitySegment(d)
	}

	var vars []string
	vars = append(vars, ageSexCell(d))

	if segment != "NE" && segment != "DNE" {
		if d.OrigDisabled {
			if d.Sex == "F" {
				vars = append(vars, "OriginallyDisabled_Female")
			} else {
				vars = append(vars, "OriginallyDisabled_Male")
			}
		}
		if d.SNP {
			vars = append(vars, "LTI")
		}
		if d.LowIncome {
			vars = append(vars, "LowIncome")
		}
	}

	return Classified{Segment: segment, Variables: vars}
}
