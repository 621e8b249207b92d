// Package coefficients implements the Coefficient Summer (spec.md
// §4.7): for every contributing variable within the beneficiary's
// segment, it looks up a coefficient and sums them into the RAF and
// its decomposition.
package coefficients

import (
	"fmt"
	"sort"

	"github.com/cmshealth/hccraf/internal/tables"
)

type category int

const (
	categoryDemographic category = iota
	categoryHCC
	categoryInteraction
)

// Result is the Coefficient Summer's output (spec.md §4.7 decomposition
// outputs plus the applied-coefficient and missing-lookup traces the
// result builder needs).
type Result struct {
	RiskScoreDemographics float64
	RiskScoreChronicOnly  float64
	RiskScoreHCC          float64
	RiskScore             float64
	Coefficients          map[string]float64
	Missing               []string
}

// hccVariableName is the coefficient-table variable name for a CC,
// spec.md's `HCC<n>` convention (§3, §6).
func hccVariableName(cc tables.CC) string {
	return fmt.Sprintf("HCC%d", cc)
}

// Sum looks up Coefficients[segment, v] for every contributing
// variable v — the age-sex cell and fired demographic modifiers, one
// HCC<n> per surviving CC, and every fired interaction — and sums
// them. Variable names are sorted lexicographically before summation
// so the result is bit-reproducible regardless of map iteration order
// (spec.md §4.7, §9 "Determinism across platforms").
func Sum(segment string, demographicVars []string, ccs []tables.CC, interactionVars []string, coeffs *tables.CoefficientTable, chronic *tables.ChronicFlagTable) Result {
	categories := make(map[string]category, len(demographicVars)+len(ccs)+len(interactionVars))
	ccByVariable := make(map[string]tables.CC, len(ccs))

	for _, v := range demographicVars {
		categories[v] = categoryDemographic
	}
	for _, cc := range ccs {
		v := hccVariableName(cc)
		categories[v] = categoryHCC
		ccByVariable[v] = cc
	}
	for _, v := range interactionVars {
		categories[v] = categoryInteraction
	}

	names := make([]string, 0, len(categories))
	for v := range categories {
		names = append(names, v)
	}
	sort.Strings(names)

	res := Result{Coefficients: make(map[string]float64, len(names))}

	for _, v := range names {
		value, ok := coeffs.Lookup(segment, v)
		if !ok {
			res.Missing = append(res.Missing, v)
			continue
		}

		res.Coefficients[v] = value
		res.RiskScore += value

		switch categories[v] {
		case categoryDemographic:
			res.RiskScoreDemographics += value
		case categoryHCC:
			res.RiskScoreHCC += value
			if chronic.IsChronic(ccByVariable[v]) {
				res.RiskScoreChronicOnly += value
			}
		case categoryInteraction:
			// interaction coefficients contribute to risk_score only
			// (spec.md §8 invariant 1).
		}
	}

	sort.Strings(res.Missing)

	return res
}
