package coefficients

import (
	"math"
	"testing"

	"github.com/cmshealth/hccraf/internal/tables"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSumDecomposition(t *testing.T) {
	coeffs := tables.NewCoefficientTable(map[string]map[string]float64{
		"CNA": {
			"F65_69": 0.3,
			"HCC19":  0.4,
			"HCC85":  0.2,
			"DIABETES_CHF": 0.1,
		},
	})
	chronic := tables.NewChronicFlagTable(map[tables.CC]bool{19: true, 85: false})

	res := Sum("CNA", []string{"F65_69"}, []tables.CC{19, 85}, []string{"DIABETES_CHF"}, coeffs, chronic)

	if !approxEqual(res.RiskScoreDemographics, 0.3) {
		t.Errorf("RiskScoreDemographics: got %v want 0.3", res.RiskScoreDemographics)
	}
	if !approxEqual(res.RiskScoreHCC, 0.6) {
		t.Errorf("RiskScoreHCC: got %v want 0.6", res.RiskScoreHCC)
	}
	if !approxEqual(res.RiskScoreChronicOnly, 0.4) {
		t.Errorf("RiskScoreChronicOnly: got %v want 0.4", res.RiskScoreChronicOnly)
	}
	want := 0.3 + 0.4 + 0.2 + 0.1
	if !approxEqual(res.RiskScore, want) {
		t.Errorf("RiskScore: got %v want %v", res.RiskScore, want)
	}
	if res.RiskScoreChronicOnly > res.RiskScoreHCC {
		t.Errorf("invariant violated: chronic-only %v > hcc %v", res.RiskScoreChronicOnly, res.RiskScoreHCC)
	}
}

func TestSumRecordsMissingCoefficients(t *testing.T) {
	coeffs := tables.NewCoefficientTable(map[string]map[string]float64{
		"CNA": {"F65_69": 0.3},
	})
	chronic := tables.NewChronicFlagTable(nil)

	res := Sum("CNA", []string{"F65_69"}, []tables.CC{19}, nil, coeffs, chronic)

	if len(res.Missing) != 1 || res.Missing[0] != "HCC19" {
		t.Errorf("Missing: got %v want [HCC19]", res.Missing)
	}
	if !approxEqual(res.RiskScoreHCC, 0) {
		t.Errorf("expected missing coefficient to contribute 0, got %v", res.RiskScoreHCC)
	}
}

func TestSumIsOrderIndependent(t *testing.T) {
	coeffs := tables.NewCoefficientTable(map[string]map[string]float64{
		"CNA": {"HCC1": 0.1, "HCC2": 0.2, "HCC3": 0.3},
	})
	chronic := tables.NewChronicFlagTable(nil)

	a := Sum("CNA", nil, []tables.CC{1, 2, 3}, nil, coeffs, chronic)
	b := Sum("CNA", nil, []tables.CC{3, 1, 2}, nil, coeffs, chronic)

	if a.RiskScore != b.RiskScore {
		t.Errorf("expected identical order-independent sums, got %v vs %v", a.RiskScore, b.RiskScore)
	}
}

func TestSumEmptyInputsYieldZero(t *testing.T) {
	coeffs := tables.NewCoefficientTable(map[string]map[string]float64{})
	chronic := tables.NewChronicFlagTable(nil)
	res := Sum("CNA", nil, nil, nil, coeffs, chronic)
	if res.RiskScore != 0 {
		t.Errorf("expected zero score for empty inputs, got %v", res.RiskScore)
	}
}
