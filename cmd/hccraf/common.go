package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cmshealth/hccraf/internal/demographics"
	"github.com/cmshealth/hccraf/internal/raf"
	"github.com/cmshealth/hccraf/internal/tables"
)

// tableFlags holds the reference-table and pipeline-policy flags
// shared by every "score" subcommand.
type tableFlags struct {
	variant                  string
	dxcc                     string
	hierarchy                string
	coefficients             string
	procedures               string
	chronic                  string
	interactions             string
	filterClaims             bool
	requireExplicitPointers  bool
	passEligibleBillTypeOnly bool
}

func registerTableFlags(cmd *cobra.Command, f *tableFlags) {
	cmd.Flags().StringVar(&f.variant, "variant", "", "model variant (V22, V24, V28, ESRD_V21, ESRD_V24, RxHCC_V08)")
	cmd.Flags().StringVar(&f.dxcc, "dxcc-table", "", "path to the diagnosis-to-CC CSV table")
	cmd.Flags().StringVar(&f.hierarchy, "hierarchy-table", "", "path to the hierarchy CSV table")
	cmd.Flags().StringVar(&f.coefficients, "coefficient-table", "", "path to the coefficient CSV table")
	cmd.Flags().StringVar(&f.procedures, "procedure-table", "", "path to the eligible-procedure CSV table")
	cmd.Flags().StringVar(&f.chronic, "chronic-table", "", "path to the chronic-flags CSV table")
	cmd.Flags().StringVar(&f.interactions, "interaction-table", "", "path to the interaction-expression CSV table")
	cmd.Flags().BoolVar(&f.filterClaims, "filter-claims", true, "apply the service-level eligibility filter")
	cmd.Flags().BoolVar(&f.requireExplicitPointers, "require-explicit-pointers", false, "reject claim-level diagnosis fallback for unpointed service lines")
	cmd.Flags().BoolVar(&f.passEligibleBillTypeOnly, "pass-eligible-bill-type-only", false, "accept a retained facility bill-type prefix alone as outpatient eligibility proof")
	cmd.MarkFlagRequired("variant")
	cmd.MarkFlagRequired("dxcc-table")
	cmd.MarkFlagRequired("hierarchy-table")
	cmd.MarkFlagRequired("coefficient-table")
	cmd.MarkFlagRequired("procedure-table")
	cmd.MarkFlagRequired("chronic-table")
	cmd.MarkFlagRequired("interaction-table")
}

func (f *tableFlags) toOptions() tables.Options {
	return tables.Options{
		FilterClaims:             f.filterClaims,
		DxCCTablePath:            f.dxcc,
		HierarchyTablePath:       f.hierarchy,
		CoefficientTablePath:     f.coefficients,
		ProcedureTablePath:       f.procedures,
		ChronicFlagsTablePath:    f.chronic,
		InteractionTablePath:     f.interactions,
		PassEligibleBillTypeOnly: f.passEligibleBillTypeOnly,
		RequireExplicitPointers:  f.requireExplicitPointers,
	}
}

// demographicsFlags holds the one beneficiary the run scores.
type demographicsFlags struct {
	age          int
	sex          string
	dual         string
	origDisabled bool
	newEnrollee  bool
	esrd         bool
	snp          bool
	lowIncome    bool
	graftMonths  int
	category     string
}

func registerDemographicsFlags(cmd *cobra.Command, f *demographicsFlags) {
	cmd.Flags().IntVar(&f.age, "age", 0, "beneficiary age in years")
	cmd.Flags().StringVar(&f.sex, "sex", "", "beneficiary sex (M or F)")
	cmd.Flags().StringVar(&f.dual, "dual", "00", "Medicaid dual-eligibility code (00, 01, 02)")
	cmd.Flags().BoolVar(&f.origDisabled, "originally-disabled", false, "beneficiary was originally entitled by disability")
	cmd.Flags().BoolVar(&f.newEnrollee, "new-enrollee", false, "beneficiary is a new Medicare enrollee")
	cmd.Flags().BoolVar(&f.esrd, "esrd", false, "beneficiary has end-stage renal disease")
	cmd.Flags().BoolVar(&f.snp, "snp", false, "beneficiary is enrolled in a special-needs/institutional plan")
	cmd.Flags().BoolVar(&f.lowIncome, "low-income", false, "beneficiary qualifies for the low-income subsidy")
	cmd.Flags().IntVar(&f.graftMonths, "graft-months", -1, "months since ESRD kidney transplant (omit if not applicable)")
	cmd.Flags().StringVar(&f.category, "category", "", "explicit segment-category override, if any")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("sex")
}

func (f *demographicsFlags) toDemographics() demographics.Demographics {
	d := demographics.Demographics{
		Age:             f.age,
		Sex:             f.sex,
		DualEligibility: f.dual,
		OrigDisabled:    f.origDisabled,
		NewEnrollee:     f.newEnrollee,
		ESRD:            f.esrd,
		SNP:             f.snp,
		LowIncome:       f.lowIncome,
		Category:        f.category,
	}
	if f.graftMonths >= 0 {
		m := f.graftMonths
		d.GraftMonths = &m
	}
	return d
}

// newRequestID stamps a correlation id for one orchestrator call so a
// batch run's stderr log can be grepped per beneficiary (spec.md §9's
// CLI expansion; not part of RAFResult, which spec.md §6 defines
// exhaustively).
func newRequestID() string {
	return uuid.NewString()
}

// emitResult prints a correlation id and timing to stderr, matching the
// teacher's "progress, then a final summary" stderr texture
// (hospital_loader/main.go), and the RAFResult as indented JSON on
// stdout.
func emitResult(requestID string, result *raf.Result, elapsed time.Duration) error {
	fmt.Fprintf(os.Stderr, "[%s] scored beneficiary in %s (risk_score=%.6f, hcc_count=%d)\n",
		requestID, elapsed.Round(time.Millisecond), result.RiskScore, len(result.HCCList))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
