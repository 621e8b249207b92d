package tables

// Options configures which reference tables load for a pipeline run
// (spec.md §4.8). Unrecognized options are a fatal ConfigurationError —
// since Go structs are closed by construction, there are no unknown
// keys to reject; Validate rejects missing required table paths.
type Options struct {
	FilterClaims bool

	DxCCTablePath           string
	ProcedureTablePath      string
	HierarchyTablePath      string
	CoefficientTablePath    string
	InteractionTablePath    string
	ChronicFlagsTablePath   string

	// PassEligibleBillTypeOnly resolves spec.md §9 Open Question 1: when
	// true, an institutional-outpatient ServiceRecord passes the
	// eligibility filter on a retained facility bill-type prefix alone,
	// even without an eligible procedure code.
	PassEligibleBillTypeOnly bool

	// RequireExplicitPointers resolves spec.md §9 Open Question 2: when
	// true, a ServiceRecord with no linked diagnosis pointers contributes
	// no diagnoses rather than falling back to the full claim-level list.
	RequireExplicitPointers bool
}

// Validate checks Options for the fatal, init-time misconfigurations
// spec.md §7 assigns to ConfigurationError: missing reference table
// paths. It does not open any file — that happens during Load.
func (o Options) Validate() error {
	required := map[string]string{
		"dx_cc_table":          o.DxCCTablePath,
		"procedure_table":      o.ProcedureTablePath,
		"hierarchy_table":      o.HierarchyTablePath,
		"coefficient_table":    o.CoefficientTablePath,
		"interaction_table":    o.InteractionTablePath,
		"chronic_flags_table":  o.ChronicFlagsTablePath,
	}
	for name, path := range required {
		if path == "" {
			return configErr("", "missing required option %q", name)
		}
	}
	return nil
}
