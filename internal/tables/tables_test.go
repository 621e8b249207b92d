package tables

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func validOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()

	return Options{
		DxCCTablePath: writeFixture(t, dir, "dxcc.csv",
			"diagnosis_code,cc,model_name\nE119,19,V28\nZ00129,,V28\n"),
		HierarchyTablePath: writeFixture(t, dir, "hierarchy.csv",
			"parent_cc,child_cc\n18,19\n"),
		CoefficientTablePath: writeFixture(t, dir, "coefficients.csv",
			"model_name,segment,variable,coefficient\nV28,CNA,HCC19,0.412345678\n"),
		ProcedureTablePath: writeFixture(t, dir, "procedures.csv",
			"code\n99213\nFACILITY:13\n"),
		ChronicFlagsTablePath: writeFixture(t, dir, "chronic.csv",
			"cc,is_chronic\n19,1\n85,0\n"),
		InteractionTablePath: writeFixture(t, dir, "interactions.csv",
			"variable,expression\nD2,COUNT(HCC1,HCC2) >= 2\n"),
	}
}

func TestLoadBuildsAllTables(t *testing.T) {
	opts := validOptions(t)

	tbls, err := Load(V28, opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ccs, ok := tbls.DxCC.CCsFor("E119")
	if !ok || len(ccs) != 1 || ccs[0] != 19 {
		t.Errorf("DxCC.CCsFor(E119): got %v, %v", ccs, ok)
	}

	if children := tbls.Hierarchy.ChildrenOf(18); len(children) != 1 || children[0] != 19 {
		t.Errorf("Hierarchy.ChildrenOf(18): got %v", children)
	}

	if v, ok := tbls.Coefficients.Lookup("CNA", "HCC19"); !ok || v != 0.412346 {
		t.Errorf("Coefficients.Lookup: got %v, %v want 0.412346", v, ok)
	}

	if !tbls.Procedures.Eligible("99213") {
		t.Error("expected 99213 eligible")
	}
	if !tbls.Procedures.RetainedFacilityPrefix("1300") {
		t.Error("expected facility prefix 13 retained")
	}

	if !tbls.Chronic.IsChronic(19) {
		t.Error("expected CC19 chronic")
	}
	if tbls.Chronic.IsChronic(85) {
		t.Error("expected CC85 non-chronic")
	}

	if len(tbls.Interactions) != 1 || tbls.Interactions[0].Variable != "D2" {
		t.Errorf("Interactions: got %v", tbls.Interactions)
	}
}

func TestLoadFiltersRowsByVariant(t *testing.T) {
	opts := validOptions(t)

	tbls, err := Load(V22, opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := tbls.DxCC.CCsFor("E119"); ok {
		t.Error("expected E119 to not map under V22 (row is tagged V28)")
	}
}

func TestLoadRejectsUnknownVariant(t *testing.T) {
	opts := validOptions(t)
	_, err := Load(ModelVariant("BOGUS"), opts)
	if err == nil {
		t.Fatal("expected ConfigurationError for unknown variant")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("expected *ConfigurationError, got %T", err)
	}
}

func TestLoadRejectsMissingTableFile(t *testing.T) {
	opts := validOptions(t)
	opts.DxCCTablePath = "/nonexistent/dxcc.csv"

	_, err := Load(V28, opts)
	if err == nil {
		t.Fatal("expected ConfigurationError for missing file")
	}
}

func TestLoadRejectsMissingCSVColumn(t *testing.T) {
	opts := validOptions(t)
	dir := t.TempDir()
	opts.HierarchyTablePath = writeFixture(t, dir, "bad_hierarchy.csv", "parent,child\n1,2\n")

	_, err := Load(V28, opts)
	if err == nil {
		t.Fatal("expected ConfigurationError for missing required column")
	}
}

func TestOptionsValidateRejectsMissingPaths(t *testing.T) {
	opts := Options{}
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for empty Options")
	}
}

func TestLoadOnceReturnsSameInstance(t *testing.T) {
	opts := validOptions(t)

	a, err := LoadOnce(V28, opts)
	if err != nil {
		t.Fatalf("LoadOnce: %v", err)
	}
	b, err := LoadOnce(V28, opts)
	if err != nil {
		t.Fatalf("LoadOnce: %v", err)
	}
	if a != b {
		t.Error("expected LoadOnce to return the cached instance for identical (variant, opts)")
	}
}

func TestModelVariantClassification(t *testing.T) {
	if !ESRDV21.IsESRD() {
		t.Error("expected ESRD_V21 to be ESRD")
	}
	if V28.IsESRD() {
		t.Error("expected V28 to not be ESRD")
	}
	if !RxHCCV08.IsRxHCC() {
		t.Error("expected RxHCC_V08 to be RxHCC")
	}
}
