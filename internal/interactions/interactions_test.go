package interactions

import (
	"reflect"
	"testing"

	"github.com/cmshealth/hccraf/internal/tables"
)

func ctxWithCCs(ccs ...tables.CC) Context {
	set := make(map[tables.CC]bool, len(ccs))
	for _, cc := range ccs {
		set[cc] = true
	}
	return Context{CCs: set, DemographicVars: map[string]bool{}}
}

func TestEvaluateSimpleHCCMembership(t *testing.T) {
	defs := []tables.InteractionDef{{Variable: "X", Expression: "HCC47"}}
	fired, err := Evaluate(defs, ctxWithCCs(47))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !reflect.DeepEqual(fired, []string{"X"}) {
		t.Errorf("got %v want [X]", fired)
	}
}

func TestEvaluateAndOfTwoHCCs(t *testing.T) {
	defs := []tables.InteractionDef{{Variable: "DIABETES_CHF", Expression: "ANY(HCC18,HCC19) AND ANY(HCC85,HCC86)"}}

	fired, err := Evaluate(defs, ctxWithCCs(19, 85))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(fired) != 1 || fired[0] != "DIABETES_CHF" {
		t.Errorf("expected DIABETES_CHF to fire, got %v", fired)
	}

	notFired, err := Evaluate(defs, ctxWithCCs(19))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(notFired) != 0 {
		t.Errorf("expected no interactions to fire, got %v", notFired)
	}
}

func TestEvaluateHCC47GCancerPattern(t *testing.T) {
	defs := []tables.InteractionDef{{Variable: "HCC47_gCancer", Expression: "HCC47 AND ANY(HCC8,HCC9,HCC10)"}}
	fired, err := Evaluate(defs, ctxWithCCs(47, 9))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(fired) != 1 || fired[0] != "HCC47_gCancer" {
		t.Errorf("expected HCC47_gCancer to fire, got %v", fired)
	}
}

func TestEvaluateCountBucket(t *testing.T) {
	defs := []tables.InteractionDef{
		{Variable: "D2", Expression: "COUNT(HCC1,HCC2,HCC3) >= 2"},
		{Variable: "D3", Expression: "COUNT(HCC1,HCC2,HCC3) >= 3"},
	}
	fired, err := Evaluate(defs, ctxWithCCs(1, 2))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !reflect.DeepEqual(fired, []string{"D2"}) {
		t.Errorf("got %v want [D2]", fired)
	}
}

func TestEvaluateNotAndParentheses(t *testing.T) {
	defs := []tables.InteractionDef{{Variable: "X", Expression: "NOT (HCC1 OR HCC2)"}}
	fired, err := Evaluate(defs, ctxWithCCs(3))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(fired) != 1 {
		t.Errorf("expected X to fire when neither HCC1 nor HCC2 present, got %v", fired)
	}
}

func TestEvaluateSegmentGatedNewEnrolleeInteraction(t *testing.T) {
	defs := []tables.InteractionDef{{Variable: "NE_ORIGDIS", Expression: "SEGMENT=NE AND OriginallyDisabled_Male"}}

	ctx := Context{CCs: map[tables.CC]bool{}, DemographicVars: map[string]bool{"OriginallyDisabled_Male": true}, Segment: "NE"}
	fired, err := Evaluate(defs, ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(fired) != 1 {
		t.Errorf("expected NE_ORIGDIS to fire for NE segment, got %v", fired)
	}

	ctx.Segment = "CNA"
	fired, err = Evaluate(defs, ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(fired) != 0 {
		t.Errorf("expected no fire outside NE segment, got %v", fired)
	}
}

func TestParseExpressionRejectsMalformedInput(t *testing.T) {
	_, err := parseExpression("HCC47 AND")
	if err == nil {
		t.Fatal("expected parse error for trailing AND")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestParseExpressionRejectsUnknownOperator(t *testing.T) {
	_, err := parseExpression("COUNT(HCC1,HCC2) <> 1")
	if err == nil {
		t.Fatal("expected parse error for unknown operator")
	}
}
