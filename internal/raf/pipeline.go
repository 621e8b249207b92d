// Package raf implements the Pipeline Orchestrator and Result Builder
// (spec.md §4.8, §2 items 9-10): it wires the table loader, parser,
// extractor, mapper, hierarchy engine, demographics classifier,
// interaction engine, and coefficient summer behind three entry
// points, and assembles the RAFResult.
package raf

import (
	"fmt"

	"github.com/cmshealth/hccraf/internal/coefficients"
	"github.com/cmshealth/hccraf/internal/demographics"
	"github.com/cmshealth/hccraf/internal/extractor"
	"github.com/cmshealth/hccraf/internal/fhir"
	"github.com/cmshealth/hccraf/internal/hierarchy"
	"github.com/cmshealth/hccraf/internal/interactions"
	"github.com/cmshealth/hccraf/internal/mapper"
	"github.com/cmshealth/hccraf/internal/servicerecord"
	"github.com/cmshealth/hccraf/internal/tables"
	"github.com/cmshealth/hccraf/internal/x12"
)

// Run parses raw_inputs (837 envelopes and/or FHIR EOB documents),
// filters the resulting service records, and scores the surviving
// diagnoses (spec.md §4.8 entry point 1).
func Run(rawInputs []RawInput, demo demographics.Demographics, variant tables.ModelVariant, opts tables.Options) (*Result, error) {
	var records []servicerecord.Record

	for i, in := range rawInputs {
		switch in.Kind {
		case KindX12:
			recs, err := x12.Parse(in.Data)
			if err != nil {
				return nil, fmt.Errorf("raw input %d: %w", i, err)
			}
			records = append(records, recs...)
		case KindFHIR:
			recs, err := fhir.ToServiceRecords(in.Data)
			if err != nil {
				return nil, fmt.Errorf("raw input %d: %w", i, err)
			}
			records = append(records, recs...)
		default:
			return nil, &tables.ConfigurationError{Reason: fmt.Sprintf("raw input %d: unknown kind %v", i, in.Kind)}
		}
	}

	return RunFromServiceRecords(records, demo, variant, opts)
}

// RunFromServiceRecords skips parsing and starts at the
// Service-Level Extractor & Filter (spec.md §4.8 entry point 2).
func RunFromServiceRecords(records []servicerecord.Record, demo demographics.Demographics, variant tables.ModelVariant, opts tables.Options) (*Result, error) {
	t, err := tables.LoadOnce(variant, opts)
	if err != nil {
		return nil, err
	}

	if err := demo.Validate(); err != nil {
		return nil, err
	}

	ext := extractor.Extract(records, t, opts.RequireExplicitPointers, opts.FilterClaims, opts.PassEligibleBillTypeOnly)

	result, err := score(ext.Diagnoses, demo, variant, t)
	if err != nil {
		return nil, err
	}

	result.ServiceLevelData = &ServiceLevelData{
		TotalRecords:       ext.TotalRecords,
		EligibleRecords:    ext.EligibleRecords,
		DuplicateDiagnoses: ext.DuplicateDiagnoses,
	}

	return result, nil
}

// CalculateFromDiagnosis skips parsing and filtering, starting
// directly at the Diagnosis-to-CC Mapper with the supplied diagnosis
// set (spec.md §4.8 entry point 3).
func CalculateFromDiagnosis(dxs []string, demo demographics.Demographics, variant tables.ModelVariant, opts tables.Options) (*Result, error) {
	t, err := tables.LoadOnce(variant, opts)
	if err != nil {
		return nil, err
	}

	if err := demo.Validate(); err != nil {
		return nil, err
	}

	return score(dedupePreserveOrder(dxs), demo, variant, t)
}

func dedupePreserveOrder(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// score runs stages §4.3-§4.7 over a deduplicated diagnosis set and
// assembles the RAFResult (the Result Builder, spec.md §2 item 10).
func score(dxs []string, demo demographics.Demographics, variant tables.ModelVariant, t *tables.Tables) (*Result, error) {
	mapped := mapper.Map(dxs, t.DxCC)

	survivors := hierarchy.Suppress(mapped.CCs, t.Hierarchy)

	graftBuckets := t.Coefficients.GraftBuckets()
	classified := demographics.Classify(demo, variant, graftBuckets)

	ccSet := make(map[tables.CC]bool, len(survivors))
	for _, cc := range survivors {
		ccSet[cc] = true
	}
	demoVarSet := make(map[string]bool, len(classified.Variables))
	for _, v := range classified.Variables {
		demoVarSet[v] = true
	}

	ctx := interactions.Context{CCs: ccSet, DemographicVars: demoVarSet, Segment: classified.Segment}
	firedInteractions, err := interactions.Evaluate(t.Interactions, ctx)
	if err != nil {
		return nil, err
	}

	coefRes := coefficients.Sum(classified.Segment, classified.Variables, survivors, firedInteractions, t.Coefficients, t.Chronic)

	ccToDx := make([]CCDiagnoses, 0, len(mapped.CCs))
	for _, cc := range mapped.CCs {
		ccToDx = append(ccToDx, CCDiagnoses{CC: cc, Diagnoses: mapped.CCToDx[cc]})
	}

	return &Result{
		RiskScore:             coefRes.RiskScore,
		RiskScoreDemographics: coefRes.RiskScoreDemographics,
		RiskScoreChronicOnly:  coefRes.RiskScoreChronicOnly,
		RiskScoreHCC:          coefRes.RiskScoreHCC,
		HCCList:               survivors,
		CCToDx:                ccToDx,
		Coefficients:          coefRes.Coefficients,
		Interactions:          firedInteractions,
		Demographics:          demo,
		ModelName:             variant,
		DiagnosisCodes:        dxs,
		UnmappedDiagnoses:     mapped.Unmapped,
		CoefficientsMissing:   coefRes.Missing,
	}, nil
}
