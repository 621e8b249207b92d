package x12

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmshealth/hccraf/internal/servicerecord"
)

// claimAccumulator holds the claim-scope (2300/CLM loop) state while a
// single claim's segments are scanned (spec.md §4.1).
type claimAccumulator struct {
	claimType string
	billType  string
	placeOfService string

	diagnoses []string

	claimFrom, claimTo *time.Time
	lineFrom, lineTo   *time.Time
	linePOS            string

	serviceLineEmitted bool
}

// newClaimAccumulator starts a new claim scope from a CLM segment.
// qualifier is the transaction's implementation convention reference
// (GS08, overridden by ST03 if present) used to infer professional vs.
// institutional per spec.md §4.1.
func newClaimAccumulator(seg Segment, qualifier string, sub byte) *claimAccumulator {
	c := &claimAccumulator{}

	composite := strings.Split(seg.Field(5), string(sub))
	facilityCode := ""
	if len(composite) > 0 {
		facilityCode = composite[0]
	}

	switch {
	case strings.HasPrefix(qualifier, "005010X222"):
		c.claimType = servicerecord.ClaimTypeProfessional
		c.placeOfService = facilityCode
	case strings.HasPrefix(qualifier, "005010X223"):
		c.billType = facilityCode
		if len(facilityCode) >= 2 && facilityCode[1] == '1' {
			c.claimType = servicerecord.ClaimTypeInstitutionalInpat
		} else {
			c.claimType = servicerecord.ClaimTypeInstitutionalOutpat
		}
	default:
		// Unknown transaction qualifier: don't abort the parse, just
		// produce a ServiceRecord with an empty claim_type (spec.md §4.1).
	}

	return c
}

// diagnosisQualifiers are the HI composite qualifiers this parser
// recognizes and strips, per spec.md §4.1 ("ABK", "ABF", "BK", "BF",
// etc.). Only the qualifiers listed here are accepted; a composite
// with any other qualifier is skipped and contributes no diagnosis.
var diagnosisQualifiers = map[string]bool{
	"ABK": true, "ABF": true, "ABJ": true, "ABN": true,
	"BK": true, "BF": true, "BJ": true, "BN": true,
	"PR": true,
}

// appendDiagnosesFromHI extracts diagnosis codes from an HI segment's
// composites, preserving declared order. The first composite of the
// first HI segment processed for a claim is the principal diagnosis;
// the rest are secondary (spec.md §4.1).
func (c *claimAccumulator) appendDiagnosesFromHI(seg Segment, sub byte) {
	for _, field := range seg.Fields {
		if field == "" {
			continue
		}
		parts := strings.Split(field, string(sub))
		if len(parts) < 2 {
			continue
		}
		if !diagnosisQualifiers[parts[0]] {
			continue
		}
		code := parts[1]
		if code == "" {
			continue
		}
		c.diagnoses = append(c.diagnoses, code)
	}
}

// applyDTP records claim-level (DTP*434) or service-line-level
// (DTP*472) date ranges (spec.md §4.1).
func (c *claimAccumulator) applyDTP(seg Segment) {
	qualifier := seg.Field(1)
	from, to := parseDTPDate(seg.Field(2), seg.Field(3))

	switch qualifier {
	case "472":
		c.lineFrom, c.lineTo = from, to
	case "434":
		c.claimFrom, c.claimTo = from, to
	}
}

// startLine resets the per-service-line state when a new LX loop begins.
func (c *claimAccumulator) startLine() {
	c.lineFrom, c.lineTo = nil, nil
	c.linePOS = ""
}

// extractProcedureComposite splits a composite procedure element
// (e.g. SV101 "HC:99213:25:59") into its code and up to 4 modifiers,
// per spec.md §4.1.
func extractProcedureComposite(seg Segment, elementIndex int, sub byte) (code string, modifiers []string) {
	field := seg.Field(elementIndex)
	if field == "" {
		return "", nil
	}
	parts := strings.Split(field, string(sub))
	if len(parts) < 2 {
		return "", nil
	}
	code = parts[1]
	for i := 2; i < len(parts) && len(modifiers) < 4; i++ {
		if parts[i] != "" {
			modifiers = append(modifiers, parts[i])
		}
	}
	return code, modifiers
}

// diagnosisPointers parses a composite diagnosis-pointer element
// (e.g. SV107 "1:2") into 1-based indices into the claim's diagnosis
// list (spec.md §4.1, "diagnosis pointers from SV1-07").
func diagnosisPointers(seg Segment, elementIndex int, sub byte) []int {
	field := seg.Field(elementIndex)
	if field == "" {
		return nil
	}
	var out []int
	for _, p := range strings.Split(field, string(sub)) {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// buildServiceLineRecord assembles the ServiceRecord emitted for a
// SV1/SV2 service line (spec.md §4.1).
func (c *claimAccumulator) buildServiceLineRecord(code string, modifiers []string, pos string, pointers []int) servicerecord.Record {
	from, to := c.lineFrom, c.lineTo
	if from == nil {
		from, to = c.claimFrom, c.claimTo
	}
	if pos == "" {
		pos = c.placeOfService
	}
	return servicerecord.Record{
		ClaimType:               c.claimType,
		BillType:                c.billType,
		ServiceDate:             from,
		ThroughDate:             to,
		PlaceOfService:          pos,
		ProcedureCode:           code,
		ProcedureModifiers:      modifiers,
		DiagnosisCodes:          append([]string(nil), c.diagnoses...),
		LinkedDiagnosisPointers: pointers,
	}
}

// buildClaimLevelRecord assembles the single ServiceRecord emitted for
// a claim with no service lines (spec.md §4.1).
func (c *claimAccumulator) buildClaimLevelRecord() servicerecord.Record {
	return servicerecord.Record{
		ClaimType:      c.claimType,
		BillType:       c.billType,
		ServiceDate:    c.claimFrom,
		ThroughDate:    c.claimTo,
		PlaceOfService: c.placeOfService,
		DiagnosisCodes: append([]string(nil), c.diagnoses...),
	}
}
