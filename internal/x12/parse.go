// Package x12 implements the X12 837 Parser (spec.md §2 item 2, §4.1):
// it turns a raw string containing one or more ISA...IEA envelopes into
// a flat ordered list of normalized ServiceRecords.
package x12

import (
	"github.com/cmshealth/hccraf/internal/servicerecord"
)

// Parse scans data for ISA...IEA envelopes and returns one
// ServiceRecord per service line (SV1/SV2 under an LX loop), or one per
// claim when a claim has no service lines (spec.md §4.1).
//
// Each envelope is first split in full into a []Segment by
// consumeEnvelope, and the segments are then walked in order. Every
// segment of the envelope has its elements allocated as strings,
// whether or not that segment contributes to a ServiceRecord.
func Parse(data []byte) ([]servicerecord.Record, error) {
	var records []servicerecord.Record
	pos := 0
	sawEnvelope := false

	for {
		isaIdx := findISA(data, pos)
		if isaIdx == -1 {
			break
		}
		sawEnvelope = true

		sep, err := discoverSeparators(data[isaIdx:])
		if err != nil {
			return nil, err
		}

		segs, next, err := consumeEnvelope(data, isaIdx, sep)
		if err != nil {
			return nil, err
		}

		envRecords, err := parseEnvelopeSegments(segs, sep)
		if err != nil {
			return nil, err
		}
		records = append(records, envRecords...)

		pos = next
	}

	if !sawEnvelope {
		return nil, &MalformedEnvelopeError{Reason: "no ISA header found"}
	}

	return records, nil
}

// parseEnvelopeSegments walks one envelope's flat segment stream,
// maintaining the claim/service-line loop state described in
// spec.md §4.1, and emits ServiceRecords in document order.
func parseEnvelopeSegments(segs []Segment, sep Separators) ([]servicerecord.Record, error) {
	var records []servicerecord.Record

	var qualifier string
	var claim *claimAccumulator

	flushClaimIfNoServiceLines := func() {
		if claim != nil && !claim.serviceLineEmitted {
			records = append(records, claim.buildClaimLevelRecord())
		}
	}

	for _, seg := range segs {
		switch seg.Tag {
		case "GS":
			qualifier = seg.Field(8)
		case "ST":
			if v := seg.Field(3); v != "" {
				qualifier = v
			}
		case "CLM":
			flushClaimIfNoServiceLines()
			claim = newClaimAccumulator(seg, qualifier, sep.SubElement)
		case "HI":
			if claim != nil {
				claim.appendDiagnosesFromHI(seg, sep.SubElement)
			}
		case "DTP":
			if claim != nil {
				claim.applyDTP(seg)
			}
		case "LX":
			if claim != nil {
				claim.startLine()
			}
		case "SV1":
			if claim == nil {
				continue
			}
			code, mods := extractProcedureComposite(seg, 1, sep.SubElement)
			pos := seg.Field(5)
			pointers := diagnosisPointers(seg, 7, sep.SubElement)
			records = append(records, claim.buildServiceLineRecord(code, mods, pos, pointers))
			claim.serviceLineEmitted = true
		case "SV2":
			if claim == nil {
				continue
			}
			code, mods := extractProcedureComposite(seg, 2, sep.SubElement)
			records = append(records, claim.buildServiceLineRecord(code, mods, "", nil))
			claim.serviceLineEmitted = true
		}
	}

	flushClaimIfNoServiceLines()

	return records, nil
}
