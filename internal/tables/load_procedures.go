package tables

import "io"

// loadEligibleProcedures reads ra_eligible_cpt_hcpcs_<year>.csv: column
// code (spec.md §6). Rows whose code begins with "FACILITY:" name a
// retained institutional bill-type prefix rather than a CPT/HCPCS code
// (spec.md §4.2's "a retained facility prefix configured in the
// eligible-procedures table").
func loadEligibleProcedures(path string) (*EligibleProcedureTable, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "code"); err != nil {
		return nil, err
	}

	t := &EligibleProcedureTable{
		codes:          make(map[string]bool),
		facilityPrefix: make(map[string]bool),
	}

	const facilityPrefixTag = "FACILITY:"

	lineNo := 1
	for {
		row, err := r.Read()
		lineNo++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}

		code := cellAt(row, idx, "code")
		if code == "" {
			continue
		}
		if len(code) > len(facilityPrefixTag) && code[:len(facilityPrefixTag)] == facilityPrefixTag {
			t.facilityPrefix[code[len(facilityPrefixTag):]] = true
			continue
		}
		t.codes[code] = true
	}

	return t, nil
}
