package tables

import (
	"io"
	"strconv"
)

// loadDxCC reads ra_dx_to_cc_<year>.csv: columns
// diagnosis_code, cc, model_name (spec.md §6), keeping only the rows
// whose model_name matches variant.
func loadDxCC(path string, variant ModelVariant) (*DxCCTable, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "diagnosis_code", "cc", "model_name"); err != nil {
		return nil, err
	}

	t := &DxCCTable{byDx: make(map[string][]CC)}

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

		if ModelVariant(cellAt(row, idx, "model_name")) != variant {
			continue
		}
		dx := cellAt(row, idx, "diagnosis_code")
		ccRaw := cellAt(row, idx, "cc")
		if dx == "" || ccRaw == "" {
			continue
		}
		ccNum, err := strconv.Atoi(ccRaw)
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}

		t.byDx[dx] = append(t.byDx[dx], CC(ccNum))
	}

	return t, nil
}
