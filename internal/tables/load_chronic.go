package tables

import (
	"io"
	"strconv"
)

// loadChronicFlags reads hcc_is_chronic.csv: columns cc, is_chronic
// (boolean as 0|1) (spec.md §6).
func loadChronicFlags(path string) (*ChronicFlagTable, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "cc", "is_chronic"); err != nil {
		return nil, err
	}

	t := &ChronicFlagTable{chronic: make(map[CC]bool)}

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

		ccRaw := cellAt(row, idx, "cc")
		if ccRaw == "" {
			continue
		}
		ccNum, err := strconv.Atoi(ccRaw)
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}
		t.chronic[CC(ccNum)] = cellAt(row, idx, "is_chronic") == "1"
	}

	return t, nil
}
