package tables

import (
	"bufio"
	"encoding/csv"
	"os"
	"strings"
)

// openCSVReader opens path and returns a csv.Reader positioned at the
// first byte after an optional UTF-8 BOM, matching the BOM-skipping
// convention used throughout the reference CSV/JSON readers this module
// was grounded on.
func openCSVReader(path string) (*csv.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, configErr(path, "open table file: %v", err)
	}

	buffered := bufio.NewReaderSize(f, 64*1024)
	bom, err := buffered.Peek(3)
	if err == nil && len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		buffered.Discard(3)
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	return reader, f.Close, nil
}

// readHeaderIndex reads the CSV header row and returns a column-name to
// column-index map, matching spec.md §6's "header row required" rule.
func readHeaderIndex(path string, r *csv.Reader) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, configErr(path, "read header row: %v", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "﻿"))] = i
	}
	return idx, nil
}

func requireColumns(path string, idx map[string]int, names ...string) error {
	for _, n := range names {
		if _, ok := idx[n]; !ok {
			return configErr(path, "missing required column %q", n)
		}
	}
	return nil
}

func cellAt(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readRowErr(path string, lineNo int, err error) error {
	return configErr(path, "row %d: %v", lineNo, err)
}
