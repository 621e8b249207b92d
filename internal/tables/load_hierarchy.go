package tables

import (
	"io"
	"strconv"
)

// loadHierarchy reads ra_hierarchies_<variant>.csv: columns parent_cc,
// child_cc (spec.md §6). The file is already scoped to one variant by
// its own filename, so no model_name column is expected.
func loadHierarchy(path string) (*HierarchyTable, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "parent_cc", "child_cc"); err != nil {
		return nil, err
	}

	t := &HierarchyTable{children: make(map[CC][]CC)}

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

		parentRaw := cellAt(row, idx, "parent_cc")
		childRaw := cellAt(row, idx, "child_cc")
		if parentRaw == "" || childRaw == "" {
			continue
		}
		parent, err := strconv.Atoi(parentRaw)
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}
		child, err := strconv.Atoi(childRaw)
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}

		t.children[CC(parent)] = append(t.children[CC(parent)], CC(child))
	}

	return t, nil
}
