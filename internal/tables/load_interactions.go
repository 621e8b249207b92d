package tables

import "io"

// loadInteractionDefs reads ra_interactions_<variant>.csv: columns
// variable, expression (spec.md §6). Expressions are kept as raw
// strings here; internal/interactions compiles them into predicates —
// the Reference Table Loader's job ends at handing back table-driven
// rows (spec.md §2 item 1).
func loadInteractionDefs(path string) ([]InteractionDef, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "variable", "expression"); err != nil {
		return nil, err
	}

	var defs []InteractionDef

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

		variable := cellAt(row, idx, "variable")
		expr := cellAt(row, idx, "expression")
		if variable == "" || expr == "" {
			continue
		}
		defs = append(defs, InteractionDef{Variable: variable, Expression: expr})
	}

	return defs, nil
}
