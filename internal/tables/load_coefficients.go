package tables

import (
	"io"

	"github.com/shopspring/decimal"
)

// loadCoefficients reads ra_coefficients_<year>.csv: columns model_name,
// segment, variable, coefficient (spec.md §6), keeping only rows whose
// model_name matches variant. Coefficient values are parsed through
// decimal.Decimal and rounded to 6 fractional digits before converting
// to float64, matching spec.md §6's "coefficient parsed as decimal, 6
// fractional digits sufficient" — a plain strconv.ParseFloat on raw CSV
// text offers no such rounding discipline.
func loadCoefficients(path string, variant ModelVariant) (*CoefficientTable, error) {
	r, closeFn, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	idx, err := readHeaderIndex(path, r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, idx, "model_name", "segment", "variable", "coefficient"); err != nil {
		return nil, err
	}

	t := &CoefficientTable{bySegment: make(map[string]map[string]float64)}

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
		segment := cellAt(row, idx, "segment")
		variable := cellAt(row, idx, "variable")
		coefRaw := cellAt(row, idx, "coefficient")
		if segment == "" || variable == "" {
			continue
		}

		coef, err := decimal.NewFromString(coefRaw)
		if err != nil {
			return nil, readRowErr(path, lineNo, err)
		}
		value, _ := coef.Round(6).Float64()

		bySegment := t.bySegment[segment]
		if bySegment == nil {
			bySegment = make(map[string]float64)
			t.bySegment[segment] = bySegment
		}
		bySegment[variable] = value
	}

	return t, nil
}
