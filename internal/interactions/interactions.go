// Package interactions implements the Interaction Engine (spec.md
// §4.6): it evaluates the table-driven interaction expressions over
// the hierarchy-surviving CC set and demographics, and returns the
// names of the variables that fired.
package interactions

import (
	"sort"

	"github.com/cmshealth/hccraf/internal/tables"
)

// Evaluate enumerates defs, parses each expression, and returns the
// sorted names of every interaction whose predicate is true under ctx
// (spec.md §4.6: "the implementation must enumerate them, evaluate
// each predicate, and add the variable to the contributing set when
// true").
func Evaluate(defs []tables.InteractionDef, ctx Context) ([]string, error) {
	var fired []string
	for _, def := range defs {
		n, err := parseExpression(def.Expression)
		if err != nil {
			return nil, err
		}
		if n.Eval(ctx) {
			fired = append(fired, def.Variable)
		}
	}
	sort.Strings(fired)
	return fired, nil
}
