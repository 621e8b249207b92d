package interactions

import "regexp"

// tokenPattern splits an interaction expression into tokens: words
// (keywords, HCC<n>, identifiers), numbers, parentheses, commas, and
// the comparison operators the COUNT(...) OP N clause uses (spec.md
// §6 expression grammar).
var tokenPattern = regexp.MustCompile(`>=|<=|[A-Za-z_][A-Za-z0-9_]*|\d+|[(),=<>]`)

func tokenize(expr string) []string {
	return tokenPattern.FindAllString(expr, -1)
}
