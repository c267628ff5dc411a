package airtable

import "strings"

var (
	valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	fieldEscaper = strings.NewReplacer(`}`, `\}`)
)

// Eq builds an exact-match formula: {field} = 'value'.
func Eq(field, value string) string {
	return "{" + fieldEscaper.Replace(field) + "} = " + Quote(value)
}

// And combines formulas; a single formula is returned unchanged.
func And(exprs ...string) string {
	return combine("AND", exprs)
}

// Or combines formulas; a single formula is returned unchanged.
func Or(exprs ...string) string {
	return combine("OR", exprs)
}

// RecordID matches a record by its store id.
func RecordID(id string) string {
	return "RECORD_ID() = " + Quote(id)
}

// Quote renders s as a single-quoted formula string literal.
func Quote(s string) string {
	return "'" + valueEscaper.Replace(s) + "'"
}

func combine(fn string, exprs []string) string {
	switch len(exprs) {
	case 0:
		return ""
	case 1:
		return exprs[0]
	}
	return fn + "(" + strings.Join(exprs, ", ") + ")"
}
