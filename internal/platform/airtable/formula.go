package airtable

import (
	"fmt"
	"strings"
)

// Formula helpers build filterByFormula expressions from UI filter input.
// Every builder degrades to "" for empty input so callers can compose
// clauses without special-casing absent filters.

// EscapeString escapes a user-supplied value for embedding inside a
// single-quoted formula literal. Unescaped quotes would terminate the
// literal and let a search term rewrite the expression.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}

// UnescapeString reverses EscapeString; round-tripping recovers the
// original term for display.
func UnescapeString(s string) string {
	s = strings.ReplaceAll(s, `\'`, `'`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// FieldEquals emits {Field}='value'.
func FieldEquals(field, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("{%s}='%s'", field, EscapeString(value))
}

// FieldEqualsFold emits a case-insensitive equality clause.
func FieldEqualsFold(field, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("LOWER({%s})='%s'", field, EscapeString(strings.ToLower(value)))
}

// Search emits a case-insensitive substring test across the given fields,
// concatenated with spaces so a needle cannot match across two adjacent
// field boundaries.
func Search(needle string, fields ...string) string {
	if needle == "" || len(fields) == 0 {
		return ""
	}
	refs := make([]string, len(fields))
	for i, field := range fields {
		refs[i] = "{" + field + "}"
	}
	haystack := strings.Join(refs, "&' '&")
	return fmt.Sprintf("FIND(LOWER('%s'), LOWER(%s))>0", EscapeString(strings.ToLower(needle)), haystack)
}

// And joins clauses with AND(), dropping empties. Zero clauses yield "",
// a single clause is emitted bare.
func And(clauses ...string) string {
	return combine("AND", clauses)
}

// Or joins clauses with OR(), dropping empties.
func Or(clauses ...string) string {
	return combine("OR", clauses)
}

func combine(op string, clauses []string) string {
	active := clauses[:0:0]
	for _, c := range clauses {
		if c != "" {
			active = append(active, c)
		}
	}
	switch len(active) {
	case 0:
		return ""
	case 1:
		return active[0]
	default:
		return op + "(" + strings.Join(active, ",") + ")"
	}
}

// SortField is one element of the sort query parameter.
type SortField struct {
	Field     string
	Direction string // "asc" or "desc"
}

// SortFor maps a logical sort key onto a concrete field name using the
// caller's whitelist. Unknown or absent keys fall back to the default
// field, ascending.
func SortFor(key, order, defaultField string, whitelist map[string]string) []SortField {
	field, ok := whitelist[key]
	if !ok {
		return []SortField{{Field: defaultField, Direction: "asc"}}
	}
	direction := "asc"
	if order == "desc" {
		direction = "desc"
	}
	return []SortField{{Field: field, Direction: direction}}
}
