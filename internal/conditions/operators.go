// internal/conditions/operators.go
package conditions

import (
	"strings"

	"github.com/solatis/showwhen/internal/types"
)

/*
 * Operator catalog and comparison logic.
 *
 * Implements the 14 visibility operators with loose, form-input-shaped
 * comparison rules. Values arrive as decoded JSON (string, float64, bool,
 * []any, nil) straight from a live form snapshot; no prior coercion pass.
 *
 * Operators:
 *   - filled/empty: presence checks on the trimmed string form (no value)
 *   - equals/notequals: loose equality, numeric strings equal their numbers
 *   - greaterthan/lessthan/greaterorequal/lessorequal: numeric only
 *   - contains/notcontains: array element match or substring
 *   - startswith/endswith: string-form prefix/suffix
 *   - in/notin: string-form membership in a value list
 *
 * The arity table is the single source of truth for how much comparison
 * value each operator consumes. The parser consults it to clear values on
 * none-arity operators; Compare consults nothing else to interpret a value.
 *
 * Why function-based: functional composition over interface polymorphism.
 * 14 operators via switch statement cleaner than 14 interface
 * implementations with minimal behavior variation.
 */

// Arity describes how much comparison value an operator consumes.
type Arity int

const (
	ArityNone   Arity = iota // value ignored and cleared at parse time
	ArityScalar              // single scalar value
	ArityArray               // ordered list of scalars
)

// OperatorSpec describes one catalog entry: a display label for editor and
// diagnostic output, and the operator's value arity.
type OperatorSpec struct {
	Label string
	Arity Arity
}

// Table is the fixed operator catalog. Exhaustive and central: no comparison
// logic special-cases an operator without an entry here.
var Table = map[types.Operator]OperatorSpec{
	types.OpFilled:         {Label: "is filled", Arity: ArityNone},
	types.OpEmpty:          {Label: "is empty", Arity: ArityNone},
	types.OpEquals:         {Label: "equals", Arity: ArityScalar},
	types.OpNotEquals:      {Label: "does not equal", Arity: ArityScalar},
	types.OpGreaterThan:    {Label: "is greater than", Arity: ArityScalar},
	types.OpLessThan:       {Label: "is less than", Arity: ArityScalar},
	types.OpGreaterOrEqual: {Label: "is at least", Arity: ArityScalar},
	types.OpLessOrEqual:    {Label: "is at most", Arity: ArityScalar},
	types.OpContains:       {Label: "contains", Arity: ArityScalar},
	types.OpNotContains:    {Label: "does not contain", Arity: ArityScalar},
	types.OpStartsWith:     {Label: "starts with", Arity: ArityScalar},
	types.OpEndsWith:       {Label: "ends with", Arity: ArityScalar},
	types.OpIn:             {Label: "is one of", Arity: ArityArray},
	types.OpNotIn:          {Label: "is not one of", Arity: ArityArray},
}

// Known reports whether op has a catalog entry.
func Known(op types.Operator) bool {
	_, ok := Table[op]
	return ok
}

// ArityOf returns the operator's value arity. The second return is false for
// operators outside the catalog, which the evaluator treats as never matching.
func ArityOf(op types.Operator) (Arity, bool) {
	spec, ok := Table[op]
	return spec.Arity, ok
}

// Compare applies the operator to the current field value v and the
// condition's target value. Total: any type mismatch or unknown operator
// yields false rather than an error.
func Compare(op types.Operator, v, target any) bool {
	switch op {
	case types.OpFilled:
		return isFilled(v)
	case types.OpEmpty:
		return !isFilled(v)
	case types.OpEquals:
		return looseEqual(v, target)
	case types.OpNotEquals:
		return !looseEqual(v, target)
	case types.OpGreaterThan:
		a, b, ok := asNumbers(v, target)
		return ok && a > b
	case types.OpLessThan:
		a, b, ok := asNumbers(v, target)
		return ok && a < b
	case types.OpGreaterOrEqual:
		a, b, ok := asNumbers(v, target)
		return ok && a >= b
	case types.OpLessOrEqual:
		a, b, ok := asNumbers(v, target)
		return ok && a <= b
	case types.OpContains:
		return containsValue(v, target)
	case types.OpNotContains:
		return !containsValue(v, target)
	case types.OpStartsWith:
		return strings.HasPrefix(stringify(v), stringify(target))
	case types.OpEndsWith:
		return strings.HasSuffix(stringify(v), stringify(target))
	case types.OpIn:
		list, ok := toList(target)
		return ok && memberOf(v, list)
	case types.OpNotIn:
		// Absence of a valid value list defaults to "not in" = true.
		list, ok := toList(target)
		return !ok || !memberOf(v, list)
	default:
		return false
	}
}

// isFilled reports whether v holds a non-empty value after string coercion
// and trimming. nil, "", "   ", and the empty array all count as not filled.
func isFilled(v any) bool {
	if v == nil {
		return false
	}
	return strings.TrimSpace(stringify(v)) != ""
}

// looseEqual performs coercing equality: numbers (including numeric strings)
// compare numerically, everything else compares on string form.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if na, nb, ok := asNumbers(a, b); ok {
		return na == nb
	}
	return stringify(a) == stringify(b)
}

// containsValue implements contains/notcontains: element match for array
// values, substring match on string forms otherwise.
func containsValue(v, target any) bool {
	if list, ok := toList(v); ok {
		for _, elem := range list {
			if strictEqual(elem, target) {
				return true
			}
		}
		return false
	}
	return strings.Contains(stringify(v), stringify(target))
}

// memberOf reports whether the string form of v matches the string form of
// one of the list's elements.
func memberOf(v any, list []any) bool {
	s := stringify(v)
	for _, elem := range list {
		if stringify(elem) == s {
			return true
		}
	}
	return false
}
