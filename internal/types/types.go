// Package types provides domain models shared across showwhen components.
//
// Wire-format agnostic: the condition tree here is the in-memory model the
// editor and evaluator work with. Translation to and from the persisted JSON
// shape happens in internal/conditions, never here. Zero third-party
// dependencies except uuid for identifier generation in ids.go.
package types

// FieldRef identifies the form field whose value a condition inspects.
// Opaque to the engine; the wire format allows string or integer ids, both
// of which canonicalize to a string here so they can key a Values map.
type FieldRef string

// Logic selects how a group combines its child conditions.
type Logic string

const (
	LogicAnd Logic = "and"
	LogicOr  Logic = "or"
)

// Operator names a comparison in its internal spelling (compact, no
// separators). A string type rather than an int enum so that operator
// spellings unknown to this build survive a parse/serialize round-trip
// verbatim; the evaluator treats them as never matching.
type Operator string

const (
	OpFilled         Operator = "filled"
	OpEmpty          Operator = "empty"
	OpEquals         Operator = "equals"
	OpNotEquals      Operator = "notequals"
	OpGreaterThan    Operator = "greaterthan"
	OpLessThan       Operator = "lessthan"
	OpGreaterOrEqual Operator = "greaterorequal"
	OpLessOrEqual    Operator = "lessorequal"
	OpContains       Operator = "contains"
	OpNotContains    Operator = "notcontains"
	OpStartsWith     Operator = "startswith"
	OpEndsWith       Operator = "endswith"
	OpIn             Operator = "in"
	OpNotIn          Operator = "notin"
)

// Values is one evaluation pass's snapshot of current field values.
// Entries are decoded-JSON shaped: string, float64, bool, []any, or nil.
// Supplied fresh per call; the engine keeps no state across calls.
type Values map[FieldRef]any

// ElementKind names the form element a stored visibility rule gates.
type ElementKind string

const (
	ElementStage      ElementKind = "stage"
	ElementSection    ElementKind = "section"
	ElementField      ElementKind = "field"
	ElementTransition ElementKind = "transition"
)

// ValidElementKind reports whether k is one of the four gateable kinds.
func ValidElementKind(k ElementKind) bool {
	switch k {
	case ElementStage, ElementSection, ElementField, ElementTransition:
		return true
	}
	return false
}
