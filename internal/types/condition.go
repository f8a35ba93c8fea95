// internal/types/condition.go
package types

/*
 * Condition tree for visibility rules.
 *
 * A Condition is a closed three-variant union:
 *   - Empty: the nil Condition; no constraint, always visible
 *   - Simple: one field/operator/value comparison
 *   - Group: and/or combination of child conditions
 *
 * The editor UI keeps groups one level deep; the type itself places no depth
 * limit. Normalization to one level is the parser/serializer's job
 * (internal/conditions.Flatten), not an invariant enforced here.
 *
 * Value arity (none/scalar/array per operator) is likewise not enforced at
 * construction time. The evaluator tolerates violations defensively so a
 * hand-edited or stale stored payload can never make rendering fail.
 */

// Condition is a visibility constraint tree. The nil Condition is the Empty
// variant and evaluates to visible. Implementations are closed: Simple and
// Group are the only two non-nil variants.
type Condition interface {
	condition()
}

// Simple compares one field's current value against a target value.
// Value is nil for none-arity operators (filled/empty), a scalar for
// scalar-arity operators, and a []any for in/notin.
type Simple struct {
	Field    FieldRef
	Operator Operator
	Value    any
}

// Group combines child conditions with and/or logic. Children may be Simple
// or Group; nil children are permitted and evaluate as Empty.
type Group struct {
	Logic      Logic
	Conditions []Condition
}

func (*Simple) condition() {}
func (*Group) condition()  {}
