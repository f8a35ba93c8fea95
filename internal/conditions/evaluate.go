// internal/conditions/evaluate.go
package conditions

import "github.com/solatis/showwhen/internal/types"

/*
 * Condition evaluation.
 *
 * Decides whether a stage, section, field, or transition is visible given a
 * snapshot of current field values. Called by the form renderer per gated
 * element before each re-render, potentially once per keystroke, so the walk
 * stays O(tree size) with no allocation and no caching.
 *
 * Recursive contract:
 *   - Empty (nil) -> true: absence of a constraint means visible
 *   - Group: and -> every child true (vacuously true for no children);
 *            or  -> at least one child true (vacuously false)
 *   - Simple: look the field up in the values map and apply the operator
 *
 * Failure semantics: pure and total. Missing field values, arity
 * violations, and operators outside the catalog all resolve to a definite
 * boolean via Compare's rules; nothing here errors or panics. The worst a
 * malformed condition can do is hide one element, never break rendering.
 */

// Evaluate reports whether the element gated by c should be visible given
// the current field values. A nil values map behaves as all fields unset.
func Evaluate(c types.Condition, values types.Values) bool {
	switch n := c.(type) {
	case nil:
		return true
	case *types.Simple:
		if n == nil {
			return true
		}
		return Compare(n.Operator, values[n.Field], n.Value)
	case *types.Group:
		if n == nil {
			return true
		}
		return evaluateGroup(n, values)
	default:
		// closed union; unreachable for trees built through this module
		return true
	}
}

func evaluateGroup(g *types.Group, values types.Values) bool {
	if g.Logic == types.LogicOr {
		for _, child := range g.Conditions {
			if Evaluate(child, values) {
				return true
			}
		}
		return false
	}
	// and, and any unrecognized logic value, combine conjunctively
	for _, child := range g.Conditions {
		if !Evaluate(child, values) {
			return false
		}
	}
	return true
}
