// internal/conditions/check.go
package conditions

import "github.com/solatis/showwhen/internal/types"

/*
 * Editor-side condition diagnostics.
 *
 * The evaluator deliberately swallows every malformation (fail-open by
 * contract), which is right for rendering and wrong for authoring: a typo'd
 * operator silently hides an element forever. Check surfaces what Evaluate
 * hides, for the lint command and for editor validation, without changing
 * runtime behavior.
 */

// Problem describes one issue found in a condition tree.
type Problem struct {
	Field    types.FieldRef
	Operator types.Operator
	Err      error
}

// Check walks a condition tree and reports problems the evaluator would
// otherwise degrade silently: operators outside the catalog and values that
// do not match their operator's arity. The Empty condition checks clean.
func Check(c types.Condition) []Problem {
	var problems []Problem
	return checkNode(c, problems)
}

func checkNode(c types.Condition, problems []Problem) []Problem {
	switch n := c.(type) {
	case *types.Simple:
		if n == nil {
			return problems
		}
		arity, known := ArityOf(n.Operator)
		if !known {
			return append(problems, Problem{Field: n.Field, Operator: n.Operator, Err: types.ErrUnknownOperator})
		}
		switch arity {
		case ArityScalar:
			if n.Value == nil {
				problems = append(problems, Problem{Field: n.Field, Operator: n.Operator, Err: types.ErrValueArity})
			} else if _, isList := toList(n.Value); isList {
				problems = append(problems, Problem{Field: n.Field, Operator: n.Operator, Err: types.ErrValueArity})
			}
		case ArityArray:
			if _, isList := toList(n.Value); !isList {
				problems = append(problems, Problem{Field: n.Field, Operator: n.Operator, Err: types.ErrValueArity})
			}
		}
		return problems
	case *types.Group:
		if n == nil {
			return problems
		}
		for _, child := range n.Conditions {
			problems = checkNode(child, problems)
		}
		return problems
	default:
		return problems
	}
}
