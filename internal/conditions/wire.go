// internal/conditions/wire.go
package conditions

import "github.com/solatis/showwhen/internal/types"

/*
 * Wire-format operator spellings.
 *
 * Two spellings exist for every operator: the internal one used by the
 * in-memory tree (compact, no separators) and the snake_case one used by
 * the persisted/API JSON. For equals, filled, empty, contains, and in the
 * spellings coincide; the tables still list them so both lookups stay total
 * over the catalog.
 *
 * Spellings outside the tables pass through unchanged in both directions.
 * A payload written by a newer build with an operator this build does not
 * know must parse, round-trip verbatim, and evaluate as "no match" rather
 * than crash.
 */

// EnvelopeKey is the well-known wrapper key under which the wire format
// nests the actual condition tree.
const EnvelopeKey = "show_when"

var internalToWire = map[types.Operator]string{
	types.OpFilled:         "filled",
	types.OpEmpty:          "empty",
	types.OpEquals:         "equals",
	types.OpNotEquals:      "not_equals",
	types.OpGreaterThan:    "greater_than",
	types.OpLessThan:       "less_than",
	types.OpGreaterOrEqual: "greater_or_equal",
	types.OpLessOrEqual:    "less_or_equal",
	types.OpContains:       "contains",
	types.OpNotContains:    "not_contains",
	types.OpStartsWith:     "starts_with",
	types.OpEndsWith:       "ends_with",
	types.OpIn:             "in",
	types.OpNotIn:          "not_in",
}

var wireToInternal = make(map[string]types.Operator, len(internalToWire))

func init() {
	// The wire table is the exact inverse of the internal table; building it
	// here keeps the two from drifting.
	for op, wire := range internalToWire {
		wireToInternal[wire] = op
	}
}

// WireOperator translates an internal operator spelling to its wire
// spelling. Unknown spellings pass through unchanged.
func WireOperator(op types.Operator) string {
	if wire, ok := internalToWire[op]; ok {
		return wire
	}
	return string(op)
}

// InternalOperator translates a wire operator spelling to its internal
// spelling. Unknown spellings pass through unchanged.
func InternalOperator(wire string) types.Operator {
	if op, ok := wireToInternal[wire]; ok {
		return op
	}
	return types.Operator(wire)
}
