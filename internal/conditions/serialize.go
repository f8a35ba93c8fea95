// internal/conditions/serialize.go
package conditions

import (
	"encoding/json"

	"github.com/solatis/showwhen/internal/types"
)

/*
 * Wire payload serialization.
 *
 * Inverse of parse.go: translates the in-memory tree back into the stored
 * JSON shape, operator spellings mapped internal->wire, the root wrapped
 * under the show_when envelope. The Empty condition serializes to nil
 * (JSON null) rather than an empty envelope.
 *
 * Trees are normalized through Flatten before writing. The source UI only
 * ever builds one-level trees, but an embedding editor could construct
 * deeper ones; normalizing here makes serialize agree with what the next
 * parse would produce instead of silently persisting a shape that parsing
 * would then collapse.
 */

// Serialize converts a condition tree into its wire payload: an envelope
// object wrapping the translated tree, or nil for the Empty condition.
func Serialize(c types.Condition) map[string]any {
	node := serializeNode(Flatten(c))
	if node == nil {
		return nil
	}
	return map[string]any{EnvelopeKey: node}
}

// MarshalWire renders the wire payload as JSON bytes; the Empty condition
// marshals to the JSON null literal.
func MarshalWire(c types.Condition) ([]byte, error) {
	payload := Serialize(c)
	if payload == nil {
		return []byte("null"), nil
	}
	return json.Marshal(payload)
}

func serializeNode(c types.Condition) any {
	switch n := c.(type) {
	case *types.Simple:
		if n == nil {
			return nil
		}
		// value is always present in the wire shape, null when unset
		var value any
		if n.Value != nil {
			value = n.Value
		}
		return map[string]any{
			"field_id": string(n.Field),
			"operator": WireOperator(n.Operator),
			"value":    value,
		}
	case *types.Group:
		if n == nil {
			return nil
		}
		children := make([]any, 0, len(n.Conditions))
		for _, child := range n.Conditions {
			if node := serializeNode(child); node != nil {
				children = append(children, node)
			}
		}
		return map[string]any{
			"logic":      string(n.Logic),
			"conditions": children,
		}
	default:
		return nil
	}
}
