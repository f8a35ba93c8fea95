// internal/conditions/parse.go
package conditions

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/solatis/showwhen/internal/types"
)

/*
 * Wire payload parsing.
 *
 * Converts a stored/transmitted payload into the in-memory condition tree.
 * Fail-open throughout: nil input, blank strings, undecodable JSON, and
 * malformed nodes all degrade to the Empty condition (or drop out of a
 * group) so a bad stored payload can never block form rendering.
 *
 * Parse flow:
 *   1. nil -> Empty
 *   2. string/bytes: trim, JSON-decode, recurse; decode failure -> Empty
 *   3. unwrap the show_when envelope if present (recursing into its value)
 *   4. logic + conditions array -> group, flattened to one level
 *   5. otherwise simple node: field_id (wire, preferred) or fieldid
 *      (internal), operator translated wire->internal, value as-is
 *
 * Flattening: nested groups at any depth are walked and every simple leaf
 * collected into one flat list under the outer logic. Inner logic values are
 * discarded. This keeps the editor's model one level deep; the serializer
 * applies the same normalization so the invariant holds on both sides.
 */

// Parse converts a wire payload into a condition tree. Accepts nil, a
// JSON-encoded string, raw JSON bytes, or an already decoded object.
// Anything malformed yields the Empty condition.
func Parse(payload any) types.Condition {
	switch p := payload.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(p)
		if s == "" {
			return nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
		return Parse(decoded)
	case []byte:
		return parseBytes(p)
	case json.RawMessage:
		return parseBytes(p)
	case map[string]any:
		return parseNode(p)
	default:
		return nil
	}
}

func parseBytes(raw []byte) types.Condition {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	return Parse(decoded)
}

// parseNode interprets one decoded wire object: envelope, group, or simple.
func parseNode(m map[string]any) types.Condition {
	if inner, ok := m[EnvelopeKey]; ok {
		return Parse(inner)
	}

	if logicRaw, ok := m["logic"]; ok {
		if children, ok := m["conditions"].([]any); ok {
			logic, _ := logicRaw.(string)
			group := &types.Group{Logic: types.Logic(logic)}
			for _, child := range children {
				group.Conditions = collectSimple(child, group.Conditions)
			}
			return group
		}
	}

	return parseSimple(m)
}

// collectSimple walks a wire subtree and appends every well-formed simple
// leaf to out, discarding inner group boundaries and their logic values.
func collectSimple(node any, out []types.Condition) []types.Condition {
	m, ok := node.(map[string]any)
	if !ok {
		return out
	}
	if _, ok := m["logic"]; ok {
		if children, ok := m["conditions"].([]any); ok {
			for _, child := range children {
				out = collectSimple(child, out)
			}
			return out
		}
	}
	if simple := parseSimple(m); simple != nil {
		out = append(out, simple)
	}
	return out
}

// parseSimple reads one comparison node. Returns the Empty condition when
// the field reference is missing or the operator is not a string; such
// nodes are dropped, never propagated as a partial condition.
func parseSimple(m map[string]any) types.Condition {
	field, ok := fieldRefOf(m)
	if !ok {
		return nil
	}
	rawOp, ok := m["operator"].(string)
	if !ok {
		return nil
	}

	op := InternalOperator(rawOp)
	value := m["value"]
	if arity, known := ArityOf(op); known && arity == ArityNone {
		// filled/empty take no value; clear whatever was stored
		value = nil
	}

	return &types.Simple{Field: field, Operator: op, Value: value}
}

// fieldRefOf reads the field reference, preferring the wire-style key over
// the internal-style one when both are present. Numeric ids canonicalize to
// their shortest decimal string form.
func fieldRefOf(m map[string]any) (types.FieldRef, bool) {
	raw, ok := m["field_id"]
	if !ok {
		raw, ok = m["fieldid"]
	}
	if !ok || raw == nil {
		return "", false
	}
	switch r := raw.(type) {
	case string:
		return types.FieldRef(r), true
	case float64:
		return types.FieldRef(strconv.FormatFloat(r, 'f', -1, 64)), true
	case int:
		return types.FieldRef(strconv.Itoa(r)), true
	case int64:
		return types.FieldRef(strconv.FormatInt(r, 10)), true
	default:
		return "", false
	}
}
