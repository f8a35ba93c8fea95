package conditions

import (
	"reflect"
	"testing"

	"github.com/solatis/showwhen/internal/types"
)

func TestParse_FailOpen(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{name: "nil payload", payload: nil},
		{name: "empty string", payload: ""},
		{name: "whitespace-only string", payload: "   \n\t"},
		{name: "malformed JSON", payload: "{not valid json"},
		{name: "JSON null literal", payload: "null"},
		{name: "unexpected JSON type", payload: "[1, 2, 3]"},
		{name: "empty bytes", payload: []byte("")},
		{name: "malformed bytes", payload: []byte("{{")},
		{name: "unsupported Go type", payload: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.payload)
			if got != nil {
				t.Errorf("Parse(%v) = %#v, want Empty", tt.payload, got)
			}
			if !Evaluate(got, types.Values{"anything": "set"}) {
				t.Errorf("Evaluate(Empty) = false, want true")
			}
		})
	}
}

func TestParse_Simple(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    types.Condition
	}{
		{
			name:    "wire operator spelling translated",
			payload: `{"show_when": {"field_id": "country", "operator": "not_equals", "value": "US"}}`,
			want:    &types.Simple{Field: "country", Operator: types.OpNotEquals, Value: "US"},
		},
		{
			name:    "envelope optional",
			payload: `{"field_id": "country", "operator": "equals", "value": "US"}`,
			want:    &types.Simple{Field: "country", Operator: types.OpEquals, Value: "US"},
		},
		{
			name:    "internal-style field key accepted",
			payload: `{"fieldid": "age", "operator": "greater_or_equal", "value": 18}`,
			want:    &types.Simple{Field: "age", Operator: types.OpGreaterOrEqual, Value: float64(18)},
		},
		{
			name:    "wire field key preferred over internal",
			payload: `{"field_id": "wire", "fieldid": "internal", "operator": "filled"}`,
			want:    &types.Simple{Field: "wire", Operator: types.OpFilled},
		},
		{
			name:    "numeric field id canonicalized",
			payload: `{"field_id": 12, "operator": "empty"}`,
			want:    &types.Simple{Field: "12", Operator: types.OpEmpty},
		},
		{
			name:    "none-arity operator value cleared",
			payload: `{"field_id": "notes", "operator": "filled", "value": "stale"}`,
			want:    &types.Simple{Field: "notes", Operator: types.OpFilled},
		},
		{
			name:    "unknown operator preserved verbatim",
			payload: `{"field_id": "f", "operator": "matches_regex", "value": "^a"}`,
			want:    &types.Simple{Field: "f", Operator: types.Operator("matches_regex"), Value: "^a"},
		},
		{
			name:    "array value read as-is",
			payload: `{"field_id": "color", "operator": "in", "value": ["red", "blue"]}`,
			want:    &types.Simple{Field: "color", Operator: types.OpIn, Value: []any{"red", "blue"}},
		},
		{
			name:    "missing field reference dropped",
			payload: `{"operator": "equals", "value": "x"}`,
			want:    nil,
		},
		{
			name:    "non-string operator dropped",
			payload: `{"field_id": "f", "operator": 7}`,
			want:    nil,
		},
		{
			name:    "null envelope content",
			payload: `{"show_when": null}`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParse_GroupFlattening(t *testing.T) {
	// Two-level nesting: the inner "and" group dissolves into the outer "or".
	payload := `{
		"show_when": {
			"logic": "or",
			"conditions": [
				{"field_id": "country", "operator": "equals", "value": "US"},
				{
					"logic": "and",
					"conditions": [
						{"field_id": "age", "operator": "greater_or_equal", "value": 18},
						{"field_id": "consent", "operator": "filled"}
					]
				}
			]
		}
	}`

	got := Parse(payload)
	want := &types.Group{
		Logic: types.LogicOr,
		Conditions: []types.Condition{
			&types.Simple{Field: "country", Operator: types.OpEquals, Value: "US"},
			&types.Simple{Field: "age", Operator: types.OpGreaterOrEqual, Value: float64(18)},
			&types.Simple{Field: "consent", Operator: types.OpFilled},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %#v, want one-level group %#v", got, want)
	}
}

func TestParse_GroupEdgeCases(t *testing.T) {
	t.Run("empty conditions array kept as group", func(t *testing.T) {
		got := Parse(`{"logic": "and", "conditions": []}`)
		want := &types.Group{Logic: types.LogicAnd}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %#v, want %#v", got, want)
		}
	})

	t.Run("malformed children dropped, group kept", func(t *testing.T) {
		got := Parse(`{"logic": "or", "conditions": [
			{"operator": "equals", "value": "no-field"},
			{"field_id": "ok", "operator": "filled"},
			"not-an-object"
		]}`)
		want := &types.Group{
			Logic:      types.LogicOr,
			Conditions: []types.Condition{&types.Simple{Field: "ok", Operator: types.OpFilled}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %#v, want %#v", got, want)
		}
	})

	t.Run("logic without conditions array treated as simple", func(t *testing.T) {
		// No field reference either, so the node drops to Empty.
		if got := Parse(`{"logic": "and", "conditions": "oops"}`); got != nil {
			t.Errorf("Parse() = %#v, want Empty", got)
		}
	})

	t.Run("three levels of nesting collapse", func(t *testing.T) {
		got := Parse(`{"logic": "and", "conditions": [
			{"logic": "or", "conditions": [
				{"logic": "and", "conditions": [
					{"field_id": "deep", "operator": "filled"}
				]}
			]}
		]}`)
		want := &types.Group{
			Logic:      types.LogicAnd,
			Conditions: []types.Condition{&types.Simple{Field: "deep", Operator: types.OpFilled}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %#v, want %#v", got, want)
		}
	})
}

func TestParse_AcceptsDecodedMap(t *testing.T) {
	payload := map[string]any{
		"show_when": map[string]any{
			"field_id": "status",
			"operator": "equals",
			"value":    "active",
		},
	}
	got := Parse(payload)
	want := &types.Simple{Field: "status", Operator: types.OpEquals, Value: "active"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %#v, want %#v", got, want)
	}
}
