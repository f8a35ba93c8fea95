package conditions

import (
	"errors"
	"testing"

	"github.com/solatis/showwhen/internal/types"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		cond     types.Condition
		wantErrs []error
	}{
		{name: "empty checks clean", cond: nil, wantErrs: nil},
		{
			name: "well-formed simple",
			cond: &types.Simple{Field: "f", Operator: types.OpEquals, Value: "x"},
		},
		{
			name: "none-arity without value",
			cond: &types.Simple{Field: "f", Operator: types.OpFilled},
		},
		{
			name:     "unknown operator",
			cond:     &types.Simple{Field: "f", Operator: types.Operator("matches_regex"), Value: "x"},
			wantErrs: []error{types.ErrUnknownOperator},
		},
		{
			name:     "scalar operator without value",
			cond:     &types.Simple{Field: "f", Operator: types.OpEquals},
			wantErrs: []error{types.ErrValueArity},
		},
		{
			name:     "scalar operator with list value",
			cond:     &types.Simple{Field: "f", Operator: types.OpEquals, Value: []any{"x"}},
			wantErrs: []error{types.ErrValueArity},
		},
		{
			name:     "array operator with scalar value",
			cond:     &types.Simple{Field: "f", Operator: types.OpIn, Value: "x"},
			wantErrs: []error{types.ErrValueArity},
		},
		{
			name: "array operator with list value",
			cond: &types.Simple{Field: "f", Operator: types.OpNotIn, Value: []any{"x"}},
		},
		{
			name: "group accumulates child problems",
			cond: &types.Group{
				Logic: types.LogicAnd,
				Conditions: []types.Condition{
					&types.Simple{Field: "ok", Operator: types.OpFilled},
					&types.Simple{Field: "bad-op", Operator: types.Operator("???"), Value: "x"},
					&types.Simple{Field: "bad-arity", Operator: types.OpIn, Value: "scalar"},
				},
			},
			wantErrs: []error{types.ErrUnknownOperator, types.ErrValueArity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Check(tt.cond)
			if len(problems) != len(tt.wantErrs) {
				t.Fatalf("Check() found %d problems, want %d: %v", len(problems), len(tt.wantErrs), problems)
			}
			for i, p := range problems {
				if !errors.Is(p.Err, tt.wantErrs[i]) {
					t.Errorf("problem %d error = %v, want %v", i, p.Err, tt.wantErrs[i])
				}
			}
		})
	}
}
