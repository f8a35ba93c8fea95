package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/solatis/showwhen/internal/conditions"
	"github.com/solatis/showwhen/internal/core/db"
	"github.com/solatis/showwhen/internal/types"
)

func newTestStore(t *testing.T) (*Store, *sqlx.DB) {
	t.Helper()

	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v, want nil", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.MigrateUp(database); err != nil {
		t.Fatalf("MigrateUp() error = %v, want nil", err)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		t.Fatalf("LoadQueries() error = %v, want nil", err)
	}

	s, err := New(queries)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	return s, database
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	formID := types.NewFormID()

	cond := &types.Group{
		Logic: types.LogicOr,
		Conditions: []types.Condition{
			&types.Simple{Field: "country", Operator: types.OpEquals, Value: "US"},
			&types.Simple{Field: "country", Operator: types.OpEquals, Value: "CA"},
		},
	}

	ruleID, err := s.Save(formID, types.ElementField, "shipping_state", cond)
	if err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}
	if ruleID == "" {
		t.Fatalf("Save() returned empty rule id")
	}

	loaded, err := s.Load(formID, types.ElementField, "shipping_state")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(loaded, cond) {
		t.Errorf("Load() = %#v, want %#v", loaded, cond)
	}

	if !conditions.Evaluate(loaded, types.Values{"country": "CA"}) {
		t.Errorf("loaded condition should match CA")
	}
}

func TestStore_SaveEmptyStoresNull(t *testing.T) {
	s, _ := newTestStore(t)
	formID := types.NewFormID()

	if _, err := s.Save(formID, types.ElementSection, "billing", nil); err != nil {
		t.Fatalf("Save(Empty) error = %v, want nil", err)
	}

	loaded, err := s.Load(formID, types.ElementSection, "billing")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if loaded != nil {
		t.Errorf("Load() = %#v, want Empty", loaded)
	}
}

func TestStore_Upsert(t *testing.T) {
	s, _ := newTestStore(t)
	formID := types.NewFormID()

	first, err := s.Save(formID, types.ElementTransition, "submit", &types.Simple{Field: "agreed", Operator: types.OpFilled})
	if err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	updated := &types.Simple{Field: "agreed", Operator: types.OpEquals, Value: "yes"}
	second, err := s.Save(formID, types.ElementTransition, "submit", updated)
	if err != nil {
		t.Fatalf("Save() second error = %v, want nil", err)
	}
	if first != second {
		t.Errorf("upsert changed rule id: %s -> %s", first, second)
	}

	loaded, err := s.Load(formID, types.ElementTransition, "submit")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(loaded, updated) {
		t.Errorf("Load() = %#v, want updated condition", loaded)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Load(types.NewFormID(), types.ElementField, "nope")
	if !errors.Is(err, types.ErrRuleNotFound) {
		t.Errorf("Load() error = %v, want ErrRuleNotFound", err)
	}
}

func TestStore_InvalidElementKind(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Save(types.NewFormID(), types.ElementKind("widget"), "x", nil); !errors.Is(err, types.ErrUnknownElementKind) {
		t.Errorf("Save() error = %v, want ErrUnknownElementKind", err)
	}
	if _, err := s.Load(types.NewFormID(), types.ElementKind("widget"), "x"); !errors.Is(err, types.ErrUnknownElementKind) {
		t.Errorf("Load() error = %v, want ErrUnknownElementKind", err)
	}
}

func TestStore_MalformedPayloadLoadsEmpty(t *testing.T) {
	s, database := newTestStore(t)
	formID := types.NewFormID()

	// Simulate a payload corrupted outside this code path.
	_, err := database.Exec(
		`INSERT INTO visibility_rules (rule_id, form_id, element_kind, element_ref, payload, created_at, updated_at)
		 VALUES (?, ?, 'field', 'broken', '{not valid json', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
		string(types.NewRuleID()), string(formID),
	)
	if err != nil {
		t.Fatalf("raw insert error = %v", err)
	}

	loaded, err := s.Load(formID, types.ElementField, "broken")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil (fail-open)", err)
	}
	if loaded != nil {
		t.Errorf("Load() = %#v, want Empty for malformed payload", loaded)
	}
	if !conditions.Evaluate(loaded, nil) {
		t.Errorf("malformed payload must render as visible")
	}
}

func TestStore_ListForm(t *testing.T) {
	s, _ := newTestStore(t)
	formID := types.NewFormID()
	other := types.NewFormID()

	if _, err := s.Save(formID, types.ElementField, "a", &types.Simple{Field: "x", Operator: types.OpFilled}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := s.Save(formID, types.ElementStage, "review", nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := s.Save(other, types.ElementField, "b", nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rules, err := s.ListForm(formID)
	if err != nil {
		t.Fatalf("ListForm() error = %v, want nil", err)
	}
	if len(rules) != 2 {
		t.Errorf("ListForm() returned %d rules, want 2", len(rules))
	}
	for _, r := range rules {
		if r.FormID != formID {
			t.Errorf("ListForm() leaked rule for form %s", r.FormID)
		}
	}

	all, err := s.ListAll(10)
	if err != nil {
		t.Fatalf("ListAll() error = %v, want nil", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll() returned %d rules, want 3", len(all))
	}

	capped, err := s.ListAll(1)
	if err != nil {
		t.Fatalf("ListAll(1) error = %v, want nil", err)
	}
	if len(capped) != 1 {
		t.Errorf("ListAll(1) returned %d rules, want 1", len(capped))
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	formID := types.NewFormID()

	ruleID, err := s.Save(formID, types.ElementField, "a", &types.Simple{Field: "x", Operator: types.OpFilled})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := s.Delete(ruleID); err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}
	if _, err := s.Load(formID, types.ElementField, "a"); !errors.Is(err, types.ErrRuleNotFound) {
		t.Errorf("Load() after delete error = %v, want ErrRuleNotFound", err)
	}

	// Deleting again is a no-op, not an error
	if err := s.Delete(ruleID); err != nil {
		t.Errorf("Delete() second call error = %v, want nil", err)
	}
}
