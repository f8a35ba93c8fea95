// Package store persists visibility rules: one wire-format condition payload
// per gated form element (stage, section, field, or transition).
//
// All payloads cross this boundary in the public wire shape. Save serializes
// through the condition engine; loading parses through it, so a malformed
// stored payload surfaces as the Empty condition rather than an error,
// matching the renderer's fail-open contract.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/solatis/showwhen/internal/conditions"
	"github.com/solatis/showwhen/internal/core/db"
	"github.com/solatis/showwhen/internal/types"
)

// VisibilityRule is one stored rule row.
type VisibilityRule struct {
	RuleID      types.RuleID      `db:"rule_id"`
	FormID      types.FormID      `db:"form_id"`
	ElementKind types.ElementKind `db:"element_kind"`
	ElementRef  string            `db:"element_ref"`
	Payload     sql.NullString    `db:"payload"`
	CreatedAt   string            `db:"created_at"`
	UpdatedAt   string            `db:"updated_at"`
}

// Condition parses the stored payload into a condition tree. Malformed or
// null payloads yield the Empty condition, never an error.
func (r VisibilityRule) Condition() types.Condition {
	if !r.Payload.Valid {
		return nil
	}
	return conditions.Parse(r.Payload.String)
}

// Store reads and writes visibility rules through named queries.
type Store struct {
	queries *db.Queries
}

// New creates a Store over loaded queries.
func New(queries *db.Queries) (*Store, error) {
	if queries == nil {
		return nil, fmt.Errorf("queries cannot be nil")
	}
	return &Store{queries: queries}, nil
}

// Save upserts the rule gating one form element, serializing the condition
// to the wire format. The Empty condition is stored as a null payload.
// Returns the rule id (existing on update, fresh UUIDv7 on insert).
func (s *Store) Save(formID types.FormID, kind types.ElementKind, elementRef string, cond types.Condition) (types.RuleID, error) {
	if !types.ValidElementKind(kind) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownElementKind, kind)
	}

	raw, err := conditions.MarshalWire(cond)
	if err != nil {
		return "", fmt.Errorf("failed to serialize condition: %w", err)
	}
	payload := sql.NullString{}
	if string(raw) != "null" {
		payload = sql.NullString{String: string(raw), Valid: true}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var existing VisibilityRule
	err = s.queries.Get("get-element-rule", &existing, formID, kind, elementRef)
	switch {
	case err == nil:
		if _, err := s.queries.Exec("update-rule", payload, now, existing.RuleID); err != nil {
			return "", fmt.Errorf("failed to update rule: %w", err)
		}
		return existing.RuleID, nil
	case errors.Is(err, sql.ErrNoRows):
		ruleID := types.NewRuleID()
		if _, err := s.queries.Exec("insert-rule", ruleID, formID, kind, elementRef, payload, now, now); err != nil {
			return "", fmt.Errorf("failed to insert rule: %w", err)
		}
		return ruleID, nil
	default:
		return "", fmt.Errorf("failed to look up rule: %w", err)
	}
}

// Load returns the condition gating one form element.
// Returns types.ErrRuleNotFound when no rule row exists; a stored but
// malformed payload still loads, as the Empty condition.
func (s *Store) Load(formID types.FormID, kind types.ElementKind, elementRef string) (types.Condition, error) {
	if !types.ValidElementKind(kind) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownElementKind, kind)
	}

	var rule VisibilityRule
	err := s.queries.Get("get-element-rule", &rule, formID, kind, elementRef)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	return rule.Condition(), nil
}

// Get returns one rule row by id.
func (s *Store) Get(ruleID types.RuleID) (VisibilityRule, error) {
	var rule VisibilityRule
	err := s.queries.Get("get-rule", &rule, ruleID)
	if errors.Is(err, sql.ErrNoRows) {
		return VisibilityRule{}, types.ErrRuleNotFound
	}
	if err != nil {
		return VisibilityRule{}, fmt.Errorf("failed to get rule: %w", err)
	}
	return rule, nil
}

// ListForm returns all rule rows for a form in creation order.
func (s *Store) ListForm(formID types.FormID) ([]VisibilityRule, error) {
	var rules []VisibilityRule
	if err := s.queries.Select("list-form-rules", &rules, formID); err != nil {
		return nil, fmt.Errorf("failed to list form rules: %w", err)
	}
	return rules, nil
}

// ListAll returns up to limit rule rows across all forms, for lint scans.
func (s *Store) ListAll(limit int) ([]VisibilityRule, error) {
	var rules []VisibilityRule
	if err := s.queries.Select("list-rules", &rules, limit); err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// Delete removes a rule by id. Deleting an absent rule is not an error;
// the element simply reverts to always visible.
func (s *Store) Delete(ruleID types.RuleID) error {
	if _, err := s.queries.Exec("delete-rule", ruleID); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}
