package types

import (
	"time"

	"github.com/google/uuid"
)

// FormID represents a UUIDv7 form identifier.
// String alias enables type safety while maintaining JSON string serialization.
type FormID string

// RuleID represents a UUIDv7 visibility rule identifier.
// UUIDv7 time-ordering ensures sequential IDs cluster in B-tree indexes.
type RuleID string

// NewFormID generates a UUIDv7 form identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewFormID() FormID {
	return FormID(uuid.Must(uuid.NewV7()).String())
}

// NewRuleID generates a UUIDv7 visibility rule identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRuleID() RuleID {
	return RuleID(uuid.Must(uuid.NewV7()).String())
}

// ParseFormID validates and converts a string to FormID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseFormID(s string) (FormID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return FormID(s), nil
}

// ParseRuleID validates and converts a string to RuleID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseRuleID(s string) (RuleID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return RuleID(s), nil
}

// RuleIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Enables time-based queries without a database lookup.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func RuleIDTime(id RuleID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
