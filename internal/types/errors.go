package types

import "errors"

// Sentinel errors for showwhen operations.
//
// The condition engine itself never returns errors (malformed input degrades
// to the Empty condition); these cover the storage layer and the lint
// tooling, which do want to surface problems instead of hiding them.
var (
	// ErrRuleNotFound indicates no visibility rule exists for the requested id.
	ErrRuleNotFound = errors.New("visibility rule not found")

	// ErrUnknownElementKind indicates an element kind outside stage/section/field/transition.
	ErrUnknownElementKind = errors.New("unknown form element kind")

	// ErrUnknownOperator indicates an operator spelling absent from the operator table.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrValueArity indicates a condition value that does not match its operator's arity.
	ErrValueArity = errors.New("value does not match operator arity")

	// ErrEmptyCondition indicates a stored payload that parsed to the Empty condition.
	ErrEmptyCondition = errors.New("condition is empty")
)
