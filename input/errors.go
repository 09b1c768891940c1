package input

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier reports a key or mouse button id outside its domain.
	ErrInvalidIdentifier = errors.New("invalid input identifier")
	// ErrNotInitialized reports use of a State before Init.
	ErrNotInitialized = errors.New("input state not initialized")
)

// ContractError is the panic value raised by queries that are called with
// an invalid id or before Init.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string { return "input: " + e.Op + ": " + e.Err.Error() }

func (e *ContractError) Unwrap() error { return e.Err }

func invalidKey(k Key) error {
	return fmt.Errorf("%w: key %d not in [0, %d)", ErrInvalidIdentifier, int(k), NumKeys)
}

func invalidButton(b MouseButton) error {
	return fmt.Errorf("%w: mouse button %d not in [0, %d)", ErrInvalidIdentifier, int(b), NumMouseButtons)
}
