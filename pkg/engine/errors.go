package engine

import "fmt"

// ValidationError rejects caller-supplied input before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown trigger or history entry id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StorageError wraps a failed store read or write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransportError reports a message that could not be delivered. It is
// recorded in history as a failed attempt, never propagated past dispatch.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("transport failed: %s", e.Reason)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
