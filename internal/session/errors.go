package session

import "fmt"

// ErrPersistence indicates a session write or read against the store
// failed. The failed operation is named so callers can surface it.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("session %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }

// ErrNoActiveSession indicates the user has no pending or in-progress
// session to observe.
type ErrNoActiveSession struct {
	UserID string
}

func (e *ErrNoActiveSession) Error() string {
	return fmt.Sprintf("no active session for user %s", e.UserID)
}

// ErrPrecondition indicates a required input for the flow was missing,
// such as the user's identity or stored profile.
type ErrPrecondition struct {
	Missing string
	Err     error
}

func (e *ErrPrecondition) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing %s: %v", e.Missing, e.Err)
	}
	return fmt.Sprintf("missing %s", e.Missing)
}

func (e *ErrPrecondition) Unwrap() error { return e.Err }

// ErrNotActive indicates an operation required an active session but
// the record had already reached a terminal status.
type ErrNotActive struct {
	SessionID string
	Status    string
}

func (e *ErrNotActive) Error() string {
	return fmt.Sprintf("session %s is %s, not active", e.SessionID, e.Status)
}
