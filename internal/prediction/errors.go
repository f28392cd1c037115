package prediction

import "fmt"

// ServiceError indicates the prediction call failed or returned an
// unusable payload. It is always recovered locally and never shown to
// the user.
type ServiceError struct {
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prediction service returned %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("prediction service unavailable: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
