package uns

import (
	"fmt"
	"net/http"
)

// APIError describes a rejection returned by the control plane. Callers can
// inspect StatusCode to differentiate not-found, auth and validation
// failures.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("control plane returned status %d: %s", e.StatusCode, detail)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
