package connector

import "fmt"

// ErrKind classifies lifecycle failures so callers can branch on the failure
// class instead of parsing diagnostic prefixes.
type ErrKind int

const (
	// KindStructural marks contract violations such as a missing required
	// build-time field. These indicate a malformed call, not a remote
	// failure.
	KindStructural ErrKind = iota
	// KindFetch marks a failure to retrieve the current connector state
	// before an update. The operation fails before any merge or submit.
	KindFetch
	// KindSubmit marks a rejection of the create/update/delete request by
	// the control plane (validation, auth, not-found, conflict) or a
	// transport failure while submitting it.
	KindSubmit
)

// OpError is the single error type returned by lifecycle operations. Its
// text follows the stable diagnostic vocabulary
// "Error <op> <subject> connector: <cause>" that automated callers key on.
type OpError struct {
	Kind ErrKind
	// Op is the present participle of the failed step: "creating",
	// "updating", "deleting" or "retrieving".
	Op string
	// Subject names the connector in the diagnostic, e.g. "S3 source" for
	// submit failures or just "source" for fetch failures.
	Subject string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("Error %s %s connector: %v", e.Op, e.Subject, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
