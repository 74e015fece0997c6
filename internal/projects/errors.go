package projects

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indicates the repository API could not be reached.
	ErrNetwork = errors.New("repository api unreachable")

	// ErrHTTPStatus indicates the API answered with a non-2xx status.
	ErrHTTPStatus = errors.New("repository api returned an error status")

	// ErrEmptyResult indicates no repository survived filtering.
	ErrEmptyResult = errors.New("no repositories")

	// ErrMalformedResponse indicates a 2xx body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed repository response")
)

// SyncError is the failure of one sync run. Kind is one of the sentinel
// errors above and is matched by errors.Is.
type SyncError struct {
	Kind       error
	StatusCode int
	Err        error
}

func (e *SyncError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("sync: %v: status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("sync: %v: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("sync: %v", e.Kind)
	}
}

func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindName returns a short label for logs.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrHTTPStatus):
		return "http_status"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}
