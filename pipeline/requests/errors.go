package requests

import (
	"context"
	"errors"
	"fmt"
	"net"
	"soloq/pkg/messages"
)

// SourceError is any failure of the external source: unreachable API,
// a non 2xx status or a body that can't be parsed.
// It's always propagated to the caller, never retried here.
type SourceError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(messages.RequestFailedMsg+": %v", e.URL, e.Err)
	}
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// TimeoutError is surfaced separately from SourceError so callers can
// decide to retry with their own backoff.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

func (e *TimeoutError) Timeout() bool {
	return true
}

// wrapRequestError classifies a transport failure.
func wrapRequestError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: url, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{URL: url, Err: err}
	}

	return &SourceError{URL: url, Err: err}
}
