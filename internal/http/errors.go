package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// errNoLength is reported when a HEAD response carries no
// Content-Length header.
var errNoLength = errors.New("no Content-Length header")

// ErrorKind classifies a fetch failure.
type ErrorKind int

const (
	// KindNetwork covers connection, DNS and transport failures, and
	// local filesystem errors while writing the download.
	KindNetwork ErrorKind = iota

	// KindHTTPStatus means the server answered with a non-2xx status.
	KindHTTPStatus

	// KindTimeout means the request exceeded the client timeout.
	KindTimeout

	// KindCanceled means the request was canceled by the caller.
	KindCanceled
)

// String returns a short name for the kind, used in summaries.
func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http status"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return "network"
	}
}

// FetchError is the failure of one download attempt.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	URL        string
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("%s: HTTP %d for %s", e.Kind, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the fetch could plausibly succeed.
// Status errors and cancellations are final.
func (e *FetchError) Temporary() bool {
	return e.Kind == KindNetwork || e.Kind == KindTimeout
}

// classify wraps err as a FetchError for url, inspecting the context
// state and the error chain to pick the kind.
func classify(ctx context.Context, url string, err error) *FetchError {
	kind := KindNetwork

	switch {
	case errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled:
		kind = KindCanceled
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded):
		kind = KindTimeout
	default:
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			kind = KindTimeout
		}
	}

	return &FetchError{Kind: kind, URL: url, Err: err}
}
