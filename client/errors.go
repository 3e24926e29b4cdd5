package client

import (
	"net/url"

	"github.com/pkg/errors"
)

// Kind classifies a failed content fetch
type Kind int

const (
	// KindNetwork the request could not complete
	KindNetwork Kind = iota + 1
	// KindHTTP the content api replied with a non success status
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// FetchError a failed content fetch, Message is meant for humans
type FetchError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNetworkFailure reports whether err is a fetch that could not complete
func IsNetworkFailure(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == KindNetwork
}

// IsHTTPFailure reports whether err is a fetch rejected by the content api
func IsHTTPFailure(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == KindHTTP
}

func newNetworkFailure(err error) *FetchError {
	msg := err.Error()
	// strip the method and url prefix added by the http client
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		msg = urlErr.Err.Error()
	}
	return &FetchError{
		Kind:    KindNetwork,
		Message: msg,
		Err:     err,
	}
}

func newHTTPFailure(status int, message string) *FetchError {
	return &FetchError{
		Kind:       KindHTTP,
		StatusCode: status,
		Message:    message,
	}
}
