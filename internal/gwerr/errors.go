package gwerr

import "net/http"

// Kind is the caller-visible error category. It is the only error
// vocabulary that crosses the gateway boundary; provider-specific
// errors are mapped into it and never leak raw.
type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"
	KindUnauthenticated Kind = "unauthenticated"
	KindRateLimited     Kind = "rate_limited"
	KindTimeout         Kind = "timeout"
	KindUnavailable     Kind = "service_unavailable"
	KindInternal        Kind = "internal_error"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Status: http.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: msg}
}

func RateLimited(msg string) *Error {
	return &Error{Kind: KindRateLimited, Status: http.StatusTooManyRequests, Message: msg}
}

func Timeout(msg string) *Error {
	return &Error{Kind: KindTimeout, Status: http.StatusRequestTimeout, Message: msg}
}

func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Status: http.StatusServiceUnavailable, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msg}
}
