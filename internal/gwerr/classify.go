package gwerr

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxEchoedBody = 200

// FromProviderStatus maps a non-2xx provider HTTP status to the gateway
// taxonomy. The numeric status always wins over anything the response
// body says. Provider auth failures (401/403) surface as 503 with a
// fixed message: the body may contain key details and is never echoed.
func FromProviderStatus(status int, body string) *Error {
	switch status {
	case 401, 403:
		return Unavailable("provider authentication failed, please contact support")
	case 429:
		return RateLimited("rate limit exceeded, please try again later")
	case 400:
		msg := "provider rejected the request"
		if s := sanitizeBody(body); s != "" {
			msg += ": " + s
		}
		return Invalid(msg)
	default:
		return Internal("provider request failed")
	}
}

// FromTransport maps a failed provider round trip (no HTTP status
// available) to the gateway taxonomy.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout("request to provider timed out, please try again")
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Timeout("request to provider timed out, please try again")
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return Unavailable("unable to reach provider, please try again later")
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return Unavailable("unable to reach provider, please try again later")
	}
	return Internal("provider request failed")
}

// FromProviderMessage is the substring fallback for SDK errors that
// expose no status code. Used only when FromProviderStatus and
// FromTransport do not apply.
func FromProviderMessage(msg string) *Error {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "quota"), strings.Contains(m, "rate"), strings.Contains(m, "limit"):
		return RateLimited("rate limit exceeded, please try again later")
	case strings.Contains(m, "unauthorized"), strings.Contains(m, "api key"):
		return Unavailable("provider authentication failed, please contact support")
	default:
		return Internal("provider request failed")
	}
}

func sanitizeBody(body string) string {
	s := strings.TrimSpace(body)
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > maxEchoedBody {
		// Back off to a rune boundary so the cut never yields invalid UTF-8.
		cut := maxEchoedBody
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}
