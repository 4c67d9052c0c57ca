package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/archie-app/archie-ai-gateway/internal/auth"
	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

type TokenVerifier interface {
	Verify(credential string) (auth.Identity, error)
}

type ctxKey int

const (
	identityKey ctxKey = iota
	requestIDKey
)

func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, gwerr.Unauthenticated("missing bearer token"))
				return
			}

			identity, err := verifier.Verify(header)
			if err != nil {
				writeError(w, classifyAuthError(err))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// classifyAuthError keeps operator problems (missing secret) on the 5xx
// side so they are never mistaken for bad client credentials.
func classifyAuthError(err error) *gwerr.Error {
	switch {
	case errors.Is(err, auth.ErrNoSecret):
		return gwerr.Internal("authentication configuration error")
	case errors.Is(err, auth.ErrExpired):
		return gwerr.Unauthenticated("token has expired")
	case errors.Is(err, auth.ErrInvalidPayload):
		return gwerr.Unauthenticated("invalid token payload")
	case errors.Is(err, auth.ErrInvalid):
		return gwerr.Unauthenticated("invalid token")
	default:
		return gwerr.Internal("authentication verification failed")
	}
}

func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
