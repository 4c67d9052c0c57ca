package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
)

// expectedAudience is the audience claim stamped on every token issued
// for this backend (the Supabase default for signed-in users).
const expectedAudience = "authenticated"

var (
	// ErrNoSecret means the verifier itself is misconfigured. This is an
	// operator problem, not a caller problem, and must never surface as 401.
	ErrNoSecret = errors.New("jwt secret not configured")

	ErrExpired        = errors.New("token has expired")
	ErrInvalid        = errors.New("invalid token")
	ErrInvalidPayload = errors.New("invalid token payload")
)

// Identity is the caller extracted from a verified credential.
// Subject is always non-empty on success.
type Identity struct {
	Subject string
	Email   string
}

// Verifier checks bearer credentials against a pre-shared HS256 secret.
// Stateless: every request re-verifies, nothing is cached.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify validates signature, expiry and audience, then extracts the
// caller identity. The optional "Bearer " prefix is stripped first.
func (v *Verifier) Verify(credential string) (Identity, error) {
	if len(v.secret) == 0 {
		return Identity{}, ErrNoSecret
	}

	raw := strings.TrimPrefix(credential, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			if vErr.Errors&jwt.ValidationErrorExpired != 0 {
				return Identity{}, ErrExpired
			}
			return Identity{}, ErrInvalid
		}
		return Identity{}, fmt.Errorf("verify token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalid
	}
	if !claims.VerifyAudience(expectedAudience, true) {
		return Identity{}, ErrInvalid
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return Identity{}, ErrInvalidPayload
	}
	email, _ := claims["email"].(string)

	return Identity{Subject: subject, Email: email}, nil
}
