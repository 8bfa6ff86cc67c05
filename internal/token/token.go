package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure modes. They are kept distinct for logging, but the
// HTTP layer collapses all of them into one uniform 401 response.
var (
	ErrMissingCredential   = errors.New("token: missing credential")
	ErrMalformedCredential = errors.New("token: malformed credential")
	ErrExpiredCredential   = errors.New("token: expired credential")
	ErrForgedCredential    = errors.New("token: forged credential")
)

// Identity is the verified subject of a credential.
type Identity struct {
	Email string
}

// Service signs and verifies bearer credentials with a server-held secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token service with the given secret and credential lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs the caller-supplied claim verbatim, adding iat/exp. Issuance is
// unconditional: no check that the claim maps to a registered user.
func (s *Service) Issue(claim map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the identity email.
func (s *Service) Verify(raw string) (Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpiredCredential
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrForgedCredential
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Identity{}, ErrMalformedCredential
		default:
			return Identity{}, ErrForgedCredential
		}
	}
	if !parsed.Valid {
		return Identity{}, ErrForgedCredential
	}

	email, _ := claims["email"].(string)
	return Identity{Email: email}, nil
}
