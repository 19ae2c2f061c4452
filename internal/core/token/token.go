// Package token signs and verifies the stateless bearer tokens used for
// authentication. A single process-wide symmetric secret signs every token;
// rotating the secret invalidates everything outstanding.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid covers a bad signature, wrong algorithm, or garbage input.
	ErrInvalid = errors.New("invalid token")
	// ErrExpired means the signature checked out but the token is past expiry.
	ErrExpired = errors.New("expired token")
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// Claims is the closed set of identity facts embedded in a token.
// Keeping this an explicit struct (rather than an open map) prevents extra
// fields from accidentally leaking into signed tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a fixed secret.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewService builds a token Service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// SignOption overrides a default at signing time.
type SignOption func(*signOptions)

type signOptions struct {
	expiresIn *time.Duration
	subject   *string
	issuer    *string
}

// WithExpiry overrides the default token lifetime. A zero or negative value
// produces an already-expired token.
func WithExpiry(d time.Duration) SignOption {
	return func(o *signOptions) { o.expiresIn = &d }
}

// WithSubject overrides the subject claim.
func WithSubject(sub string) SignOption {
	return func(o *signOptions) { o.subject = &sub }
}

// WithIssuer overrides the issuer claim.
func WithIssuer(iss string) SignOption {
	return func(o *signOptions) { o.issuer = &iss }
}

// Sign issues a token carrying the subject id, email, and role.
func (s *Service) Sign(subject, email, role string, opts ...SignOption) (string, error) {
	var o signOptions
	for _, opt := range opts {
		opt(&o)
	}

	ttl := s.ttl
	if o.expiresIn != nil {
		ttl = *o.expiresIn
	}
	iss := s.issuer
	if o.issuer != nil {
		iss = *o.issuer
	}
	if o.subject != nil {
		subject = *o.subject
	}

	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Expiry and
// signature failures are distinguishable so callers can log them differently
// while still answering the client uniformly.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
