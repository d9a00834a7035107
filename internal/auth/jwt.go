// Package auth validates the bearer tokens edge devices present when they
// open a frame stream.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/clock"
)

var (
	ErrMissingToken = errors.New("auth: missing bearer token")
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrTokenExpired = errors.New("auth: token expired")
)

// Claims are the registered JWT claims; the subject identifies the device or user.
type Claims struct {
	jwt.RegisteredClaims
}

// ExpiredAt reports whether the token is no longer valid at now.
func (c *Claims) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time)
}

// Validator checks HMAC-signed tokens with a shared secret.
type Validator struct {
	secret []byte
	method jwt.SigningMethod
	clock  clock.Clock
}

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch strings.ToUpper(alg) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("auth: unsupported algorithm %q", alg)
}

func NewValidator(secret, alg string, clk clock.Clock) (*Validator, error) {
	if secret == "" {
		return nil, errors.New("auth: empty secret")
	}
	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.WallClock
	}
	return &Validator{secret: []byte(secret), method: method, clock: clk}, nil
}

// Now is the validator's notion of the current time.
func (v *Validator) Now() time.Time {
	return v.clock.Now()
}

// Validate parses token and returns its claims. Expired tokens yield
// ErrTokenExpired; every other failure wraps ErrInvalidToken.
func (v *Validator) Validate(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(
		token,
		&Claims{},
		func(t *jwt.Token) (any, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// Sign issues a token for subject. It exists for the test client and tests;
// production tokens come from the identity service.
func Sign(secret, alg, subject string, issuedAt time.Time, ttl time.Duration) (string, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return "", err
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
