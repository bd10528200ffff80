package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload. The "user" claim carries the identity,
// matching the wire format existing clients already depend on.
type tokenClaims struct {
	jwt.RegisteredClaims
	User string `json:"user"`
}

// TokenService issues and verifies self-contained identity tokens.
// Verification is a pure function of the token string and the signing
// secret; there is no server-side session state and no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService constructs a TokenService. The secret must be non-empty;
// config validates that at startup.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Tests use this to cross expiry
// boundaries without sleeping.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for userID, valid for the configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		User: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Expired tokens yield ErrTokenExpired; anything else wrong with the
// token yields ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.User == "" {
		return "", ErrTokenInvalid
	}
	return claims.User, nil
}
