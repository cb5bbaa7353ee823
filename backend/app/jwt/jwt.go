package jwtutil

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"inkwell/backend/app/errs"
)

// Signer issues and validates the stateless session tokens. The secret is
// injected at construction and lives for the whole process; there is no
// rotation and no server-side session table.
type Signer struct {
	Secret   []byte
	Issuer   string
	ExpHours int
}

// Sign issues a token whose subject is the username. Identity and roles are
// resolved from the credential store on every request, so a token never
// carries authorization state of its own.
func (s *Signer) Sign(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.ExpHours) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies signature and expiry and returns the subject username.
// Expiry and signature failures are distinct errors so callers can log which
// one fired, even though both surface to clients as a single 401.
func (s *Signer) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.ErrTokenExpired
		}
		return "", errs.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errs.ErrTokenInvalid
	}
	return claims.Subject, nil
}
