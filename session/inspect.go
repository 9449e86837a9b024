package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether token is a JWT whose exp claim lies at or
// before now. Tokens that are not JWTs, or carry no exp claim, are treated as
// opaque and report false — only the backend can judge those.
//
// The claims are decoded without signature verification; nothing read here is
// trusted for authorization, it only lets the client skip an identity fetch
// that is guaranteed to fail.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
