package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "anna"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired jwt", signedToken(t, now.Add(-time.Minute)), true},
		{"valid jwt", signedToken(t, now.Add(time.Hour)), false},
		{"jwt without exp", signedToken(t, time.Time{}), false},
		{"opaque token", "not-a-jwt", false},
		{"empty token", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TokenExpired(tc.token, now); got != tc.want {
				t.Fatalf("TokenExpired = %v, want %v", got, tc.want)
			}
		})
	}
}
