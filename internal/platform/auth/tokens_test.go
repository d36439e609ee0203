package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens(Config{Secret: secret, Issuer: "articles", Audience: "api"})

	raw, err := tokens.Issue("alice", time.Hour)
	require.NoError(t, err)

	sub, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestTokens_Rejects(t *testing.T) {
	tokens := NewTokens(Config{Secret: secret, Issuer: "articles"})

	expired := NewTokens(Config{Secret: secret, Issuer: "articles"})
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredRaw, err := expired.Issue("alice", time.Hour)
	require.NoError(t, err)

	otherKey := NewTokens(Config{Secret: []byte("ffffffffffffffffffffffffffffffff"), Issuer: "articles"})
	forgedRaw, err := otherKey.Issue("alice", time.Hour)
	require.NoError(t, err)

	wrongIssuer := NewTokens(Config{Secret: secret, Issuer: "elsewhere"})
	wrongIssuerRaw, err := wrongIssuer.Issue("alice", time.Hour)
	require.NoError(t, err)

	noneRaw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"expired", expiredRaw},
		{"wrong key", forgedRaw},
		{"wrong issuer", wrongIssuerRaw},
		{"unsigned", noneRaw},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokens_MissingSubject(t *testing.T) {
	tokens := NewTokens(Config{Secret: secret})

	raw, err := tokens.Issue("", time.Hour)
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
