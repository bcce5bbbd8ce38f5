package auth

import (
	"testing"

	"github.com/Fire-Devils/filaman-system/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_EncodeDecode_RoundTrip(t *testing.T) {
	svc := NewTokenService()

	testCases := []struct {
		name   string
		scheme service.Scheme
	}{
		{"session", service.SchemeSession},
		{"api key", service.SchemeAPIKey},
		{"device", service.SchemeDevice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token := svc.Encode(tc.scheme, 42, "some-secret")

			cred, ok := svc.Decode(token)
			require.True(t, ok)
			assert.Equal(t, tc.scheme, cred.Scheme)
			assert.Equal(t, int64(42), cred.EntityID)
			assert.Equal(t, "some-secret", cred.Secret)
		})
	}
}

func TestTokenService_Encode_Format(t *testing.T) {
	svc := NewTokenService()

	assert.Equal(t, "sess.7.abc", svc.Encode(service.SchemeSession, 7, "abc"))
	assert.Equal(t, "uak.123.key-secret", svc.Encode(service.SchemeAPIKey, 123, "key-secret"))
	assert.Equal(t, "dev.9.tok", svc.Encode(service.SchemeDevice, 9, "tok"))
}

func TestTokenService_Decode_SecretContainingDots(t *testing.T) {
	svc := NewTokenService()

	// Only the first two delimiters split; the secret keeps its dots.
	cred, ok := svc.Decode("sess.1.part.with.dots")
	require.True(t, ok)
	assert.Equal(t, "part.with.dots", cred.Secret)
}

func TestTokenService_Decode_Malformed(t *testing.T) {
	svc := NewTokenService()

	testCases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"no delimiters", "sess42secret"},
		{"one delimiter", "sess.42secret"},
		{"unknown scheme", "jwt.42.secret"},
		{"uppercase scheme", "SESS.42.secret"},
		{"non-integer entity id", "sess.abc.secret"},
		{"empty entity id", "sess..secret"},
		{"empty secret", "sess.42."},
		{"empty scheme", ".42.secret"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := svc.Decode(tc.token)
			assert.False(t, ok)
		})
	}
}

func TestTokenService_GenerateSecret(t *testing.T) {
	svc := NewTokenService()

	first, err := svc.GenerateSecret()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := svc.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// URL-safe, so it survives cookies and headers unescaped.
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}
