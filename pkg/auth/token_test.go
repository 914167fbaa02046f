package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := NewHMACSigner("test-secret", time.Hour)

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	signer := NewHMACSigner("test-secret", time.Hour)

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = signer.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewHMACSigner("secret-one", time.Hour).Sign("session-abc")
	require.NoError(t, err)

	_, err = NewHMACSigner("secret-two", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := NewHMACSigner("test-secret", -time.Minute)

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := NewHMACSigner("test-secret", time.Hour)

	_, err := signer.Verify("not-a-token")
	assert.Error(t, err)
}
