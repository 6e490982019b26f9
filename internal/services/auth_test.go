package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), adminID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signer := NewAuthService(nil, "secret-one")
	verifier := NewAuthService(nil, "secret-two")

	token, err := signer.GenerateToken(1)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
