// pkg/token/jwt_test.go
package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", 30*time.Minute)

	signed, err := manager.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := manager.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 30*time.Minute)
	verifier := NewManager("secret-b", 30*time.Minute)

	signed, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	signed, err := manager.Issue(42)
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 30*time.Minute)

	_, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}
