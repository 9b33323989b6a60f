// token/token_test.go
package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tgechev/gonotes/errors"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/token"
)

const testSecret = "unit-test-signing-secret"

func testUser() model.UserDTO {
	return model.UserDTO{
		ID:       "b4b47f84-df4a-4a78-9124-53150ce88af9",
		FullName: "Test User",
		Username: "test.user",
		Email:    "test.user@example.com",
		Role:     model.RoleUser,
	}
}

func TestNewService_RejectsEmptySecret(t *testing.T) {
	_, err := token.NewService("", 8*time.Hour)
	assert.Error(t, err)
}

func TestNewService_RejectsNonPositiveTTL(t *testing.T) {
	_, err := token.NewService(testSecret, 0)
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := token.NewService(testSecret, 8*time.Hour)
	require.NoError(t, err)

	user := testUser()
	signed, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Username, identity.Username)
	assert.Equal(t, user.Role, identity.Role)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), identity.ExpiresAt, time.Minute)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc, err := token.NewService(testSecret, time.Millisecond)
	require.NoError(t, err)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)
	verifier, err := token.NewService("a-different-secret", time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	tampered := []byte(signed)
	tampered[len(tampered)/2] ^= 0x01

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
