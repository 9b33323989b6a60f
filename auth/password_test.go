// auth/password_test.go
package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgechev/gonotes/auth"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hashed, err := hasher.Hash("test.user.password")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "test.user.password", hashed)

	assert.True(t, hasher.Compare(hashed, "test.user.password"))
	assert.False(t, hasher.Compare(hashed, "wrong-password"))
	assert.False(t, hasher.Compare("not-a-hash", "test.user.password"))
}
