package user

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "casefile/internal/domain/user/valueobjects"
)

type stubHasher struct {
	hashErr   error
	verifyErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *stubHasher) Verify(password, hash string) error {
	if h.verifyErr != nil {
		return h.verifyErr
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func mustEmail(t *testing.T, value string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"))
	require.NoError(t, err)

	assert.Zero(t, u.ID())
	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.False(t, u.ProfileCompleted())
	assert.Empty(t, u.PasswordHash())

	_, err = NewUser(nil)
	assert.Error(t, err)
}

func TestUser_SetPassword(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"))
	require.NoError(t, err)

	password, err := vo.NewPassword("s3cret")
	require.NoError(t, err)

	require.NoError(t, u.SetPassword(password, &stubHasher{}))
	assert.Equal(t, "hashed:s3cret", u.PasswordHash())

	assert.Error(t, u.SetPassword(nil, &stubHasher{}))
	assert.Error(t, u.SetPassword(password, nil))

	hashErr := fmt.Errorf("bcrypt failure")
	err = u.SetPassword(password, &stubHasher{hashErr: hashErr})
	assert.ErrorIs(t, err, hashErr)
}

func TestUser_VerifyPassword(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"))
	require.NoError(t, err)

	assert.Error(t, u.VerifyPassword("anything", &stubHasher{}), "no hash set yet")

	password, err := vo.NewPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(password, &stubHasher{}))

	assert.NoError(t, u.VerifyPassword("s3cret", &stubHasher{}))
	assert.Error(t, u.VerifyPassword("wrong", &stubHasher{}))
}

func TestUser_CompleteProfile(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, u.CompleteProfile("Alice A."))
	assert.Equal(t, "Alice A.", u.DisplayName())
	assert.True(t, u.ProfileCompleted())

	assert.Error(t, u.CompleteProfile(""))
	assert.Error(t, u.CompleteProfile(strings.Repeat("x", 101)))
	assert.Equal(t, "Alice A.", u.DisplayName(), "failed update leaves profile untouched")
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser(mustEmail(t, "alice@example.com"))
	require.NoError(t, err)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(42))
	assert.Equal(t, uint(42), u.ID())
	assert.Error(t, u.SetID(43))
}

func TestReconstructUser(t *testing.T) {
	now := time.Now().UTC()
	email := mustEmail(t, "alice@example.com")

	u, err := ReconstructUser(1, email, "hashed:pw", "Alice", true, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID())
	assert.True(t, u.ProfileCompleted())

	_, err = ReconstructUser(0, email, "hashed:pw", "", false, now, now)
	assert.Error(t, err)

	_, err = ReconstructUser(1, nil, "hashed:pw", "", false, now, now)
	assert.Error(t, err)

	_, err = ReconstructUser(1, email, "", "", false, now, now)
	assert.Error(t, err)
}
