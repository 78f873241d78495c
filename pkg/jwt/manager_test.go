package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 15)

	token, err := mgr.Generate(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), claims.MemberID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", -1)

	token, err := mgr.Generate(42)
	assert.NoError(t, err)

	claims, err := mgr.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestVerify_WrongSecret(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 15)
	other := NewManager("a-completely-different-secret-key!!!", 15)

	token, err := mgr.Generate(42)
	assert.NoError(t, err)

	claims, err := other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestVerify_Malformed(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 15)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := mgr.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

func TestVerify_MissingMemberID(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing-only-32b!", 15)

	token, err := mgr.Generate(0)
	assert.NoError(t, err)

	claims, err := mgr.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
