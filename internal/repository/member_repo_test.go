package repository

import (
	"testing"

	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMemberRepository_EmailMatchingIsByteExact(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&domain.Member{Email: "Alice@example.com", Name: "Alice"}))

	found, err := repo.FindByEmail("Alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	// Differently-cased lookups miss
	_, err = repo.FindByEmail("alice@example.com")
	assert.Error(t, err)

	exists, err := repo.ExistsByEmail("ALICE@EXAMPLE.COM")
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail("Alice@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestMemberRepository_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	require.NoError(t, repo.Create(&domain.Member{Email: "alice@example.com", Name: "Alice"}))

	err := repo.Create(&domain.Member{Email: "alice@example.com", Name: "Clone"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// A differently-cased email is a distinct account
	assert.NoError(t, repo.Create(&domain.Member{Email: "Alice@example.com", Name: "Other"}))
}
