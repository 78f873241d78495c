package repository

import (
	"testing"
	"time"

	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Member{},
		&domain.Ad{},
		&domain.ChatThread{},
		&domain.Message{},
	))
	return db
}

func seedMembers(t *testing.T, db *gorm.DB) (uint64, uint64) {
	t.Helper()
	alice := &domain.Member{Email: "alice@example.com", Name: "Alice"}
	bob := &domain.Member{Email: "bob@example.com", Name: "Bob"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)
	return alice.ID, bob.ID
}

func newThread(user1, user2, adKey uint64) *domain.ChatThread {
	low, high := domain.NormalizePair(user1, user2)
	t := &domain.ChatThread{
		User1ID:  user1,
		User2ID:  user2,
		PairLow:  low,
		PairHigh: high,
		AdKey:    adKey,
	}
	if adKey != 0 {
		t.AdID = &adKey
	}
	return t
}

func TestThreadRepository_DuplicateCanonicalKeyRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	aliceID, bobID := seedMembers(t, db)

	require.NoError(t, repo.Create(newThread(aliceID, bobID, 0)))

	// Same pair in reverse slot order still collides on the canonical key
	err := repo.Create(newThread(bobID, aliceID, 0))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestThreadRepository_AdKeySeparatesThreads(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	aliceID, bobID := seedMembers(t, db)

	assert.NoError(t, repo.Create(newThread(aliceID, bobID, 0)))
	assert.NoError(t, repo.Create(newThread(aliceID, bobID, 5)))
	assert.NoError(t, repo.Create(newThread(aliceID, bobID, 6)))

	// But a second thread under the same ad collides
	err := repo.Create(newThread(bobID, aliceID, 5))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestThreadRepository_FindByCanonicalKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	aliceID, bobID := seedMembers(t, db)

	created := newThread(aliceID, bobID, 0)
	require.NoError(t, repo.Create(created))

	found, err := repo.FindByCanonicalKey(created.PairLow, created.PairHigh, 0)
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Alice", found.User1.Name)
	assert.Equal(t, "Bob", found.User2.Name)

	missing, err := repo.FindByCanonicalKey(created.PairLow, created.PairHigh, 999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestThreadRepository_FindForMember(t *testing.T) {
	db := newTestDB(t)
	repo := NewThreadRepository(db)
	aliceID, bobID := seedMembers(t, db)
	carol := &domain.Member{Email: "carol@example.com", Name: "Carol"}
	require.NoError(t, db.Create(carol).Error)

	first := newThread(aliceID, bobID, 0)
	require.NoError(t, repo.Create(first))
	second := newThread(carol.ID, aliceID, 0)
	require.NoError(t, repo.Create(second))

	// Carol is in one thread only
	threads, err := repo.FindForMember(carol.ID)
	assert.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, second.ID, threads[0].ID)

	// Alice is in both, newest first (id breaks equal timestamps)
	threads, err = repo.FindForMember(aliceID)
	assert.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, second.ID, threads[0].ID)
	assert.Equal(t, first.ID, threads[1].ID)
}

func TestMessageRepository_OrderAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	threadRepo := NewThreadRepository(db)
	msgRepo := NewMessageRepository(db)
	aliceID, bobID := seedMembers(t, db)

	thread := newThread(aliceID, bobID, 0)
	require.NoError(t, threadRepo.Create(thread))

	now := time.Now()
	for _, text := range []string{"first", "second", "third"} {
		msg := &domain.Message{
			ThreadID:  thread.ID,
			SenderID:  aliceID,
			Text:      text,
			CreatedAt: now,
		}
		require.NoError(t, msgRepo.Create(msg))
	}

	messages, err := msgRepo.FindByThread(thread.ID)
	assert.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)
	assert.False(t, messages[0].IsRead)

	require.NoError(t, msgRepo.MarkRead(messages[0].ID))

	reloaded, err := msgRepo.FindByID(messages[0].ID)
	assert.NoError(t, err)
	assert.True(t, reloaded.IsRead)
	assert.Equal(t, "Alice", reloaded.Sender.Name)
}
