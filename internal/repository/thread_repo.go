package repository

import (
	"github.com/baraholka/baraholka-backend/internal/domain"
	"gorm.io/gorm"
)

// ThreadRepository chat thread data access interface
type ThreadRepository interface {
	Create(thread *domain.ChatThread) error
	FindByID(id uint64) (*domain.ChatThread, error)
	// FindByCanonicalKey looks a thread up by its normalized pair and
	// ad key (0 = no ad). Returns (nil, nil) when absent.
	FindByCanonicalKey(pairLow, pairHigh, adKey uint64) (*domain.ChatThread, error)
	FindForMember(memberID uint64) ([]*domain.ChatThread, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new ThreadRepository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

// Create inserts a thread. A duplicate canonical key surfaces as
// gorm.ErrDuplicatedKey so the caller can re-fetch the winner.
func (r *threadRepository) Create(thread *domain.ChatThread) error {
	return r.db.Create(thread).Error
}

// FindByID finds a thread with both participants loaded
func (r *threadRepository) FindByID(id uint64) (*domain.ChatThread, error) {
	var thread domain.ChatThread
	err := r.db.Preload("User1").Preload("User2").Where("id = ?", id).First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// FindByCanonicalKey finds the unique thread for (pair, ad)
func (r *threadRepository) FindByCanonicalKey(pairLow, pairHigh, adKey uint64) (*domain.ChatThread, error) {
	var thread domain.ChatThread
	err := r.db.Preload("User1").Preload("User2").
		Where("pair_low = ? AND pair_high = ? AND ad_key = ?", pairLow, pairHigh, adKey).
		First(&thread).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &thread, nil
}

// FindForMember returns every thread where the member occupies either
// slot, newest first (id breaks creation-time ties)
func (r *threadRepository) FindForMember(memberID uint64) ([]*domain.ChatThread, error) {
	var threads []*domain.ChatThread
	err := r.db.Preload("User1").Preload("User2").
		Where("user1_id = ? OR user2_id = ?", memberID, memberID).
		Order("created_at DESC, id DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}
