package repository

import (
	"github.com/baraholka/baraholka-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByID(id uint64) (*domain.Message, error)
	// FindByThread returns the full ordered log of one thread
	FindByThread(threadID uint64) ([]*domain.Message, error)
	MarkRead(id uint64) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a message to its thread's log
func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// FindByID finds a message by id with the sender loaded
func (r *messageRepository) FindByID(id uint64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Preload("Sender").Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByThread returns messages in creation order; id breaks timestamp
// ties at storage resolution, so the order matches append order
func (r *messageRepository) FindByThread(threadID uint64) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Preload("Sender").
		Where("thread_id = ?", threadID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead sets the read flag
func (r *messageRepository) MarkRead(id uint64) error {
	return r.db.Model(&domain.Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
