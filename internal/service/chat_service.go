package service

import (
	"errors"
	"strings"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"gorm.io/gorm"
)

// ChatService thread and message business logic
type ChatService interface {
	ListThreads(memberID uint64) ([]*domain.ThreadResponse, error)
	GetOrCreateThread(initiatorID, recipientID uint64, adID *uint64) (*domain.ThreadResponse, error)
	ListMessages(threadID, callerID uint64) ([]*domain.MessageResponse, error)
	SendMessage(threadID, senderID uint64, text string) (*domain.MessageResponse, error)
	MarkRead(messageID, readerID uint64) error
}

type chatService struct {
	threadRepo  repository.ThreadRepository
	messageRepo repository.MessageRepository
	memberRepo  repository.MemberRepository
	adRepo      repository.AdRepository
	guard       *AccessGuard
}

// NewChatService creates a new ChatService
func NewChatService(
	threadRepo repository.ThreadRepository,
	messageRepo repository.MessageRepository,
	memberRepo repository.MemberRepository,
	adRepo repository.AdRepository,
	guard *AccessGuard,
) ChatService {
	return &chatService{
		threadRepo:  threadRepo,
		messageRepo: messageRepo,
		memberRepo:  memberRepo,
		adRepo:      adRepo,
		guard:       guard,
	}
}

// ListThreads returns the caller's threads, newest-created first
func (s *chatService) ListThreads(memberID uint64) ([]*domain.ThreadResponse, error) {
	threads, err := s.threadRepo.FindForMember(memberID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ThreadResponse, len(threads))
	for i, t := range threads {
		responses[i] = t.ToResponse()
	}
	return responses, nil
}

// GetOrCreateThread finds or lazily creates the unique conversation for
// (unordered member pair, ad-or-none). Repeated calls with the same pair
// and ad, in either argument order, always land on the same thread.
func (s *chatService) GetOrCreateThread(initiatorID, recipientID uint64, adID *uint64) (*domain.ThreadResponse, error) {
	if recipientID == initiatorID {
		return nil, common.ErrSelfThread
	}

	recipient, err := s.memberRepo.FindByID(recipientID)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}

	var adKey uint64
	if adID != nil {
		if _, err := s.adRepo.FindByID(*adID); err != nil {
			return nil, common.ErrAdNotFound
		}
		adKey = *adID
	}

	pairLow, pairHigh := domain.NormalizePair(initiatorID, recipientID)

	existing, err := s.threadRepo.FindByCanonicalKey(pairLow, pairHigh, adKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing.ToResponse(), nil
	}

	thread := &domain.ChatThread{
		User1ID:  initiatorID,
		User2ID:  recipientID,
		AdID:     adID,
		PairLow:  pairLow,
		PairHigh: pairHigh,
		AdKey:    adKey,
	}

	if err := s.threadRepo.Create(thread); err != nil {
		// A concurrent call created the thread between our lookup and
		// insert; the unique index guarantees a single winner, so take it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := s.threadRepo.FindByCanonicalKey(pairLow, pairHigh, adKey)
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				return winner.ToResponse(), nil
			}
		}
		return nil, err
	}

	// Re-read to load both participant profiles
	created, err := s.threadRepo.FindByID(thread.ID)
	if err != nil {
		// Answer from the records we already have instead of returning a
		// thread with empty participants.
		thread.User2 = recipient
		if initiator, findErr := s.memberRepo.FindByID(initiatorID); findErr == nil {
			thread.User1 = initiator
		}
		return thread.ToResponse(), nil
	}
	return created.ToResponse(), nil
}

// ListMessages returns one thread's full log in append order; only the
// two participants may read it
func (s *chatService) ListMessages(threadID, callerID uint64) ([]*domain.MessageResponse, error) {
	thread, err := s.threadRepo.FindByID(threadID)
	if err != nil {
		return nil, common.ErrThreadNotFound
	}

	if err := s.guard.ParticipantOnly(thread, callerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByThread(threadID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// SendMessage appends a message to the thread; only by a participant,
// never blank. Timestamp and id are server-assigned.
func (s *chatService) SendMessage(threadID, senderID uint64, text string) (*domain.MessageResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyMessage
	}

	thread, err := s.threadRepo.FindByID(threadID)
	if err != nil {
		return nil, common.ErrThreadNotFound
	}

	if err := s.guard.ParticipantOnly(thread, senderID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ThreadID: threadID,
		SenderID: senderID,
		Text:     text,
	}

	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	// The thread already carries both profiles; pick the sender's
	if thread.User1 != nil && thread.User1ID == senderID {
		msg.Sender = thread.User1
	} else if thread.User2 != nil && thread.User2ID == senderID {
		msg.Sender = thread.User2
	}

	return msg.ToResponse(), nil
}

// MarkRead flags a message as read. Only the recipient participant may
// do so; the sender marking their own message is rejected.
func (s *chatService) MarkRead(messageID, readerID uint64) error {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return common.ErrMessageNotFound
	}

	thread, err := s.threadRepo.FindByID(msg.ThreadID)
	if err != nil {
		return common.ErrThreadNotFound
	}

	if err := s.guard.ParticipantOnly(thread, readerID); err != nil {
		return err
	}

	if msg.SenderID == readerID {
		return common.ErrOwnMessageRead
	}

	if msg.IsRead {
		return nil
	}

	return s.messageRepo.MarkRead(messageID)
}
