package service

import (
	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
)

// AccessGuard gates resource access to the members a resource belongs
// to. Every thread-scoped read/write and every ad mutation goes through
// it; callers are already authenticated when the guard runs.
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard
func NewAccessGuard() *AccessGuard {
	return &AccessGuard{}
}

// ParticipantOnly fails unless the member occupies one of the thread's
// two participant slots
func (g *AccessGuard) ParticipantOnly(thread *domain.ChatThread, memberID uint64) error {
	if !thread.HasParticipant(memberID) {
		return common.ErrForbidden
	}
	return nil
}

// OwnerOnly fails unless the member owns the resource
func (g *AccessGuard) OwnerOnly(ownerID, memberID uint64) error {
	if ownerID != memberID {
		return common.ErrForbidden
	}
	return nil
}
