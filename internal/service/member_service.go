package service

import (
	"context"
	"encoding/json"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"github.com/baraholka/baraholka-backend/pkg/cache"
)

// MemberService member profile business logic
type MemberService interface {
	GetMe(memberID uint64) (*domain.MemberResponse, error)
	UpdateMe(memberID uint64, req *domain.UpdateMemberRequest) (*domain.MemberResponse, error)
	GetProfile(ctx context.Context, memberID uint64) (*domain.MemberProfileResponse, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	cache      cache.Service
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository, cacheService cache.Service) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		cache:      cacheService,
	}
}

// GetMe returns the caller's own account view
func (s *memberService) GetMe(memberID uint64) (*domain.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}
	return member.ToResponse(), nil
}

// UpdateMe updates the caller's mutable profile fields. Email, password
// and join date are untouched.
func (s *memberService) UpdateMe(memberID uint64, req *domain.UpdateMemberRequest) (*domain.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}

	member.Name = req.Name
	member.AvatarURL = req.AvatarURL
	member.Phone = req.Phone
	member.About = req.About

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateProfile(context.Background(), memberID)
	}

	return member.ToResponse(), nil
}

// GetProfile returns a member's public profile, cached when redis is up
func (s *memberService) GetProfile(ctx context.Context, memberID uint64) (*domain.MemberProfileResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProfile(ctx, memberID); err == nil {
			var profile domain.MemberProfileResponse
			if json.Unmarshal(data, &profile) == nil {
				return &profile, nil
			}
		}
	}

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return nil, common.ErrMemberNotFound
	}

	profile := member.ToProfileResponse()
	if s.cache != nil {
		_ = s.cache.SetProfile(ctx, memberID, profile)
	}

	return profile, nil
}
