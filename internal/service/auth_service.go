package service

import (
	"errors"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"github.com/baraholka/baraholka-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,max=120"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse login response
type LoginResponse struct {
	Token  string                 `json:"token"`
	Member *domain.MemberResponse `json:"member"`
}

// AuthService authentication business logic
type AuthService interface {
	Register(req *RegisterRequest) (*domain.MemberResponse, error)
	Login(email, password string) (*LoginResponse, error)
}

type authService struct {
	memberRepo repository.MemberRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(memberRepo repository.MemberRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		memberRepo: memberRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new member account. Only the bcrypt hash of the
// password is ever stored.
func (s *authService) Register(req *RegisterRequest) (*domain.MemberResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	exists, err := s.memberRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
	}

	if err := s.memberRepo.Create(member); err != nil {
		// A concurrent registration took the email between the existence
		// check and the insert; the unique index reports it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	return member.ToResponse(), nil
}

// Login authenticates a member and issues a session token. Unknown
// email and wrong password return the same error so callers cannot
// probe which accounts exist.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	member, err := s.memberRepo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(member.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:  token,
		Member: member.ToResponse(),
	}, nil
}
