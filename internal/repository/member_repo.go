package repository

import (
	"github.com/baraholka/baraholka-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member data access interface
type MemberRepository interface {
	FindByID(id uint64) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
	Create(member *domain.Member) error
	Update(member *domain.Member) error
	ExistsByEmail(email string) (bool, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindByID finds a member by id
func (r *memberRepository) FindByID(id uint64) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail finds a member by exact email. The column uses a
// case-sensitive collation, so matching is byte-exact.
func (r *memberRepository) FindByEmail(email string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Create creates a new member
func (r *memberRepository) Create(member *domain.Member) error {
	return r.db.Create(member).Error
}

// Update persists profile changes
func (r *memberRepository) Update(member *domain.Member) error {
	return r.db.Save(member).Error
}

// ExistsByEmail reports whether a member with the email exists
func (r *memberRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Member{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
