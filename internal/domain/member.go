package domain

import "time"

// Member domain model (members table)
type Member struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Name      string    `gorm:"column:name;type:varchar(120)" json:"name"`
	AvatarURL string    `gorm:"column:avatar_url;type:varchar(500)" json:"avatar_url,omitempty"`
	Phone     string    `gorm:"column:phone;type:varchar(32)" json:"phone,omitempty"`
	About     string    `gorm:"column:about;type:text" json:"about,omitempty"`
	JoinedAt  time.Time `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse is the member's own view of their account
type MemberResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Phone     string `json:"phone,omitempty"`
	About     string `json:"about,omitempty"`
	JoinedAt  string `json:"date_joined"`
}

// ToResponse converts Member to MemberResponse
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		Phone:     m.Phone,
		About:     m.About,
		JoinedAt:  m.JoinedAt.Format(time.RFC3339),
	}
}

// MemberProfileResponse is the public view of a member (no email)
type MemberProfileResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Phone     string `json:"phone,omitempty"`
	About     string `json:"about,omitempty"`
	JoinedAt  string `json:"date_joined"`
}

// ToProfileResponse converts Member to MemberProfileResponse
func (m *Member) ToProfileResponse() *MemberProfileResponse {
	return &MemberProfileResponse{
		ID:        m.ID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		Phone:     m.Phone,
		About:     m.About,
		JoinedAt:  m.JoinedAt.Format(time.RFC3339),
	}
}

// UpdateMemberRequest represents a profile update request.
// Email and join date are immutable.
type UpdateMemberRequest struct {
	Name      string `json:"name" binding:"required,max=120"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=500"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
	About     string `json:"about"`
}
