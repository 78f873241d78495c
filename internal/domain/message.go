package domain

import "time"

// Message is one entry in a thread's log. Text, sender and timestamp are
// immutable after append; only the read flag may change.
type Message struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ThreadID  uint64    `gorm:"column:thread_id;index" json:"thread_id"`
	SenderID  uint64    `gorm:"column:sender_id" json:"sender_id"`
	Text      string    `gorm:"column:text;type:text" json:"text"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Sender *Member `gorm:"foreignKey:SenderID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents an append request
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID        uint64                 `json:"id"`
	ThreadID  uint64                 `json:"thread"`
	Sender    *MemberProfileResponse `json:"sender"`
	Text      string                 `json:"text"`
	CreatedAt time.Time              `json:"created_at"`
	IsRead    bool                   `json:"is_read"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	resp := &MessageResponse{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		IsRead:    m.IsRead,
	}
	if m.Sender != nil {
		resp.Sender = m.Sender.ToProfileResponse()
	}
	return resp
}
