package domain

import "time"

// ChatThread is a conversation between exactly two members, optionally
// tied to one ad. The pair slots carry no meaning beyond who started the
// thread; uniqueness is enforced on the normalized pair plus the ad key.
type ChatThread struct {
	ID      uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	User1ID uint64  `gorm:"column:user1_id;index" json:"user1_id"`
	User2ID uint64  `gorm:"column:user2_id;index" json:"user2_id"`
	AdID    *uint64 `gorm:"column:ad_id" json:"ad_id,omitempty"`

	// Canonical key columns: pair ordered low/high, ad key 0 when the
	// thread is not tied to an ad. The composite unique index closes
	// the create race between two identical getOrCreate calls.
	PairLow  uint64 `gorm:"column:pair_low;uniqueIndex:uniq_thread_pair_ad" json:"-"`
	PairHigh uint64 `gorm:"column:pair_high;uniqueIndex:uniq_thread_pair_ad" json:"-"`
	AdKey    uint64 `gorm:"column:ad_key;uniqueIndex:uniq_thread_pair_ad" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User1 *Member `gorm:"foreignKey:User1ID" json:"-"`
	User2 *Member `gorm:"foreignKey:User2ID" json:"-"`
}

func (ChatThread) TableName() string {
	return "chat_threads"
}

// HasParticipant reports whether the member occupies either slot
func (t *ChatThread) HasParticipant(memberID uint64) bool {
	return t.User1ID == memberID || t.User2ID == memberID
}

// NormalizePair returns the canonical (low, high) ordering of a member pair
func NormalizePair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// CreateThreadRequest represents a get-or-create thread request
type CreateThreadRequest struct {
	RecipientID uint64  `json:"recipient_id" binding:"required"`
	AdID        *uint64 `json:"ad_id"`
}

// ThreadResponse represents a thread in API responses
type ThreadResponse struct {
	ID        uint64                 `json:"id"`
	User1     *MemberProfileResponse `json:"user1"`
	User2     *MemberProfileResponse `json:"user2"`
	AdID      *uint64                `json:"ad,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ToResponse converts ChatThread to ThreadResponse
func (t *ChatThread) ToResponse() *ThreadResponse {
	resp := &ThreadResponse{
		ID:        t.ID,
		AdID:      t.AdID,
		CreatedAt: t.CreatedAt,
	}
	if t.User1 != nil {
		resp.User1 = t.User1.ToProfileResponse()
	}
	if t.User2 != nil {
		resp.User2 = t.User2.ToProfileResponse()
	}
	return resp
}
