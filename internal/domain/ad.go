package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AdCategory listing category
type AdCategory string

const (
	CategoryAuto   AdCategory = "auto"
	CategoryRealty AdCategory = "realty"
)

// AdCondition item condition
type AdCondition string

const (
	ConditionNew  AdCondition = "new"
	ConditionUsed AdCondition = "used"
)

// Ad classified listing (ads table)
type Ad struct {
	ID          uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID    uint64      `gorm:"column:author_id;index" json:"author_id"`
	Title       string      `gorm:"column:title;type:varchar(200)" json:"title"`
	Description string      `gorm:"column:description;type:text" json:"description"`
	Price       float64     `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Category    AdCategory  `gorm:"column:category;type:varchar(20);index" json:"category"`
	Phone       string      `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Condition   AdCondition `gorm:"column:condition;type:varchar(10)" json:"condition"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author *Member `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Ad) TableName() string {
	return "ads"
}

// AdRequest represents an ad create/update request
type AdRequest struct {
	Title       string      `json:"title" binding:"required,max=200"`
	Description string      `json:"description" binding:"required"`
	Price       float64     `json:"price" binding:"gte=0"`
	Category    AdCategory  `json:"category" binding:"required,adcategory"`
	Phone       string      `json:"phone" binding:"required,max=32"`
	Condition   AdCondition `json:"condition" binding:"required,adcondition"`
}

// AdResponse represents an ad in API responses
type AdResponse struct {
	ID          uint64                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Category    AdCategory             `json:"category"`
	Phone       string                 `json:"phone"`
	Condition   AdCondition            `json:"condition"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Author      *MemberProfileResponse `json:"author,omitempty"`
}

// ToResponse converts Ad to AdResponse
func (a *Ad) ToResponse() *AdResponse {
	resp := &AdResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
		Category:    a.Category,
		Phone:       a.Phone,
		Condition:   a.Condition,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Author != nil {
		resp.Author = a.Author.ToProfileResponse()
	}
	return resp
}

// ValidAdCategory is a validator.v10 rule for the category field
func ValidAdCategory(fl validator.FieldLevel) bool {
	switch AdCategory(fl.Field().String()) {
	case CategoryAuto, CategoryRealty:
		return true
	}
	return false
}

// ValidAdCondition is a validator.v10 rule for the condition field
func ValidAdCondition(fl validator.FieldLevel) bool {
	switch AdCondition(fl.Field().String()) {
	case ConditionNew, ConditionUsed:
		return true
	}
	return false
}
