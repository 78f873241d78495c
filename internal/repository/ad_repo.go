package repository

import (
	"time"

	"github.com/baraholka/baraholka-backend/internal/domain"
	"gorm.io/gorm"
)

// AdRepository ad data access interface
type AdRepository interface {
	Create(ad *domain.Ad) error
	FindByID(id uint64) (*domain.Ad, error)
	Update(ad *domain.Ad) error
	Delete(id uint64) error
	List(params *AdListParams) ([]*domain.Ad, int64, error)
}

// AdListParams ad listing filters
type AdListParams struct {
	Category *domain.AdCategory
	Keyword  string
	PriceMin *float64
	PriceMax *float64
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type adRepository struct {
	db *gorm.DB
}

// NewAdRepository creates a new AdRepository
func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ad *domain.Ad) error {
	return r.db.Create(ad).Error
}

func (r *adRepository) FindByID(id uint64) (*domain.Ad, error) {
	var ad domain.Ad
	err := r.db.Preload("Author").Where("id = ?", id).First(&ad).Error
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *adRepository) Update(ad *domain.Ad) error {
	return r.db.Save(ad).Error
}

func (r *adRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Ad{}, id).Error
}

// List returns a filtered page of ads, newest first, plus the total count
func (r *adRepository) List(params *AdListParams) ([]*domain.Ad, int64, error) {
	query := r.db.Model(&domain.Ad{}).Preload("Author")

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Keyword != "" {
		query = query.Where("title LIKE ?", "%"+params.Keyword+"%")
	}
	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}
	if params.DateFrom != nil {
		query = query.Where("created_at >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		// DateTo is inclusive: extend to the end of the day
		query = query.Where("created_at < ?", params.DateTo.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	var ads []*domain.Ad
	err := query.Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(params.PageSize).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}

	return ads, total, nil
}
