package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/baraholka/baraholka-backend/internal/common"
	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"github.com/baraholka/baraholka-backend/pkg/cache"
)

// AdListResult one page of ads plus pagination info
type AdListResult struct {
	Ads   []*domain.AdResponse
	Total int64
}

// AdService ad listing business logic
type AdService interface {
	List(ctx context.Context, params *repository.AdListParams) (*AdListResult, error)
	Get(ctx context.Context, id uint64) (*domain.AdResponse, error)
	Create(authorID uint64, req *domain.AdRequest) (*domain.AdResponse, error)
	Update(id, callerID uint64, req *domain.AdRequest) (*domain.AdResponse, error)
	Delete(id, callerID uint64) error
}

type adService struct {
	adRepo repository.AdRepository
	guard  *AccessGuard
	cache  cache.Service
}

// NewAdService creates a new AdService
func NewAdService(adRepo repository.AdRepository, guard *AccessGuard, cacheService cache.Service) AdService {
	return &adService{
		adRepo: adRepo,
		guard:  guard,
		cache:  cacheService,
	}
}

// List returns a filtered page of ads, newest first. Pages are cached
// briefly keyed by the full filter set.
func (s *adService) List(ctx context.Context, params *repository.AdListParams) (*AdListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	filterKey := listFilterKey(params)
	if s.cache != nil {
		if data, err := s.cache.GetAdList(ctx, filterKey); err == nil {
			var result AdListResult
			if json.Unmarshal(data, &result) == nil {
				return &result, nil
			}
		}
	}

	ads, total, err := s.adRepo.List(params)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.AdResponse, len(ads))
	for i, ad := range ads {
		responses[i] = ad.ToResponse()
	}

	result := &AdListResult{Ads: responses, Total: total}
	if s.cache != nil {
		_ = s.cache.SetAdList(ctx, filterKey, result)
	}

	return result, nil
}

// Get returns one ad with its author
func (s *adService) Get(ctx context.Context, id uint64) (*domain.AdResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetAd(ctx, id); err == nil {
			var resp domain.AdResponse
			if json.Unmarshal(data, &resp) == nil {
				return &resp, nil
			}
		}
	}

	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrAdNotFound
	}

	resp := ad.ToResponse()
	if s.cache != nil {
		_ = s.cache.SetAd(ctx, id, resp)
	}

	return resp, nil
}

// Create publishes a new ad owned by the caller
func (s *adService) Create(authorID uint64, req *domain.AdRequest) (*domain.AdResponse, error) {
	ad := &domain.Ad{
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Phone:       req.Phone,
		Condition:   req.Condition,
	}

	if err := s.adRepo.Create(ad); err != nil {
		return nil, err
	}

	s.invalidateLists(ad.ID)

	// Re-read to load the author relation
	created, err := s.adRepo.FindByID(ad.ID)
	if err != nil {
		return ad.ToResponse(), nil
	}
	return created.ToResponse(), nil
}

// Update modifies an ad; only the owner may do so
func (s *adService) Update(id, callerID uint64, req *domain.AdRequest) (*domain.AdResponse, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrAdNotFound
	}

	if err := s.guard.OwnerOnly(ad.AuthorID, callerID); err != nil {
		return nil, err
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.Price = req.Price
	ad.Category = req.Category
	ad.Phone = req.Phone
	ad.Condition = req.Condition

	if err := s.adRepo.Update(ad); err != nil {
		return nil, err
	}

	s.invalidateLists(id)

	return ad.ToResponse(), nil
}

// Delete removes an ad; only the owner may do so
func (s *adService) Delete(id, callerID uint64) error {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		return common.ErrAdNotFound
	}

	if err := s.guard.OwnerOnly(ad.AuthorID, callerID); err != nil {
		return err
	}

	if err := s.adRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateLists(id)
	return nil
}

func (s *adService) invalidateLists(adID uint64) {
	if s.cache == nil {
		return
	}
	ctx := context.Background()
	_ = s.cache.InvalidateAdLists(ctx)
	_ = s.cache.InvalidateAd(ctx, adID)
}

// listFilterKey serializes the filter set into a stable cache key
func listFilterKey(p *repository.AdListParams) string {
	cat := ""
	if p.Category != nil {
		cat = string(*p.Category)
	}
	min, max := "", ""
	if p.PriceMin != nil {
		min = fmt.Sprintf("%.2f", *p.PriceMin)
	}
	if p.PriceMax != nil {
		max = fmt.Sprintf("%.2f", *p.PriceMax)
	}
	from, to := "", ""
	if p.DateFrom != nil {
		from = p.DateFrom.Format("2006-01-02")
	}
	if p.DateTo != nil {
		to = p.DateTo.Format("2006-01-02")
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%d:%d", cat, p.Keyword, min, max, from, to, p.Page, p.PageSize)
}
