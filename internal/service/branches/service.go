package branches

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// Service источник списка филиалов
type Service struct {
	client BranchesClient
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса
// cache может быть nil, тогда каждый вызов идет в бэкенд
func NewService(client BranchesClient, cache Cache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает список филиалов, сначала из кэша
func (s *Service) List(ctx context.Context) ([]domain.Branch, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		s.logger.Info("ListBranches: cache unavailable: %v", err)
	}

	raw, err := s.client.GetBranches(ctx)
	if err != nil {
		s.logger.Error("ListBranches: failed to load branches: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	branches := make([]domain.Branch, 0, len(raw))
	for _, b := range raw {
		branches = append(branches, s.toDomain(b))
	}

	if s.cache != nil && len(branches) > 0 {
		if err := s.cache.Set(ctx, branches); err != nil {
			// Кэш не критичен
			s.logger.Warn("ListBranches: failed to cache branches: %v", err)
		}
	}

	s.logger.Info("ListBranches: loaded %d branches", len(branches))
	return branches, nil
}

func (s *Service) toDomain(b restaurantapi.Branch) domain.Branch {
	return domain.Branch{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		Phone:       b.Phone,
		Email:       b.Email,
		OpenTime:    s.parseHours(b.ID, b.OpenTime),
		CloseTime:   s.parseHours(b.ID, b.CloseTime),
		Description: b.Description,
		ImageURL:    b.ImageURL,
	}
}

// parseHours пустое или некорректное время означает "часы работы неизвестны"
func (s *Service) parseHours(branchID int64, raw string) types.TimeString {
	if raw == "" {
		return ""
	}
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		s.logger.Warn("ListBranches: branch=%d has invalid opening hours %q", branchID, raw)
		return ""
	}
	return t
}
