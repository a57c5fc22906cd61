package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/domain"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/repository"
)

var ErrInvalidRequest = errors.New("invalid request")

type MenuServiceInterface interface {
	Add(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, menuID int) (domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, menuID int) error
	Categories(ctx context.Context) ([]string, error)
	LowStocks(ctx context.Context) ([]domain.MenuItem, error)
	AdjustStock(ctx context.Context, menuID, delta int) error
}

type MenuService struct {
	repo repository.MenuRepositoryInterface
}

func NewMenuService(repo repository.MenuRepositoryInterface) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Add(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return domain.MenuItem{}, err
	}
	id, err := s.repo.Add(ctx, item)
	if err != nil {
		return domain.MenuItem{}, err
	}
	item.MenuID = id
	return item, nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *MenuService) Get(ctx context.Context, menuID int) (domain.MenuItem, error) {
	if menuID <= 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: invalid menu id", ErrInvalidRequest)
	}
	return s.repo.Get(ctx, menuID)
}

func (s *MenuService) Update(ctx context.Context, item domain.MenuItem) error {
	if item.MenuID <= 0 {
		return fmt.Errorf("%w: invalid menu id", ErrInvalidRequest)
	}
	if err := validateItem(item); err != nil {
		return err
	}
	return s.repo.Update(ctx, item)
}

func (s *MenuService) Delete(ctx context.Context, menuID int) error {
	if menuID <= 0 {
		return fmt.Errorf("%w: invalid menu id", ErrInvalidRequest)
	}
	return s.repo.Delete(ctx, menuID)
}

func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *MenuService) LowStocks(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.LowStocks(ctx)
}

func (s *MenuService) AdjustStock(ctx context.Context, menuID, delta int) error {
	if menuID <= 0 {
		return fmt.Errorf("%w: invalid menu id", ErrInvalidRequest)
	}
	if delta == 0 {
		return fmt.Errorf("%w: stock delta must not be zero", ErrInvalidRequest)
	}
	return s.repo.AdjustStock(ctx, menuID, delta)
}

func validateItem(item domain.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidRequest)
	}
	if item.Stocks < 0 {
		return fmt.Errorf("%w: stocks must not be negative", ErrInvalidRequest)
	}
	return nil
}
