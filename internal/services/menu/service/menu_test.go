package service

import (
	"context"
	"errors"
	"testing"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/domain"
)

type fakeMenuRepo struct {
	nextID int
	added  domain.MenuItem

	adjustedID    int
	adjustedDelta int
}

func (f *fakeMenuRepo) Add(_ context.Context, item domain.MenuItem) (int, error) {
	f.added = item
	return f.nextID, nil
}

func (f *fakeMenuRepo) List(context.Context) ([]domain.MenuItem, error)      { return nil, nil }
func (f *fakeMenuRepo) Get(context.Context, int) (domain.MenuItem, error)    { return domain.MenuItem{}, nil }
func (f *fakeMenuRepo) Update(context.Context, domain.MenuItem) error        { return nil }
func (f *fakeMenuRepo) Delete(context.Context, int) error                    { return nil }
func (f *fakeMenuRepo) Categories(context.Context) ([]string, error)         { return nil, nil }
func (f *fakeMenuRepo) LowStocks(context.Context) ([]domain.MenuItem, error) { return nil, nil }

func (f *fakeMenuRepo) AdjustStock(_ context.Context, menuID, delta int) error {
	f.adjustedID, f.adjustedDelta = menuID, delta
	return nil
}

func validItem() domain.MenuItem {
	return domain.MenuItem{
		Name:         "Crispy Pata",
		Description:  "Deep fried pork knuckle",
		Category:     "Pork",
		Price:        495,
		Stocks:       30,
		MainCategory: "Mains",
	}
}

func TestAddMenuItem(t *testing.T) {
	repo := &fakeMenuRepo{nextID: 12}
	svc := NewMenuService(repo)

	item, err := svc.Add(context.Background(), validItem())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.MenuID != 12 {
		t.Errorf("menu id = %d, want 12", item.MenuID)
	}
	if repo.added.Name != "Crispy Pata" {
		t.Errorf("persisted item = %+v", repo.added)
	}
}

func TestAddMenuItemValidation(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{})

	cases := []struct {
		name   string
		mutate func(*domain.MenuItem)
	}{
		{"missing name", func(i *domain.MenuItem) { i.Name = "" }},
		{"negative price", func(i *domain.MenuItem) { i.Price = -1 }},
		{"negative stocks", func(i *domain.MenuItem) { i.Stocks = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := validItem()
			tc.mutate(&item)
			if _, err := svc.Add(context.Background(), item); !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("err = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestUpdateRequiresID(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{})
	if err := svc.Update(context.Background(), validItem()); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestAdjustStock(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := NewMenuService(repo)
	ctx := context.Background()

	if err := svc.AdjustStock(ctx, 12, -3); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if repo.adjustedID != 12 || repo.adjustedDelta != -3 {
		t.Errorf("adjust called with id %d delta %d", repo.adjustedID, repo.adjustedDelta)
	}

	if err := svc.AdjustStock(ctx, 12, 0); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("zero delta err = %v, want ErrInvalidRequest", err)
	}
	if err := svc.AdjustStock(ctx, 0, 1); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("bad id err = %v, want ErrInvalidRequest", err)
	}
}
