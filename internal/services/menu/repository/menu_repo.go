package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/domain"
)

// ErrNotFound is returned for lookups/updates of a menu item that does not
// exist.
var ErrNotFound = errors.New("menu item not found")

// lowStockThreshold matches the storefront's restock warning level.
const lowStockThreshold = 21

type MenuRepositoryInterface interface {
	Add(ctx context.Context, item domain.MenuItem) (int, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, menuID int) (domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, menuID int) error
	Categories(ctx context.Context) ([]string, error)
	LowStocks(ctx context.Context) ([]domain.MenuItem, error)
	AdjustStock(ctx context.Context, menuID, delta int) error
}

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

const menuColumns = `menu_id, name, description, category, price, items, COALESCE(img, ''), stocks, main_category`

func (r *MenuRepository) Add(ctx context.Context, item domain.MenuItem) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (name, description, category, price, items, img, stocks, main_category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING menu_id`,
		item.Name, item.Description, item.Category, item.Price,
		item.Items, item.Img, item.Stocks, item.MainCategory,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}
	return id, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY menu_id`)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *MenuRepository) Get(ctx context.Context, menuID int) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx,
		`SELECT `+menuColumns+` FROM menu_items WHERE menu_id = $1`, menuID,
	).Scan(&item.MenuID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.Items, &item.Img, &item.Stocks, &item.MainCategory)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("query menu item: %w", err)
	}
	return item, nil
}

func (r *MenuRepository) Update(ctx context.Context, item domain.MenuItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, category = $3, price = $4,
		    items = $5, img = $6, stocks = $7, main_category = $8
		WHERE menu_id = $9`,
		item.Name, item.Description, item.Category, item.Price,
		item.Items, item.Img, item.Stocks, item.MainCategory, item.MenuID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, menuID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE menu_id = $1`, menuID)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MenuRepository) LowStocks(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+menuColumns+` FROM menu_items WHERE stocks < $1 ORDER BY stocks`, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("query low stocks: %w", err)
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// AdjustStock applies a signed delta to the stock counter; negative deltas
// consume stock, positive ones restock.
func (r *MenuRepository) AdjustStock(ctx context.Context, menuID, delta int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE menu_items SET stocks = stocks + $1 WHERE menu_id = $2`, delta, menuID)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMenuItems(rows pgx.Rows) ([]domain.MenuItem, error) {
	out := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.MenuID, &item.Name, &item.Description, &item.Category,
			&item.Price, &item.Items, &item.Img, &item.Stocks, &item.MainCategory); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
