package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BestSeller aggregates sales_data rows per product.
type BestSeller struct {
	ProductName  string  `json:"product_name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ProductDemand struct {
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

type AnalyticsRepositoryInterface interface {
	PeakHours(ctx context.Context, day string) (map[int]int, error)
	TopBestSellers(ctx context.Context, limit int) ([]BestSeller, error)
	ProductDemand(ctx context.Context, startDate, endDate string) ([]ProductDemand, error)
}

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// PeakHours counts orders per hour of day for one weekday, restricted to
// business hours (10:00-21:00).
func (r *AnalyticsRepository) PeakHours(ctx context.Context, day string) (map[int]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT EXTRACT(HOUR FROM time)::int AS hour_of_day,
		       COUNT(*)::int AS order_count
		FROM orders
		WHERE TRIM(TO_CHAR(date, 'Day')) = $1
		  AND EXTRACT(HOUR FROM time) BETWEEN 10 AND 21
		GROUP BY hour_of_day
		ORDER BY hour_of_day`, day)
	if err != nil {
		return nil, fmt.Errorf("query peak hours: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, fmt.Errorf("scan peak hour: %w", err)
		}
		out[hour] = count
	}
	return out, rows.Err()
}

func (r *AnalyticsRepository) TopBestSellers(ctx context.Context, limit int) ([]BestSeller, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_name,
		       SUM(quantity_sold)::int AS total_sold,
		       SUM(amount) AS total_revenue
		FROM sales_data
		GROUP BY product_name
		ORDER BY total_sold DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query best sellers: %w", err)
	}
	defer rows.Close()

	out := []BestSeller{}
	for rows.Next() {
		var b BestSeller
		if err := rows.Scan(&b.ProductName, &b.TotalSold, &b.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan best seller: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepository) ProductDemand(ctx context.Context, startDate, endDate string) ([]ProductDemand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_name,
		       SUM(quantity_sold)::int AS total_quantity_sold
		FROM sales_data
		WHERE date::date BETWEEN $1 AND $2
		GROUP BY product_name
		ORDER BY total_quantity_sold DESC`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("query product demand: %w", err)
	}
	defer rows.Close()

	out := []ProductDemand{}
	for rows.Next() {
		var p ProductDemand
		if err := rows.Scan(&p.ProductName, &p.QuantitySold); err != nil {
			return nil, fmt.Errorf("scan product demand: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
