package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/repository"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoData         = errors.New("no sales data available")
)

// Business hours considered for the peak-hours graph.
const (
	peakHourStart = 10
	peakHourEnd   = 21
)

const topSellerLimit = 3

var validDays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// PeakHoursResult maps every business hour to an order count, zero-filled so
// the graph always has a full axis.
type PeakHoursResult struct {
	Day       string      `json:"day"`
	OrderData map[int]int `json:"order_data"`
}

type AnalyticsServiceInterface interface {
	PeakHours(ctx context.Context, day string) (PeakHoursResult, error)
	TopBestSellers(ctx context.Context) ([]repository.BestSeller, error)
	ProductDemand(ctx context.Context, startDate, endDate string) ([]repository.ProductDemand, error)
}

type AnalyticsService struct {
	repo repository.AnalyticsRepositoryInterface
}

func NewAnalyticsService(repo repository.AnalyticsRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) PeakHours(ctx context.Context, day string) (PeakHoursResult, error) {
	if day == "" {
		return PeakHoursResult{}, fmt.Errorf("%w: day parameter is required", ErrInvalidRequest)
	}
	if !validDays[day] {
		return PeakHoursResult{}, fmt.Errorf("%w: invalid day parameter", ErrInvalidRequest)
	}

	counts, err := s.repo.PeakHours(ctx, day)
	if err != nil {
		return PeakHoursResult{}, err
	}

	data := make(map[int]int, peakHourEnd-peakHourStart+1)
	for hour := peakHourStart; hour <= peakHourEnd; hour++ {
		data[hour] = counts[hour]
	}
	return PeakHoursResult{Day: day, OrderData: data}, nil
}

func (s *AnalyticsService) TopBestSellers(ctx context.Context) ([]repository.BestSeller, error) {
	return s.repo.TopBestSellers(ctx, topSellerLimit)
}

func (s *AnalyticsService) ProductDemand(ctx context.Context, startDate, endDate string) ([]repository.ProductDemand, error) {
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("%w: start date and end date are required", ErrInvalidRequest)
	}
	demand, err := s.repo.ProductDemand(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(demand) == 0 {
		return nil, ErrNoData
	}
	return demand, nil
}
