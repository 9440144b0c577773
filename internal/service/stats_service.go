package service

import (
	"context"
	"fmt"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/repository"
)

type Stats struct {
	TotalCars      int64 `json:"totalCars"`
	AvailableCars  int64 `json:"availableCars"`
	TotalBookings  int64 `json:"totalBookings"`
	ActiveBookings int64 `json:"activeBookings"`
}

type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

func NewStatsService(cars repository.CarRepository, bookings repository.BookingRepository) StatsService {
	return &statsService{cars: cars, bookings: bookings}
}

// Stats returns four independent counts; there is no snapshot isolation
// across them.
func (s *statsService) Stats(ctx context.Context) (*Stats, error) {
	totalCars, err := s.cars.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cars: %w", err)
	}
	availableCars, err := s.cars.CountByStatus(ctx, models.CarAvailable)
	if err != nil {
		return nil, fmt.Errorf("count available cars: %w", err)
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	activeBookings, err := s.bookings.CountByStatus(ctx, models.BookingActive)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	return &Stats{
		TotalCars:      totalCars,
		AvailableCars:  availableCars,
		TotalBookings:  totalBookings,
		ActiveBookings: activeBookings,
	}, nil
}
