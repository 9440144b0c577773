package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/repository"
)

var (
	ErrCarNotFound          = errors.New("car not found")
	ErrMissingCarFields     = errors.New("brand, model and registration number are required")
	ErrInvalidPrice         = errors.New("price per day must not be negative")
	ErrRegistrationTaken    = errors.New("registration number already exists")
	ErrCarHasActiveBookings = errors.New("car has active bookings and cannot be deleted")
)

// CarUpdate is a partial patch; nil fields keep their current value.
type CarUpdate struct {
	Brand          *string
	Model          *string
	RegistrationNo *string
	PricePerDay    *float64
	Status         *models.CarStatus
}

type CarService interface {
	List(ctx context.Context) ([]models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	Get(ctx context.Context, id uint) (*models.Car, error)
	Update(ctx context.Context, id uint, patch CarUpdate) (*models.Car, error)
	Delete(ctx context.Context, id uint) error
}

type carService struct {
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

func NewCarService(cars repository.CarRepository, bookings repository.BookingRepository) CarService {
	return &carService{cars: cars, bookings: bookings}
}

func (s *carService) List(ctx context.Context) ([]models.Car, error) {
	return s.cars.FindAll(ctx)
}

func (s *carService) Create(ctx context.Context, car *models.Car) error {
	if car.Brand == "" || car.Model == "" || car.RegistrationNo == "" {
		return ErrMissingCarFields
	}
	if car.PricePerDay < 0 {
		return ErrInvalidPrice
	}

	if err := s.checkRegistrationFree(ctx, car.RegistrationNo, 0); err != nil {
		return err
	}

	car.Status = models.CarAvailable
	if err := s.cars.Create(ctx, car); err != nil {
		return fmt.Errorf("create car: %w", err)
	}
	return nil
}

func (s *carService) Get(ctx context.Context, id uint) (*models.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	return car, nil
}

func (s *carService) Update(ctx context.Context, id uint, patch CarUpdate) (*models.Car, error) {
	car, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Brand != nil {
		car.Brand = *patch.Brand
	}
	if patch.Model != nil {
		car.Model = *patch.Model
	}
	if patch.RegistrationNo != nil && *patch.RegistrationNo != car.RegistrationNo {
		if err := s.checkRegistrationFree(ctx, *patch.RegistrationNo, car.ID); err != nil {
			return nil, err
		}
		car.RegistrationNo = *patch.RegistrationNo
	}
	if patch.PricePerDay != nil {
		if *patch.PricePerDay < 0 {
			return nil, ErrInvalidPrice
		}
		car.PricePerDay = *patch.PricePerDay
	}
	if patch.Status != nil {
		car.Status = *patch.Status
	}

	if car.Brand == "" || car.Model == "" || car.RegistrationNo == "" {
		return nil, ErrMissingCarFields
	}

	if err := s.cars.Save(ctx, car); err != nil {
		return nil, fmt.Errorf("save car: %w", err)
	}
	return car, nil
}

// Delete removes a car unless an active booking still references it. The
// active-count check and the delete run in one transaction with the car row
// locked, so a concurrent booking create against the same car cannot slip in
// between them.
func (s *carService) Delete(ctx context.Context, id uint) error {
	return s.cars.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cars.FindByIDForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return fmt.Errorf("lock car: %w", err)
		}

		active, err := s.bookings.CountActiveByCar(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count active bookings: %w", err)
		}
		if active > 0 {
			return ErrCarHasActiveBookings
		}

		if err := s.cars.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete car: %w", err)
		}
		return nil
	})
}

func (s *carService) checkRegistrationFree(ctx context.Context, registrationNo string, selfID uint) error {
	existing, err := s.cars.FindByRegistration(ctx, registrationNo)
	if err == nil {
		if existing.ID != selfID {
			return ErrRegistrationTaken
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup registration: %w", err)
	}
	return nil
}
