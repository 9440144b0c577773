package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/repository"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/pkg/rabbitmq"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrMissingBookingFields = errors.New("customer name and car are required")
	ErrInvalidRentPeriod    = errors.New("rentTo must not be before rentFrom")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// BookingUpdate is a partial patch; nil fields keep their current value.
type BookingUpdate struct {
	CustomerName *string
	CarID        *uint
	RentFrom     *time.Time
	RentTo       *time.Time
	Status       *models.BookingStatus
}

type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, id uint, patch BookingUpdate) (*models.Booking, error)
	Delete(ctx context.Context, id uint) error
}

type bookingService struct {
	bookings  repository.BookingRepository
	cars      repository.CarRepository
	publisher *rabbitmq.Publisher
}

func NewBookingService(bookings repository.BookingRepository, cars repository.CarRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{bookings: bookings, cars: cars, publisher: publisher}
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.FindAll(ctx)
}

// Create persists the booking first and then brings the referenced car's
// status in line, both inside one transaction with the car row locked.
func (s *bookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.CustomerName == "" || booking.CarID == 0 {
		return nil, ErrMissingBookingFields
	}
	if booking.RentTo.Before(booking.RentFrom) {
		return nil, ErrInvalidRentPeriod
	}

	booking.Status = models.BookingActive
	booking.Reference = uuid.NewString()

	err := s.bookings.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cars.FindByIDForUpdate(ctx, tx, booking.CarID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return fmt.Errorf("lock car: %w", err)
		}

		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return s.syncCarStatus(ctx, tx, booking.CarID)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return s.Get(ctx, booking.ID)
}

func (s *bookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) Update(ctx context.Context, id uint, patch BookingUpdate) (*models.Booking, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidBookingStatus
	}

	err := s.bookings.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookings.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}

		oldCarID := booking.CarID

		if patch.CustomerName != nil {
			booking.CustomerName = *patch.CustomerName
		}
		if patch.CarID != nil && *patch.CarID != booking.CarID {
			if _, err := s.cars.FindByIDForUpdate(ctx, tx, *patch.CarID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCarNotFound
				}
				return fmt.Errorf("lock car: %w", err)
			}
			booking.CarID = *patch.CarID
		}
		if patch.RentFrom != nil {
			booking.RentFrom = *patch.RentFrom
		}
		if patch.RentTo != nil {
			booking.RentTo = *patch.RentTo
		}
		if patch.Status != nil {
			booking.Status = *patch.Status
		}

		if booking.CustomerName == "" {
			return ErrMissingBookingFields
		}
		if booking.RentTo.Before(booking.RentFrom) {
			return ErrInvalidRentPeriod
		}

		booking.Car = nil
		if err := s.bookings.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("save booking: %w", err)
		}

		// Re-derive status for every car this booking touched, so edits to
		// `status` keep the fleet consistent the same way delete does.
		if err := s.syncCarStatus(ctx, tx, booking.CarID); err != nil {
			return err
		}
		if oldCarID != booking.CarID {
			return s.syncCarStatus(ctx, tx, oldCarID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", booking)
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	var carID uint

	err := s.bookings.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookings.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}
		carID = booking.CarID

		if err := s.bookings.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return s.syncCarStatus(ctx, tx, carID)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.deleted", map[string]uint{"id": id, "carId": carID})
	}
	return nil
}

// syncCarStatus recomputes the denormalized car status from the bookings that
// reference it: rented while at least one active booking remains, otherwise
// available. All booking mutations funnel through this single routine.
func (s *bookingService) syncCarStatus(ctx context.Context, tx *gorm.DB, carID uint) error {
	active, err := s.bookings.CountActiveByCar(ctx, tx, carID)
	if err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}

	status := models.CarAvailable
	if active > 0 {
		status = models.CarRented
	}
	if err := s.cars.UpdateStatus(ctx, tx, carID, status); err != nil {
		return fmt.Errorf("update car status: %w", err)
	}
	return nil
}
