//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/repository"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/service"
)

func newServices() (service.CarService, service.BookingService, service.StatsService) {
	carRepo := repository.NewCarRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	return service.NewCarService(carRepo, bookingRepo),
		service.NewBookingService(bookingRepo, carRepo, nil), // nil publisher = no RabbitMQ
		service.NewStatsService(carRepo, bookingRepo)
}

func createTestCar(t *testing.T, carSvc service.CarService, brand, model, reg string) *models.Car {
	t.Helper()
	car := &models.Car{Brand: brand, Model: model, RegistrationNo: reg, PricePerDay: 20}
	require.NoError(t, carSvc.Create(context.Background(), car))
	return car
}

func createTestBooking(t *testing.T, bookingSvc service.BookingService, carID uint) *models.Booking {
	t.Helper()
	booking, err := bookingSvc.Create(context.Background(), &models.Booking{
		CustomerName: "Bob",
		CarID:        carID,
		RentFrom:     time.Now(),
		RentTo:       time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	return booking
}

func carStatus(t *testing.T, carSvc service.CarService, id uint) models.CarStatus {
	t.Helper()
	car, err := carSvc.Get(context.Background(), id)
	require.NoError(t, err)
	return car.Status
}

func TestBookingCreate_FlipsCarToRented(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()
	ctx := context.Background()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")
	assert.Equal(t, models.CarAvailable, car.Status)

	booking := createTestBooking(t, bookingSvc, car.ID)
	assert.Equal(t, models.BookingActive, booking.Status)
	assert.NotEmpty(t, booking.Reference)
	require.NotNil(t, booking.Car)
	assert.Equal(t, models.CarRented, booking.Car.Status)

	assert.Equal(t, models.CarRented, carStatus(t, carSvc, car.ID))

	// deleting the only active booking frees the car again
	require.NoError(t, bookingSvc.Delete(ctx, booking.ID))
	assert.Equal(t, models.CarAvailable, carStatus(t, carSvc, car.ID))
}

func TestBookingDelete_KeepsCarRentedWhileOtherActiveBookingsRemain(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()
	ctx := context.Background()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")
	first := createTestBooking(t, bookingSvc, car.ID)
	second := createTestBooking(t, bookingSvc, car.ID)

	require.NoError(t, bookingSvc.Delete(ctx, first.ID))
	assert.Equal(t, models.CarRented, carStatus(t, carSvc, car.ID))

	require.NoError(t, bookingSvc.Delete(ctx, second.ID))
	assert.Equal(t, models.CarAvailable, carStatus(t, carSvc, car.ID))
}

func TestBookingStatusUpdate_ReleasesCar(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()
	ctx := context.Background()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")
	booking := createTestBooking(t, bookingSvc, car.ID)

	completed := models.BookingCompleted
	updated, err := bookingSvc.Update(ctx, booking.ID, service.BookingUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	// status edits go through the same car-status sync as delete
	assert.Equal(t, models.CarAvailable, carStatus(t, carSvc, car.ID))

	active := models.BookingActive
	_, err = bookingSvc.Update(ctx, booking.ID, service.BookingUpdate{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, models.CarRented, carStatus(t, carSvc, car.ID))
}

func TestBookingUpdate_MoveToAnotherCar(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()
	ctx := context.Background()

	carA := createTestCar(t, carSvc, "Toyota", "Corolla", "A1")
	carB := createTestCar(t, carSvc, "Honda", "Civic", "B1")
	booking := createTestBooking(t, bookingSvc, carA.ID)

	updated, err := bookingSvc.Update(ctx, booking.ID, service.BookingUpdate{CarID: &carB.ID})
	require.NoError(t, err)
	assert.Equal(t, carB.ID, updated.CarID)

	assert.Equal(t, models.CarAvailable, carStatus(t, carSvc, carA.ID))
	assert.Equal(t, models.CarRented, carStatus(t, carSvc, carB.ID))
}

func TestBookingCreate_RejectsInvertedRentPeriod(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")

	_, err := bookingSvc.Create(context.Background(), &models.Booking{
		CustomerName: "Bob",
		CarID:        car.ID,
		RentFrom:     time.Now().Add(72 * time.Hour),
		RentTo:       time.Now(),
	})
	assert.ErrorIs(t, err, service.ErrInvalidRentPeriod)
}

func TestCarDelete_BlockedByActiveBooking(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, _ := newServices()
	ctx := context.Background()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")
	booking := createTestBooking(t, bookingSvc, car.ID)

	err := carSvc.Delete(ctx, car.ID)
	assert.ErrorIs(t, err, service.ErrCarHasActiveBookings)

	// car and booking unchanged
	assert.Equal(t, models.CarRented, carStatus(t, carSvc, car.ID))
	got, err := bookingSvc.Get(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingActive, got.Status)

	// once the booking is gone, the delete goes through
	require.NoError(t, bookingSvc.Delete(ctx, booking.ID))
	require.NoError(t, carSvc.Delete(ctx, car.ID))

	_, err = carSvc.Get(ctx, car.ID)
	assert.ErrorIs(t, err, service.ErrCarNotFound)
}

func TestCarCreate_DuplicateRegistration(t *testing.T) {
	cleanTables()
	carSvc, _, _ := newServices()

	createTestCar(t, carSvc, "Toyota", "Corolla", "X1")

	err := carSvc.Create(context.Background(), &models.Car{
		Brand: "Honda", Model: "Civic", RegistrationNo: "X1", PricePerDay: 30,
	})
	assert.ErrorIs(t, err, service.ErrRegistrationTaken)
}

func TestCarList_OrderedByBrandThenModel(t *testing.T) {
	cleanTables()
	carSvc, _, _ := newServices()
	ctx := context.Background()

	createTestCar(t, carSvc, "Toyota", "Corolla", "T1")
	createTestCar(t, carSvc, "Honda", "Civic", "H1")
	createTestCar(t, carSvc, "Honda", "Accord", "H2")

	cars, err := carSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 3)
	assert.Equal(t, "Accord", cars[0].Model)
	assert.Equal(t, "Civic", cars[1].Model)
	assert.Equal(t, "Toyota", cars[2].Brand)
}

func TestStats_CountsMatchLedger(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, statsSvc := newServices()
	ctx := context.Background()

	// 3 cars, 2 rented via bookings; 3 bookings total, 2 active
	var cars []*models.Car
	for i := 0; i < 3; i++ {
		cars = append(cars, createTestCar(t, carSvc, "Brand", fmt.Sprintf("M%d", i), fmt.Sprintf("R%d", i)))
	}
	createTestBooking(t, bookingSvc, cars[0].ID)
	createTestBooking(t, bookingSvc, cars[1].ID)
	third := createTestBooking(t, bookingSvc, cars[1].ID)

	cancelled := models.BookingCancelled
	_, err := bookingSvc.Update(ctx, third.ID, service.BookingUpdate{Status: &cancelled})
	require.NoError(t, err)

	stats, err := statsSvc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCars)
	assert.Equal(t, int64(1), stats.AvailableCars)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.ActiveBookings)
}

// Concurrent booking creates against one car must leave the denormalized
// status consistent: the car ends up rented, every booking persists.
func TestConcurrentBookingCreates_SameCar(t *testing.T) {
	cleanTables()
	carSvc, bookingSvc, statsSvc := newServices()
	ctx := context.Background()

	car := createTestCar(t, carSvc, "Toyota", "Corolla", "X1")

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = bookingSvc.Create(ctx, &models.Booking{
				CustomerName: fmt.Sprintf("customer-%d", i),
				CarID:        car.ID,
				RentFrom:     time.Now(),
				RentTo:       time.Now().Add(24 * time.Hour),
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "booking %d", i)
	}

	assert.Equal(t, models.CarRented, carStatus(t, carSvc, car.ID))

	stats, err := statsSvc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.ActiveBookings)
}
