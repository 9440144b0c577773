package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/dto"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/service"
)

// --- Mock BookingService ---

type mockBookingService struct {
	listFn   func(ctx context.Context) ([]models.Booking, error)
	createFn func(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	getFn    func(ctx context.Context, id uint) (*models.Booking, error)
	updateFn func(ctx context.Context, id uint, patch service.BookingUpdate) (*models.Booking, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return m.listFn(ctx)
}
func (m *mockBookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	return m.createFn(ctx, booking)
}
func (m *mockBookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) Update(ctx context.Context, id uint, patch service.BookingUpdate) (*models.Booking, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockBookingService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:           1,
		Reference:    "b3b0f2f4-0000-0000-0000-000000000001",
		CustomerName: "Bob",
		CarID:        2,
		RentFrom:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		RentTo:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:       models.BookingActive,
		Car:          &models.Car{ID: 2, Brand: "Toyota", Model: "Corolla", RegistrationNo: "X1", Status: models.CarRented},
	}
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			return sampleBooking(), nil
		},
	}

	body := `{"customerName":"Bob","car":2,"rentFrom":"2026-09-01T00:00:00Z","rentTo":"2026-09-05T00:00:00Z"}`
	c, rec := jsonContext(t, http.MethodPost, "/api/bookings", body)
	err := NewBookingHandler(svc).CreateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.BookingActive, resp.Status)
	assert.Equal(t, uint(2), resp.CarID)
	require.NotNil(t, resp.Car)
	assert.Equal(t, models.CarRented, resp.Car.Status)
}

func TestCreateBooking_Handler_UnknownCar(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			return nil, service.ErrCarNotFound
		},
	}

	body := `{"customerName":"Bob","car":999,"rentFrom":"2026-09-01T00:00:00Z","rentTo":"2026-09-05T00:00:00Z"}`
	c, _ := jsonContext(t, http.MethodPost, "/api/bookings", body)
	err := NewBookingHandler(svc).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_InvalidRentPeriod(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			return nil, service.ErrInvalidRentPeriod
		},
	}

	body := `{"customerName":"Bob","car":2,"rentFrom":"2026-09-05T00:00:00Z","rentTo":"2026-09-01T00:00:00Z"}`
	c, _ := jsonContext(t, http.MethodPost, "/api/bookings", body)
	err := NewBookingHandler(svc).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListBookings_Handler_ResolvesCar(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context) ([]models.Booking, error) {
			return []models.Booking{*sampleBooking()}, nil
		},
	}

	c, rec := jsonContext(t, http.MethodGet, "/api/bookings", "")
	err := NewBookingHandler(svc).ListBookings(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Car)
	assert.Equal(t, "Toyota", resp[0].Car.Brand)
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	c, _ := idContext(t, http.MethodGet, "/api/bookings/999", "", "999")
	err := NewBookingHandler(svc).GetBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateBooking_Handler_StatusPatch(t *testing.T) {
	var captured service.BookingUpdate
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, patch service.BookingUpdate) (*models.Booking, error) {
			captured = patch
			b := sampleBooking()
			b.Status = models.BookingCompleted
			return b, nil
		},
	}

	c, rec := idContext(t, http.MethodPut, "/api/bookings/1", `{"status":"completed"}`, "1")
	err := NewBookingHandler(svc).UpdateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.Status)
	assert.Equal(t, models.BookingCompleted, *captured.Status)
	assert.Nil(t, captured.CustomerName)
}

func TestUpdateBooking_Handler_InvalidStatus(t *testing.T) {
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, patch service.BookingUpdate) (*models.Booking, error) {
			return nil, service.ErrInvalidBookingStatus
		},
	}

	c, _ := idContext(t, http.MethodPut, "/api/bookings/1", `{"status":"parked"}`, "1")
	err := NewBookingHandler(svc).UpdateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id uint) error { return nil },
	}

	c, rec := idContext(t, http.MethodDelete, "/api/bookings/1", "", "1")
	err := NewBookingHandler(svc).DeleteBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id uint) error { return service.ErrBookingNotFound },
	}

	c, _ := idContext(t, http.MethodDelete, "/api/bookings/999", "", "999")
	err := NewBookingHandler(svc).DeleteBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
