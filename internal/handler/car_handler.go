package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/dto"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/service"
)

type CarHandler struct {
	svc service.CarService
}

func NewCarHandler(svc service.CarService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListCars)
	g.POST("", h.CreateCar)
	g.GET("/:id", h.GetCar)
	g.PUT("/:id", h.UpdateCar)
	g.DELETE("/:id", h.DeleteCar)
}

func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) CreateCar(c echo.Context) error {
	var req dto.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	car := &models.Car{
		Brand:          req.Brand,
		Model:          req.Model,
		RegistrationNo: req.RegistrationNo,
		PricePerDay:    req.PricePerDay,
	}
	if err := h.svc.Create(c.Request().Context(), car); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCarFields),
			errors.Is(err, service.ErrInvalidPrice),
			errors.Is(err, service.ErrRegistrationTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	car, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, car)
}

func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	car, err := h.svc.Update(c.Request().Context(), id, service.CarUpdate{
		Brand:          req.Brand,
		Model:          req.Model,
		RegistrationNo: req.RegistrationNo,
		PricePerDay:    req.PricePerDay,
		Status:         req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCarNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMissingCarFields),
			errors.Is(err, service.ErrInvalidPrice),
			errors.Is(err, service.ErrRegistrationTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCarNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCarHasActiveBookings):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "car deleted successfully"})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
