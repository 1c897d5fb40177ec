package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/models"
	"github.com/alwaha/restaurant-backend/internal/mykafka"
	"github.com/alwaha/restaurant-backend/internal/util"
	"github.com/alwaha/restaurant-backend/internal/validate"
)

type ReservationHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type reservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Required(errs, "name", req.Name)
	validate.MaxLen(errs, "name", req.Name, 255)
	validate.Required(errs, "email", req.Email)
	validate.Email(errs, "email", req.Email)
	validate.MaxLen(errs, "email", req.Email, 255)
	validate.Required(errs, "phone", req.Phone)
	validate.MaxLen(errs, "phone", req.Phone, 20)
	validate.Required(errs, "reservation_date", req.ReservationDate)
	validate.Date(errs, "reservation_date", req.ReservationDate, true)
	validate.Required(errs, "reservation_time", req.ReservationTime)
	validate.TimeOfDay(errs, "reservation_time", req.ReservationTime)
	validate.IntBetween(errs, "guests", req.Guests, 1, 20)
	validate.MaxLen(errs, "special_requests", req.SpecialRequests, 1000)
	if errs.Any() {
		return respondValidation(c, errs)
	}

	reservation := models.Reservation{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationStatusPending,
	}
	if err := h.DB.Create(&reservation).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, mykafka.TopicReservationEvents, itemKey(reservation.ID), map[string]interface{}{
		"type": "reservation_created", "id": reservation.ID, "date": reservation.ReservationDate,
	})

	return respondMessage(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// ListReservations serves the admin panel, newest first, with optional
// status and date filters.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	q := h.DB.Model(&models.Reservation{})
	if status := c.QueryParam("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if date := c.QueryParam("date"); date != "" {
		q = q.Where("reservation_date = ?", date)
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 15)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	var reservations []models.Reservation
	if err := q.Order("reservation_date DESC").Order("reservation_time DESC").
		Offset(offset).Limit(limit).
		Find(&reservations).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	return respondData(c, http.StatusOK, echo.Map{
		"items": reservations,
		"meta": echo.Map{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

// UpdateReservation applies a partial update to the reservation fields.
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var reservation models.Reservation
	if err := h.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Reservation not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Email(errs, "email", req.Email)
	validate.Date(errs, "reservation_date", req.ReservationDate, false)
	validate.TimeOfDay(errs, "reservation_time", req.ReservationTime)
	if req.Guests != 0 {
		validate.IntBetween(errs, "guests", req.Guests, 1, 20)
	}
	validate.MaxLen(errs, "special_requests", req.SpecialRequests, 1000)
	validate.OneOf(errs, "status", req.Status, models.ReservationStatuses())
	if errs.Any() {
		return respondValidation(c, errs)
	}

	if req.Name != "" {
		reservation.Name = req.Name
	}
	if req.Email != "" {
		reservation.Email = req.Email
	}
	if req.Phone != "" {
		reservation.Phone = req.Phone
	}
	if req.ReservationDate != "" {
		reservation.ReservationDate = req.ReservationDate
	}
	if req.ReservationTime != "" {
		reservation.ReservationTime = req.ReservationTime
	}
	if req.Guests != 0 {
		reservation.Guests = req.Guests
	}
	if req.SpecialRequests != "" {
		reservation.SpecialRequests = req.SpecialRequests
	}
	if req.Status != "" {
		reservation.Status = req.Status
	}

	if err := h.DB.Save(&reservation).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, mykafka.TopicReservationEvents, itemKey(reservation.ID), map[string]interface{}{
		"type": "reservation_updated", "id": reservation.ID,
	})

	return respondMessage(c, http.StatusOK, reservation, "Reservation updated successfully")
}

type updateReservationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var reservation models.Reservation
	if err := h.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Reservation not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	var req updateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Required(errs, "status", req.Status)
	validate.OneOf(errs, "status", req.Status, models.ReservationStatuses())
	if errs.Any() {
		return respondValidation(c, errs)
	}

	if err := h.DB.Model(&reservation).Update("status", req.Status).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, mykafka.TopicReservationEvents, itemKey(reservation.ID), map[string]interface{}{
		"type": "reservation_status_updated", "id": reservation.ID, "status": reservation.Status,
	})

	return respondMessage(c, http.StatusOK, reservation, "Reservation status updated successfully")
}

func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var reservation models.Reservation
	if err := h.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Reservation not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	if err := h.DB.Delete(&reservation).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, mykafka.TopicReservationEvents, itemKey(reservation.ID), map[string]interface{}{
		"type": "reservation_deleted", "id": reservation.ID,
	})

	return respondMessage(c, http.StatusOK, nil, "Reservation deleted successfully")
}

func (h *ReservationHandler) TodayReservations(c echo.Context) error {
	today := time.Now().Format("2006-01-02")

	var reservations []models.Reservation
	if err := h.DB.Where("reservation_date = ?", today).
		Order("reservation_time ASC").
		Find(&reservations).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, reservations)
}

func (h *ReservationHandler) UpcomingReservations(c echo.Context) error {
	today := time.Now().Format("2006-01-02")

	var reservations []models.Reservation
	if err := h.DB.Where("reservation_date >= ?", today).
		Order("reservation_date ASC").Order("reservation_time ASC").
		Find(&reservations).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, reservations)
}
