package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alwaha/restaurant-backend/internal/models"
)

func reservationPayload(date string) map[string]interface{} {
	return map[string]interface{}{
		"name":             "Guest",
		"email":            "guest@example.com",
		"phone":            "+15551234567",
		"reservation_date": date,
		"reservation_time": "19:30",
		"guests":           4,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestCreateReservation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(tomorrow()))
	require.NoError(t, env.Reservation.CreateReservation(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var r models.Reservation
	decodeData(t, rec, &r)
	require.Equal(t, models.ReservationStatusPending, r.Status)
	require.Equal(t, 4, r.Guests)
}

func TestCreateReservationPastDate(t *testing.T) {
	env := newTestEnv(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(yesterday))
	require.NoError(t, env.Reservation.CreateReservation(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Contains(t, resp.Errors, "reservation_date")
	require.Zero(t, countRows(t, env.DB, &models.Reservation{}))
}

func TestCreateReservationTooManyGuests(t *testing.T) {
	env := newTestEnv(t)

	payload := reservationPayload(tomorrow())
	payload["guests"] = 50
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", payload)
	require.NoError(t, env.Reservation.CreateReservation(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Contains(t, resp.Errors, "guests")
}

func TestUpdateReservationStatus(t *testing.T) {
	env := newTestEnv(t)
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(tomorrow()))
	require.NoError(t, env.Reservation.CreateReservation(c))

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/reservations/1/status", map[string]string{
		"status": models.ReservationStatusConfirmed,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Reservation.UpdateReservationStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Reservation
	require.NoError(t, env.DB.First(&stored, 1).Error)
	require.Equal(t, models.ReservationStatusConfirmed, stored.Status)
}

func TestUpdateReservationStatusInvalid(t *testing.T) {
	env := newTestEnv(t)
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(tomorrow()))
	require.NoError(t, env.Reservation.CreateReservation(c))

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/reservations/1/status", map[string]string{
		"status": "maybe",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Reservation.UpdateReservationStatus(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateReservationPartial(t *testing.T) {
	env := newTestEnv(t)
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(tomorrow()))
	require.NoError(t, env.Reservation.CreateReservation(c))

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/reservations/1", map[string]interface{}{
		"guests": 8,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Reservation.UpdateReservation(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Reservation
	require.NoError(t, env.DB.First(&stored, 1).Error)
	require.Equal(t, 8, stored.Guests)
	require.Equal(t, "Guest", stored.Name)
}

func TestDeleteReservation(t *testing.T) {
	env := newTestEnv(t)
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/reservations", reservationPayload(tomorrow()))
	require.NoError(t, env.Reservation.CreateReservation(c))

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/reservations/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Reservation.DeleteReservation(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, countRows(t, env.DB, &models.Reservation{}))
}

func TestTodayAndUpcomingReservations(t *testing.T) {
	env := newTestEnv(t)
	today := time.Now().Format("2006-01-02")
	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	seed := []models.Reservation{
		{Name: "A", Email: "a@example.com", Phone: "1", ReservationDate: today, ReservationTime: "12:00", Guests: 2, Status: models.ReservationStatusPending},
		{Name: "B", Email: "b@example.com", Phone: "2", ReservationDate: tomorrow(), ReservationTime: "18:00", Guests: 2, Status: models.ReservationStatusPending},
		{Name: "C", Email: "c@example.com", Phone: "3", ReservationDate: lastWeek, ReservationTime: "20:00", Guests: 2, Status: models.ReservationStatusPending},
	}
	for i := range seed {
		require.NoError(t, env.DB.Create(&seed[i]).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/admin/reservations/today", nil)
	require.NoError(t, env.Reservation.TodayReservations(c))
	var todays []models.Reservation
	decodeData(t, rec, &todays)
	require.Len(t, todays, 1)
	require.Equal(t, "A", todays[0].Name)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/v1/admin/reservations/upcoming", nil)
	require.NoError(t, env.Reservation.UpcomingReservations(c))
	var upcoming []models.Reservation
	decodeData(t, rec, &upcoming)
	require.Len(t, upcoming, 2)
}

func TestListReservationsFilterByStatus(t *testing.T) {
	env := newTestEnv(t)
	seed := []models.Reservation{
		{Name: "A", Email: "a@example.com", Phone: "1", ReservationDate: tomorrow(), ReservationTime: "12:00", Guests: 2, Status: models.ReservationStatusPending},
		{Name: "B", Email: "b@example.com", Phone: "2", ReservationDate: tomorrow(), ReservationTime: "13:00", Guests: 2, Status: models.ReservationStatusConfirmed},
	}
	for i := range seed {
		require.NoError(t, env.DB.Create(&seed[i]).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/admin/reservations?status=confirmed", nil)
	require.NoError(t, env.Reservation.ListReservations(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Items []models.Reservation `json:"items"`
	}
	decodeData(t, rec, &data)
	require.Len(t, data.Items, 1)
	require.Equal(t, "B", data.Items[0].Name)
}
