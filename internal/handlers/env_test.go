package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/config"
	"github.com/alwaha/restaurant-backend/internal/models"
)

type testEnv struct {
	T           *testing.T
	E           *echo.Echo
	DB          *gorm.DB
	Menu        *MenuHandler
	Order       *OrderHandler
	Reservation *ReservationHandler
	Site        *SiteHandler
	Auth        *AuthHandler
	JWTSecret   []byte
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	secret := []byte("test_secret")
	env := &testEnv{
		T:           t,
		E:           echo.New(),
		DB:          db,
		Menu:        &MenuHandler{DB: db},
		Order:       &OrderHandler{DB: db},
		Reservation: &ReservationHandler{DB: db},
		Site:        &SiteHandler{DB: db},
		Auth:        &AuthHandler{DB: db, JWTSecret: secret},
		JWTSecret:   secret,
	}
	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedMenuItem(nameEn string, price float64) models.MenuItem {
	item := models.MenuItem{
		NameEn:      nameEn,
		NameAr:      nameEn + " ar",
		Price:       price,
		Category:    "main",
		IsAvailable: true,
	}
	require.NoError(env.T, env.DB.Create(&item).Error)
	return item
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
