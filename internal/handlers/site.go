package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/models"
)

type SiteHandler struct {
	DB *gorm.DB
}

// settings loads all rows keyed by setting key.
func (h *SiteHandler) settings() (map[string]models.SiteSetting, error) {
	var rows []models.SiteSetting
	if err := h.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	byKey := make(map[string]models.SiteSetting, len(rows))
	for _, s := range rows {
		byKey[s.Key] = s
	}
	return byKey, nil
}

func value(byKey map[string]models.SiteSetting, lang, key string, fallback ...string) string {
	if s, ok := byKey[key]; ok {
		if v := s.Value(lang); v != "" {
			return v
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func (h *SiteHandler) GetSettings(c echo.Context) error {
	byKey, err := h.settings()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, byKey)
}

func (h *SiteHandler) info(byKey map[string]models.SiteSetting, lang string) echo.Map {
	return echo.Map{
		"name_en":        value(byKey, lang, "restaurant_name_en", "Restaurant Name"),
		"name_ar":        value(byKey, lang, "restaurant_name_ar", "اسم المطعم"),
		"description_en": value(byKey, lang, "description_en"),
		"description_ar": value(byKey, lang, "description_ar"),
		"logo":           value(byKey, lang, "logo"),
		"hero_image":     value(byKey, lang, "hero_image"),
	}
}

func (h *SiteHandler) contact(byKey map[string]models.SiteSetting, lang string) echo.Map {
	return echo.Map{
		"phone":            value(byKey, lang, "phone"),
		"email":            value(byKey, lang, "email"),
		"address_en":       value(byKey, lang, "address_en"),
		"address_ar":       value(byKey, lang, "address_ar"),
		"google_maps_url":  value(byKey, lang, "google_maps_url"),
		"opening_hours_en": value(byKey, lang, "opening_hours_en"),
		"opening_hours_ar": value(byKey, lang, "opening_hours_ar"),
	}
}

func (h *SiteHandler) social(byKey map[string]models.SiteSetting, lang string) echo.Map {
	return echo.Map{
		"facebook":  value(byKey, lang, "facebook_url"),
		"instagram": value(byKey, lang, "instagram_url"),
		"twitter":   value(byKey, lang, "twitter_url"),
		"youtube":   value(byKey, lang, "youtube_url"),
	}
}

func (h *SiteHandler) GetInfo(c echo.Context) error {
	byKey, err := h.settings()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, h.info(byKey, requestLang(c)))
}

func (h *SiteHandler) GetContact(c echo.Context) error {
	byKey, err := h.settings()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, h.contact(byKey, requestLang(c)))
}

func (h *SiteHandler) GetSocial(c echo.Context) error {
	byKey, err := h.settings()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, h.social(byKey, requestLang(c)))
}

// GetAll bundles info, contact and social for the frontend's first load.
func (h *SiteHandler) GetAll(c echo.Context) error {
	byKey, err := h.settings()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	lang := requestLang(c)
	return respondData(c, http.StatusOK, echo.Map{
		"info":    h.info(byKey, lang),
		"contact": h.contact(byKey, lang),
		"social":  h.social(byKey, lang),
	})
}
