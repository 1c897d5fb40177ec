package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/es"
	"github.com/alwaha/restaurant-backend/internal/logging"
	"github.com/alwaha/restaurant-backend/internal/models"
	"github.com/alwaha/restaurant-backend/internal/mykafka"
	"github.com/alwaha/restaurant-backend/internal/service/search"
	"github.com/alwaha/restaurant-backend/internal/validate"
)

type MenuHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
}

// localizedMenuItem carries the raw bilingual columns plus name and
// description resolved for the request language.
type localizedMenuItem struct {
	models.MenuItem
	Name        string `json:"name"`
	Description string `json:"description"`
}

func localizeOne(item models.MenuItem, lang string) localizedMenuItem {
	return localizedMenuItem{
		MenuItem:    item,
		Name:        item.Name(lang),
		Description: item.Description(lang),
	}
}

func localizeAll(items []models.MenuItem, lang string) []localizedMenuItem {
	out := make([]localizedMenuItem, len(items))
	for i, item := range items {
		out[i] = localizeOne(item, lang)
	}
	return out
}

func orderedMenu(q *gorm.DB) *gorm.DB {
	return q.Order("sort_order ASC").Order("name_en ASC")
}

// GetMenu lists available items, optionally filtered by category.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	q := h.DB.Where("is_available = ?", true)
	if category := c.QueryParam("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := orderedMenu(q).Find(&items).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, localizeAll(items, requestLang(c)))
}

// GetMenuAll returns items and categories in a single request.
func (h *MenuHandler) GetMenuAll(c echo.Context) error {
	var items []models.MenuItem
	if err := orderedMenu(h.DB.Where("is_available = ?", true)).Find(&items).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	categories, err := h.categories()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	return respondData(c, http.StatusOK, echo.Map{
		"items":      localizeAll(items, requestLang(c)),
		"categories": categories,
	})
}

func (h *MenuHandler) GetCategories(c echo.Context) error {
	categories, err := h.categories()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, categories)
}

func (h *MenuHandler) categories() ([]string, error) {
	var categories []string
	err := h.DB.Model(&models.MenuItem{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Menu item not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, localizeOne(item, requestLang(c)))
}

// AdminList includes unavailable items for the admin panel.
func (h *MenuHandler) AdminList(c echo.Context) error {
	var items []models.MenuItem
	if err := orderedMenu(h.DB).Find(&items).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, items)
}

type menuItemRequest struct {
	NameEn        string   `json:"name_en"`
	NameAr        string   `json:"name_ar"`
	DescriptionEn *string  `json:"description_en"`
	DescriptionAr *string  `json:"description_ar"`
	Price         *float64 `json:"price"`
	Category      string   `json:"category"`
	Image         *string  `json:"image"`
	IsAvailable   *bool    `json:"is_available"`
	SortOrder     *int     `json:"sort_order"`
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Required(errs, "name_en", req.NameEn)
	validate.MaxLen(errs, "name_en", req.NameEn, 255)
	validate.Required(errs, "name_ar", req.NameAr)
	validate.MaxLen(errs, "name_ar", req.NameAr, 255)
	validate.Required(errs, "category", req.Category)
	validate.MaxLen(errs, "category", req.Category, 100)
	if req.Price == nil {
		errs.Add("price", "the price field is required")
	} else {
		validate.MinAmount(errs, "price", *req.Price, 0)
	}
	if errs.Any() {
		return respondValidation(c, errs)
	}

	item := models.MenuItem{
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		Price:       *req.Price,
		Category:    req.Category,
		IsAvailable: true,
	}
	if req.DescriptionEn != nil {
		item.DescriptionEn = *req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		item.DescriptionAr = *req.DescriptionAr
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	h.index(c, item)
	publish(c, h.Producer, mykafka.TopicMenuEvents, itemKey(item.ID), map[string]interface{}{
		"type": "menu_item_created", "id": item.ID, "name_en": item.NameEn,
	})

	return respondMessage(c, http.StatusCreated, item, "Menu item created successfully")
}

func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Menu item not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	// Partial update: absent fields keep their values, present ones are
	// validated like on create.
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	if req.NameEn != "" {
		validate.MaxLen(errs, "name_en", req.NameEn, 255)
	}
	if req.NameAr != "" {
		validate.MaxLen(errs, "name_ar", req.NameAr, 255)
	}
	if req.Category != "" {
		validate.MaxLen(errs, "category", req.Category, 100)
	}
	if req.Price != nil {
		validate.MinAmount(errs, "price", *req.Price, 0)
	}
	if errs.Any() {
		return respondValidation(c, errs)
	}

	if req.NameEn != "" {
		item.NameEn = req.NameEn
	}
	if req.NameAr != "" {
		item.NameAr = req.NameAr
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.DescriptionEn != nil {
		item.DescriptionEn = *req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		item.DescriptionAr = *req.DescriptionAr
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := h.DB.Save(&item).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	h.index(c, item)
	publish(c, h.Producer, mykafka.TopicMenuEvents, itemKey(item.ID), map[string]interface{}{
		"type": "menu_item_updated", "id": item.ID,
	})

	return respondMessage(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem removes the catalog row. Historical order lines keep
// their snapshots.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Menu item not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	h.unindex(c, item.ID)
	publish(c, h.Producer, mykafka.TopicMenuEvents, itemKey(item.ID), map[string]interface{}{
		"type": "menu_item_deleted", "id": item.ID,
	})

	return respondMessage(c, http.StatusOK, nil, "Menu item deleted successfully")
}

func (h *MenuHandler) index(c echo.Context, item models.MenuItem) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexMenuItem(ctx, h.ES, es.MenuIndex, item); err != nil {
		logging.FromContext(c.Request().Context()).Warn("es_index_failed", "id", item.ID, "error", err)
	}
}

func (h *MenuHandler) unindex(c echo.Context, id uint) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.DeleteMenuItem(ctx, h.ES, es.MenuIndex, id); err != nil {
		logging.FromContext(c.Request().Context()).Warn("es_delete_failed", "id", id, "error", err)
	}
}
