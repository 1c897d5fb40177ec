package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/logging"
	"github.com/alwaha/restaurant-backend/internal/models"
	"github.com/alwaha/restaurant-backend/internal/mykafka"
	"github.com/alwaha/restaurant-backend/internal/ordernum"
	"github.com/alwaha/restaurant-backend/internal/pricing"
	"github.com/alwaha/restaurant-backend/internal/util"
	"github.com/alwaha/restaurant-backend/internal/validate"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type orderLineRequest struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName        string             `json:"customer_name"`
	CustomerEmail       string             `json:"customer_email"`
	CustomerPhone       string             `json:"customer_phone"`
	DeliveryAddress     string             `json:"delivery_address"`
	PaymentMethod       string             `json:"payment_method"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []orderLineRequest `json:"items"`
}

// CreateOrder validates the whole request up front, then creates the
// order, its snapshot lines and the derived totals inside one
// transaction. Nothing is written when validation fails, and a failure
// mid-transaction rolls everything back.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "order_create")

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Required(errs, "customer_name", req.CustomerName)
	validate.MaxLen(errs, "customer_name", req.CustomerName, 255)
	validate.Required(errs, "customer_email", req.CustomerEmail)
	validate.Email(errs, "customer_email", req.CustomerEmail)
	validate.MaxLen(errs, "customer_email", req.CustomerEmail, 255)
	validate.Required(errs, "customer_phone", req.CustomerPhone)
	validate.MaxLen(errs, "customer_phone", req.CustomerPhone, 20)
	validate.Required(errs, "delivery_address", req.DeliveryAddress)
	validate.Required(errs, "payment_method", req.PaymentMethod)
	validate.OneOf(errs, "payment_method", req.PaymentMethod, models.PaymentMethods())

	if len(req.Items) == 0 {
		errs.Add("items", "at least one item is required")
	}
	for i, it := range req.Items {
		if it.Quantity < 1 {
			errs.Add(fmt.Sprintf("items.%d.quantity", i), "the quantity must be at least 1")
		}
	}

	// Referenced menu items must exist before anything is written.
	if len(req.Items) > 0 {
		ids := make([]uint, 0, len(req.Items))
		for _, it := range req.Items {
			ids = append(ids, it.ID)
		}
		var found []models.MenuItem
		if err := h.DB.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return respondError(c, http.StatusInternalServerError, "Error creating order")
		}
		known := make(map[uint]bool, len(found))
		for _, mi := range found {
			known[mi.ID] = true
		}
		for i, it := range req.Items {
			if !known[it.ID] {
				errs.Add(fmt.Sprintf("items.%d.id", i), "the selected menu item does not exist")
			}
		}
	}

	if errs.Any() {
		return respondValidation(c, errs)
	}

	var order models.Order
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			OrderNumber:         ordernum.Generate(time.Now()),
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
			CustomerPhone:       req.CustomerPhone,
			DeliveryAddress:     req.DeliveryAddress,
			PaymentMethod:       req.PaymentMethod,
			PaymentStatus:       models.PaymentStatusPending,
			OrderStatus:         models.OrderStatusPending,
			SpecialInstructions: req.SpecialInstructions,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range req.Items {
			var mi models.MenuItem
			if err := tx.First(&mi, it.ID).Error; err != nil {
				return err
			}
			line := models.OrderItem{
				OrderID:           order.ID,
				MenuItemID:        mi.ID,
				ItemNameEn:        mi.NameEn,
				ItemNameAr:        mi.NameAr,
				ItemDescriptionEn: mi.DescriptionEn,
				ItemDescriptionAr: mi.DescriptionAr,
				UnitPrice:         mi.Price,
				Quantity:          it.Quantity,
				TotalPrice:        pricing.LineTotal(mi.Price, it.Quantity),
				Category:          mi.Category,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, line)
		}

		if err := recalcTotals(tx, &order); err != nil {
			return err
		}

		// No gateway integration: card payments are settled at creation.
		if order.PaymentMethod == models.PaymentMethodCard {
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
				return err
			}
			order.PaymentStatus = models.PaymentStatusPaid
		}
		return nil
	})
	if txErr != nil {
		l.Error("order_create_failed", "error", txErr)
		return respondError(c, http.StatusInternalServerError, "Error creating order")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, order.OrderNumber, map[string]interface{}{
		"type":         "order_created",
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
	})

	l.Info("order_created", "order_number", order.OrderNumber, "total", order.Total)
	return respondMessage(c, http.StatusCreated, order, "Order created successfully")
}

// recalcTotals recomputes the derived monetary fields from the order's
// current lines and persists all four in a single update. Safe to call
// repeatedly over an unchanged line set.
func recalcTotals(tx *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return err
	}

	lines := make([]pricing.Line, len(items))
	for i, it := range items {
		lines[i] = pricing.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	t := pricing.Calculate(lines)

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"subtotal":     t.Subtotal,
		"tax":          t.Tax,
		"delivery_fee": t.DeliveryFee,
		"total":        t.Total,
	}).Error; err != nil {
		return err
	}

	order.Subtotal = t.Subtotal
	order.Tax = t.Tax
	order.DeliveryFee = t.DeliveryFee
	order.Total = t.Total
	return nil
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.DB.Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	number := c.Param("orderNumber")

	var order models.Order
	if err := h.DB.Preload("OrderItems").Where("order_number = ?", number).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) GetOrdersByCustomer(c echo.Context) error {
	email := c.Param("email")

	var orders []models.Order
	if err := h.DB.Preload("OrderItems").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
	return respondData(c, http.StatusOK, orders)
}

// ListOrders serves the admin panel, oldest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	var orders []models.Order
	if err := h.DB.Preload("OrderItems").
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	return respondData(c, http.StatusOK, echo.Map{
		"items": orders,
		"meta": echo.Map{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

type updateOrderStatusRequest struct {
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateOrderStatus sets order_status and optionally payment_status.
// The enums are validated but no transition graph is enforced.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	errs := validate.Errors{}
	validate.Required(errs, "order_status", req.OrderStatus)
	validate.OneOf(errs, "order_status", req.OrderStatus, models.OrderStatuses())
	validate.OneOf(errs, "payment_status", req.PaymentStatus, models.PaymentStatuses())
	if errs.Any() {
		return respondValidation(c, errs)
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found")
		}
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	updates := map[string]interface{}{"order_status": req.OrderStatus}
	if req.PaymentStatus != "" {
		updates["payment_status"] = req.PaymentStatus
	}
	if err := h.DB.Model(&order).Updates(updates).Error; err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, order.OrderNumber, map[string]interface{}{
		"type":           "order_status_updated",
		"id":             order.ID,
		"order_status":   order.OrderStatus,
		"payment_status": order.PaymentStatus,
	})

	return respondMessage(c, http.StatusOK, order, "Order status updated successfully")
}
