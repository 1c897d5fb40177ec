package models

import (
	"time"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

func PaymentMethods() []string {
	return []string{PaymentMethodCard, PaymentMethodCOD}
}

func PaymentStatuses() []string {
	return []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed}
}

func OrderStatuses() []string {
	return []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	}
}

func ReservationStatuses() []string {
	return []string{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled}
}

type MenuItem struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	NameEn        string    `gorm:"not null"                  json:"name_en"`
	NameAr        string    `gorm:"not null"                  json:"name_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Price         float64   `gorm:"not null"                  json:"price"`
	Category      string    `gorm:"not null;default:main"     json:"category"`
	Image         string    `json:"image"`
	IsAvailable   bool      `gorm:"not null"                  json:"is_available"`
	SortOrder     int       `gorm:"not null;default:0"        json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Name returns the localized name with english fallback.
func (m MenuItem) Name(lang string) string {
	if lang == "ar" && m.NameAr != "" {
		return m.NameAr
	}
	return m.NameEn
}

func (m MenuItem) Description(lang string) string {
	if lang == "ar" && m.DescriptionAr != "" {
		return m.DescriptionAr
	}
	return m.DescriptionEn
}

type Order struct {
	ID                    uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber           string      `gorm:"uniqueIndex;not null"     json:"order_number"`
	CustomerName          string      `gorm:"not null"                 json:"customer_name"`
	CustomerEmail         string      `gorm:"index;not null"           json:"customer_email"`
	CustomerPhone         string      `gorm:"not null"                 json:"customer_phone"`
	DeliveryAddress       string      `gorm:"not null"                 json:"delivery_address"`
	PaymentMethod         string      `gorm:"not null;default:cod"     json:"payment_method"`
	PaymentStatus         string      `gorm:"not null;default:pending" json:"payment_status"`
	OrderStatus           string      `gorm:"not null;default:pending" json:"order_status"`
	Subtotal              float64     `gorm:"not null"                 json:"subtotal"`
	Tax                   float64     `gorm:"not null"                 json:"tax"`
	DeliveryFee           float64     `gorm:"not null"                 json:"delivery_fee"`
	Total                 float64     `gorm:"not null"                 json:"total"`
	SpecialInstructions   string      `json:"special_instructions"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	OrderItems            []OrderItem `gorm:"foreignKey:OrderID"       json:"order_items"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a menu item at the moment the order was
// placed. Later menu edits or deletes must not alter it.
type OrderItem struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID           uint      `gorm:"index;not null"            json:"order_id"`
	MenuItemID        uint      `gorm:"not null"                  json:"menu_item_id"`
	ItemNameEn        string    `gorm:"not null"                  json:"item_name_en"`
	ItemNameAr        string    `gorm:"not null"                  json:"item_name_ar"`
	ItemDescriptionEn string    `json:"item_description_en"`
	ItemDescriptionAr string    `json:"item_description_ar"`
	UnitPrice         float64   `gorm:"not null"                  json:"unit_price"`
	Quantity          int       `gorm:"not null;check:quantity>0" json:"quantity"`
	TotalPrice        float64   `gorm:"not null"                  json:"total_price"`
	Category          string    `gorm:"not null"                  json:"category"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Reservation dates and times are kept as ISO strings (YYYY-MM-DD, HH:MM)
// so range queries stay portable between postgres and sqlite.
type Reservation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null"                 json:"name"`
	Email           string    `gorm:"not null"                 json:"email"`
	Phone           string    `gorm:"not null"                 json:"phone"`
	ReservationDate string    `gorm:"index;not null"           json:"reservation_date"`
	ReservationTime string    `gorm:"not null"                 json:"reservation_time"`
	Guests          int       `gorm:"not null"                 json:"guests"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SiteSetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null"     json:"key"`
	ValueEn   string    `json:"value_en"`
	ValueAr   string    `json:"value_ar"`
	Type      string    `gorm:"not null;default:text"    json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s SiteSetting) Value(lang string) string {
	if lang == "ar" && s.ValueAr != "" {
		return s.ValueAr
	}
	return s.ValueEn
}

type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
