package model

import "time"

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Restaurant struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:512" json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string  `gorm:"primaryKey;size:64;not null" json:"id"`
	RestaurantID string  `gorm:"size:64;index;not null" json:"restaurant_id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Price        float64 `gorm:"not null" json:"price"`
}

type Order struct {
	ID           string      `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID       string      `gorm:"size:64;index;not null" json:"user_id"`
	RestaurantID string      `gorm:"size:64;index;not null" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID" json:"restaurant"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total        float64     `gorm:"not null" json:"total"`

	Status        string `gorm:"size:32;index;not null" json:"status"`         // pending, processing, delivered, cancelled
	PaymentStatus string `gorm:"size:32;index;not null" json:"payment_status"` // unpaid, pending, paid, failed

	PaymentDetails PaymentDetails `gorm:"embedded;embeddedPrefix:payment_detail_" json:"payment_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    string   `gorm:"size:64;index;not null" json:"order_id"`
	MenuItemID string   `gorm:"size:64;index;not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
}

// PaymentDetails mirrors the last known processor-side state of the order's
// payment. The processor stays the source of truth for money movement.
type PaymentDetails struct {
	IntentID  string `gorm:"size:64;index" json:"intent_id"`
	PaymentID string `gorm:"size:64" json:"payment_id"`
	Status    string `gorm:"size:32" json:"status"`
	CardBrand string `gorm:"size:32" json:"card_brand"`
	Last4     string `gorm:"size:8" json:"last4"`
}
