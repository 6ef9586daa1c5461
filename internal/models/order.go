package models

import "time"

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	StudioID uint   `json:"studio_id"`
	Number   string `gorm:"size:36;uniqueIndex;not null" json:"number"`

	ClientID *uint  `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Items []OrderItem `json:"items"`

	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	DiscountCodeID *uint `json:"discount_code_id"`

	Status string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index" json:"order_id"`

	Kind  string `gorm:"size:10;not null" json:"kind"` // product | service
	RefID uint   `json:"ref_id"`

	Name      string  `gorm:"size:100" json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
