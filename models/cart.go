package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	SessionID string     `gorm:"size:250;uniqueIndex" json:"session_id"` // one cart per browser session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CartItem struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CartID     uint        `gorm:"index" json:"cart_id"`
	ProductID  uint        `gorm:"index" json:"product_id"`
	Product    Product     `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Variations []Variation `gorm:"many2many:cart_item_variations" json:"variations,omitempty"`
	Quantity   int         `gorm:"not null" json:"quantity"`
	IsActive   bool        `json:"is_active"`
	AddedAt    time.Time   `gorm:"autoCreateTime" json:"added_at"`
}

// SubTotal is the line price, product price times quantity.
func (ci CartItem) SubTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
