package models

import "time"

type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:200;uniqueIndex;not null" json:"name"`
	TitleOnline string      `gorm:"size:200" json:"title_online"`
	Slug        string      `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string      `gorm:"size:500" json:"description"`
	Price       float64     `gorm:"not null;default:0" json:"price"`
	Image       string      `json:"image"` // opaque upload paths
	SecondImage string      `json:"second_image"`
	ThirdImage  string      `json:"third_image"`
	FourthImage string      `json:"fourth_image"`
	FifthImage  string      `json:"fifth_image"`
	Stock       int         `gorm:"default:0" json:"stock"`
	IsAvailable bool        `json:"is_available"`
	CategoryID  uint        `gorm:"index;not null" json:"category_id"`
	Category    Category    `json:"category,omitempty"`
	Variations  []Variation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Variation categories.
const (
	VariationColor = "color"
	VariationSize  = "size"
)

type Variation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Category  string    `gorm:"size:100;not null" json:"category"` // color or size
	Value     string    `gorm:"size:100;not null" json:"value"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
