package models

// Gender codes for a category.
const (
	GenderMen   = "H"
	GenderWomen = "F"
	GenderOther = "O"
)

// Product type codes for a category.
const (
	TypeAccessoriesMen   = "Y"
	TypeAccessoriesWomen = "X"
	TypeClothingMen      = "A"
	TypeClothingWomen    = "B"
	TypeOther            = "O"
)

type Category struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CategoryOnline string    `gorm:"size:50" json:"category_online"`
	Slug           string    `gorm:"size:100;uniqueIndex;not null" json:"slug"` // stable URL identifier
	Description    string    `gorm:"size:255" json:"description"`
	Image          string    `json:"image"`
	Gender         string    `gorm:"size:1" json:"gender"`
	ProductType    string    `gorm:"size:1" json:"product_type"`
	Products       []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
