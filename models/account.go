package models

import "time"

type Account struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Civility       string    `gorm:"size:1" json:"civility"` // F or M
	FirstName      string    `gorm:"size:50" json:"first_name"`
	LastName       string    `gorm:"size:50" json:"last_name"`
	Address        string    `gorm:"size:100" json:"address"`
	PostalCode     string    `gorm:"size:20" json:"postal_code"`
	City           string    `gorm:"size:50" json:"city"`
	Country        string    `gorm:"size:50" json:"country"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber    string    `gorm:"size:50" json:"phone_number"`
	BirthDate      time.Time `json:"birth_date"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"size:128;not null" json:"-"` // never the plaintext
	DateJoined     time.Time `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin      time.Time `json:"last_login"`
	IsAdmin        bool      `json:"is_admin"`
	IsStaff        bool      `json:"is_staff"`
	IsActive       bool      `json:"is_active"`
	IsSuperadmin   bool      `json:"is_superadmin"`
}
