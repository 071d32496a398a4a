package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/usman-51/Dream-shop/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountStore persists customer identities. Passwords are only ever stored
// as bcrypt hashes.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Register validates the input and creates the account. Validation failures
// come back as FieldErrors with a nil account; the error return is reserved
// for storage failures.
func (s *AccountStore) Register(ctx context.Context, in RegistrationInput) (*models.Account, FieldErrors, error) {
	db := s.db.WithContext(ctx)

	fe := ValidateRegistration(in, time.Now())

	username := usernameFromEmail(in.Email)
	if !fe.HasErrors() {
		// Pre-check for friendly field errors; a concurrent duplicate slipping
		// through lands on the unique indexes and comes back as a storage error.
		var count int64
		if err := db.Model(&models.Account{}).
			Where("email = ?", in.Email).
			Count(&count).Error; err != nil {
			return nil, nil, err
		}
		if count > 0 {
			fe.Add("email", "Un compte avec cette adresse e-mail existe déjà.")
		} else {
			if err := db.Model(&models.Account{}).
				Where("username = ?", username).
				Count(&count).Error; err != nil {
				return nil, nil, err
			}
			if count > 0 {
				fe.Add("username", "Ce nom d'utilisateur est déjà pris.")
			}
		}
	}
	if fe.HasErrors() {
		return nil, fe, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	account := models.Account{
		Civility:       in.Civility,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Address:        in.Address,
		PostalCode:     in.PostalCode,
		City:           in.City,
		Country:        in.Country,
		Email:          in.Email,
		PhoneNumber:    normalizePhoneNumber(in.PhoneNumber),
		BirthDate:      in.BirthDate,
		Username:       username,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := db.Create(&account).Error; err != nil {
		return nil, nil, err
	}
	return &account, nil, nil
}

// Authenticate verifies the credentials. Failures are reported with the same
// generic error whether the account is missing or the password is wrong.
func (s *AccountStore) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	db := s.db.WithContext(ctx)

	var account models.Account
	if err := db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account.LastLogin = time.Now()
	if err := db.Model(&account).Update("last_login", account.LastLogin).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// usernameFromEmail derives the username from the local part of the email.
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
