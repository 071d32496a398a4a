package repository

import (
	"strings"
	"time"
	"unicode"
)

// RegistrationInput is the typed registration request. Validation runs as a
// fixed sequence of pure per-field checks; every violation is collected.
type RegistrationInput struct {
	Civility        string    `json:"civility"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Address         string    `json:"address"`
	PostalCode      string    `json:"postal_code"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number"`
	BirthDate       time.Time `json:"birth_date"`
	Password        string    `json:"password"`
	ConfirmPassword string    `json:"confirm_password"`
}

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

const passwordSymbols = "!@#$%^&*()"

// ValidateRegistration runs every field check and returns all violations.
// today is injected so the age check stays deterministic under test.
func ValidateRegistration(in RegistrationInput, today time.Time) FieldErrors {
	fe := FieldErrors{}
	for _, msg := range validatePassword(in.Password, in.ConfirmPassword) {
		fe.Add("password", msg)
	}
	for _, msg := range validatePostalCode(in.PostalCode) {
		fe.Add("postal_code", msg)
	}
	for _, msg := range validatePhoneNumber(in.PhoneNumber) {
		fe.Add("phone_number", msg)
	}
	for _, msg := range validateBirthDate(in.BirthDate, today) {
		fe.Add("birth_date", msg)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		fe.Add("email", "Veuillez entrer une adresse e-mail valide.")
	}
	return fe
}

func validatePassword(password, confirm string) []string {
	var msgs []string
	if password != confirm {
		msgs = append(msgs, "Les deux mots de passe ne sont pas identiques !")
	}
	if len(password) < 8 {
		msgs = append(msgs, "Le mot de passe doit contenir au moins 8 caractères.")
	}
	hasLetter, hasUpper, hasDigit, hasSymbol := false, false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsUpper(r) {
				hasUpper = true
			}
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}
	if !hasLetter {
		msgs = append(msgs, "Le mot de passe doit contenir au moins une lettre.")
	}
	if !hasUpper {
		msgs = append(msgs, "Le mot de passe doit contenir au moins une lettre majuscule.")
	}
	if !hasDigit {
		msgs = append(msgs, "Le mot de passe doit contenir au moins un chiffre.")
	}
	if !hasSymbol {
		msgs = append(msgs, "Le mot de passe doit contenir au moins un caractère spécial.")
	}
	return msgs
}

func validatePostalCode(code string) []string {
	if len(code) != 5 || !allDigits(code) {
		return []string{"Veuillez entrer un code postal valide."}
	}
	return nil
}

func validatePhoneNumber(number string) []string {
	if len(normalizePhoneNumber(number)) != 10 {
		return []string{"Le numéro de téléphone doit comporter 10 chiffres."}
	}
	return nil
}

// validateBirthDate requires a past date at least 18 years back. The age limit
// uses a fixed 365-day year, matching the storefront's historical behavior
// around leap years.
func validateBirthDate(birthDate, today time.Time) []string {
	var msgs []string
	if birthDate.After(today) {
		msgs = append(msgs, "La date de naissance ne peut pas être dans le futur.")
	}
	ageLimit := today.Add(-18 * 365 * 24 * time.Hour)
	if birthDate.After(ageLimit) && !birthDate.After(today) {
		msgs = append(msgs, "Vous devez avoir au moins 18 ans pour vous inscrire.")
	}
	return msgs
}

// normalizePhoneNumber strips every non-digit character.
func normalizePhoneNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
