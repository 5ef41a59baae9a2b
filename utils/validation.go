package utils

import (
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the signup password policy. Rules are checked in
// order and the first failure is the one reported.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("La contraseña debe tener minimo 8 caracteres")
	}

	uppercase := regexp.MustCompile(`[A-Z]`)
	digit := regexp.MustCompile(`\d`)

	if !uppercase.MatchString(password) {
		return errors.New("La contraseña debe tener minimo una mayúscula")
	}
	if !digit.MatchString(password) {
		return errors.New("La contraseña debe tener mínimo un número")
	}

	return nil
}

var citaDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCitaDate parses an appointment date from the request body.
func ParseCitaDate(s string) (time.Time, error) {
	for _, layout := range citaDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
