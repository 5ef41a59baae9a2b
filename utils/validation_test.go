package utils_test

import (
	"testing"
	"time"

	"venvet/utils"

	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "Valid password should pass validation",
			password: "Passw0rd",
			wantErr:  false,
		},
		{
			name:     "Valid long password should pass validation",
			password: "MuySegura2024",
			wantErr:  false,
		},
		{
			name:     "Password too short should fail validation",
			password: "Abc1",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo 8 caracteres",
		},
		{
			name:     "Seven characters should fail validation",
			password: "Abcdef1",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo 8 caracteres",
		},
		{
			name:     "Password without uppercase should fail validation",
			password: "allminuscula1",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo una mayúscula",
		},
		{
			name:     "Password without digits should fail validation",
			password: "SinNumeros",
			wantErr:  true,
			errMsg:   "La contraseña debe tener mínimo un número",
		},
		{
			name:     "Length rule wins over uppercase rule",
			password: "abc1",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo 8 caracteres",
		},
		{
			name:     "Uppercase rule wins over digit rule",
			password: "sinmayusculas",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo una mayúscula",
		},
		{
			name:     "Empty password should fail validation",
			password: "",
			wantErr:  true,
			errMsg:   "La contraseña debe tener minimo 8 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("ValidatePassword() error message = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestCheckPasswordHash(t *testing.T) {
	password := "Passw0rd"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate password hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Valid password should match hash",
			password: password,
			hash:     string(hash),
			want:     true,
		},
		{
			name:     "Invalid password should not match hash",
			password: "Wr0ngPassword",
			hash:     string(hash),
			want:     false,
		},
		{
			name:     "Empty password should not match hash",
			password: "",
			hash:     string(hash),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CheckPasswordHash(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCitaDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339",
			input: "2026-03-15T10:30:00Z",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "Date and time",
			input: "2026-03-15 10:30:00",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "Date only",
			input: "2026-03-15",
			want:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Garbage should fail",
			input:   "mañana",
			wantErr: true,
		},
		{
			name:    "Empty should fail",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseCitaDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCitaDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseCitaDate() = %v, want %v", got, tt.want)
			}
		})
	}
}
