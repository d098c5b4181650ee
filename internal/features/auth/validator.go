package auth

import (
	"errors"
	"strings"

	"github.com/rakibhasan-dev/findback/internal/pkg/validator"
)

// ValidateRegister checks the signup payload beyond what binding covers
func ValidateRegister(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if !validator.IsValidUsername(req.Username) {
		return errors.New("username must be 3-20 characters of letters, numbers, underscores or hyphens")
	}

	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}

	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		return errors.New("invalid phone number")
	}

	return nil
}

// ValidateLogin checks the login payload
func ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" {
		return errors.New("email and password are required")
	}

	return nil
}
