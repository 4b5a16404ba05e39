package session

import (
	"fmt"
	"strings"
	"unicode"
)

const minPasswordLen = 8

// Сообщения валидации формы регистрации
const (
	msgNameRequired     = "Please enter your full name."
	msgEmailRequired    = "Please enter a valid email address."
	msgPasswordTooWeak  = "Use at least 8 characters and include a letter and a number."
	msgPasswordMismatch = "Passwords do not match."
)

func hasLetter(p string) bool {
	return strings.IndexFunc(p, func(r rune) bool {
		return r < unicode.MaxASCII && unicode.IsLetter(r)
	}) >= 0
}

func hasDigit(p string) bool {
	return strings.IndexFunc(p, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) >= 0
}

func hasSymbol(p string) bool {
	return strings.IndexFunc(p, func(r rune) bool {
		return !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	}) >= 0
}

// PasswordScore 0..4: длина >= 8, буква, цифра, прочий символ
func PasswordScore(p string) int {
	score := 0
	if len(p) >= minPasswordLen {
		score++
	}
	if hasLetter(p) {
		score++
	}
	if hasDigit(p) {
		score++
	}
	if hasSymbol(p) {
		score++
	}
	return score
}

// PasswordStrength возвращает метку надежности пароля
func PasswordStrength(p string) string {
	if p == "" {
		return StrengthEmpty
	}
	switch score := PasswordScore(p); {
	case score <= 1:
		return StrengthWeak
	case score == 2:
		return StrengthOkay
	case score == 3:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// validateRegister проверяет форму регистрации до обращения к backend
func validateRegister(in *RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msgNameRequired)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msgEmailRequired)
	}
	if len(in.Password) < minPasswordLen || !hasLetter(in.Password) || !hasDigit(in.Password) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msgPasswordTooWeak)
	}
	if in.ConfirmPassword != in.Password {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msgPasswordMismatch)
	}
	return nil
}
