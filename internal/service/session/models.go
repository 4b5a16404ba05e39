package session

import "github.com/m04kA/SMC-LuxoraClient/internal/domain"

// RegisterInput данные формы регистрации
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// State снимок сессии для UI
type State struct {
	Authenticated   bool             `json:"authenticated"`
	Loading         bool             `json:"loading"`
	Identity        *domain.Identity `json:"identity,omitempty"`
	RememberedEmail string           `json:"remembered_email,omitempty"`
}

// Метки надежности пароля
const (
	StrengthEmpty      = "Password strength"
	StrengthWeak       = "Weak"
	StrengthOkay       = "Okay"
	StrengthStrong     = "Strong"
	StrengthVeryStrong = "Very strong"
)
