package register

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/session"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToServiceInput конвертирует HTTP request в модель сервиса
func (r *RegisterRequest) ToServiceInput() session.RegisterInput {
	return session.RegisterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// RegisterResponse HTTP response model. Вход после регистрации выполняется отдельно.
type RegisterResponse struct {
	Identity         *domain.Identity `json:"identity"`
	PasswordStrength string           `json:"password_strength"`
}
