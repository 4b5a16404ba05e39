package login

import "github.com/m04kA/SMC-LuxoraClient/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Identity *domain.Identity `json:"identity"`
}
