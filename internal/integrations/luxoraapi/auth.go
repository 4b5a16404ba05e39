package luxoraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Register регистрирует пользователя. Сессия не создается.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodPost, "/auth/register", req, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw), nil
}

// Login выполняет вход и сохраняет полученный access_token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &raw); err != nil {
		return nil, err
	}

	result := decodeLoginResult(raw)
	if result.AccessToken != "" && c.credentials != nil {
		if err := c.credentials.SetCredential(ctx, result.AccessToken); err != nil {
			return nil, fmt.Errorf("%w: failed to store credential: %v", ErrInternal, err)
		}
	}

	return result, nil
}

// Me получает текущего пользователя по сохраненному токену
func (c *Client) Me(ctx context.Context) (*User, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, "/auth/me", nil, &raw); err != nil {
		return nil, err
	}
	user := decodeMe(raw)
	if user == nil {
		return nil, fmt.Errorf("%w: /auth/me returned no user", ErrInvalidResponse)
	}
	return user, nil
}

// Logout удаляет сохраненный токен. Запрос к backend не выполняется.
func (c *Client) Logout(ctx context.Context) error {
	if c.credentials == nil {
		return nil
	}
	if err := c.credentials.SetCredential(ctx, ""); err != nil {
		return fmt.Errorf("%w: failed to clear credential: %v", ErrInternal, err)
	}
	return nil
}
