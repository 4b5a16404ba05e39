package credential

import (
	"context"
	"fmt"
	"strings"
)

// Ключи клиентского хранилища
const (
	KeyAccessToken   = "luxora_access_token"
	KeyRememberEmail = "luxora_remember_email"
)

// SessionStore хранит bearer токен и запомненный email поверх Store.
// Срок действия токена на клиенте не отслеживается.
type SessionStore struct {
	store Store
}

// NewSessionStore создает хранилище сессии
func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

// Credential возвращает сохраненный токен
func (s *SessionStore) Credential(ctx context.Context) (string, bool, error) {
	token, ok, err := s.store.Get(ctx, KeyAccessToken)
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	if !ok || token == "" {
		return "", false, nil
	}
	return token, true, nil
}

// SetCredential сохраняет токен; пустая строка удаляет его
func (s *SessionStore) SetCredential(ctx context.Context, token string) error {
	if token == "" {
		return s.store.Delete(ctx, KeyAccessToken)
	}
	return s.store.Set(ctx, KeyAccessToken, token)
}

// RememberEmail сохраняет email для формы входа; пустая строка удаляет его
func (s *SessionStore) RememberEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return s.store.Delete(ctx, KeyRememberEmail)
	}
	return s.store.Set(ctx, KeyRememberEmail, email)
}

// RememberedEmail возвращает запомненный email или пустую строку
func (s *SessionStore) RememberedEmail(ctx context.Context) (string, error) {
	email, _, err := s.store.Get(ctx, KeyRememberEmail)
	if err != nil {
		return "", fmt.Errorf("read remembered email: %w", err)
	}
	return email, nil
}
