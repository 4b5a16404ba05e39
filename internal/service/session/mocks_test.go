package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*luxoraapi.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luxoraapi.LoginResult), args.Error(1)
}

func (m *MockAuthClient) Register(ctx context.Context, req luxoraapi.RegisterRequest) (*luxoraapi.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luxoraapi.User), args.Error(1)
}

func (m *MockAuthClient) Me(ctx context.Context) (*luxoraapi.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luxoraapi.User), args.Error(1)
}

func (m *MockAuthClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// memStore хранилище в памяти: токен пишет адаптер, сервис только читает
type memStore struct {
	token    string
	remember string
}

func (s *memStore) Credential(context.Context) (string, bool, error) {
	return s.token, s.token != "", nil
}

func (s *memStore) RememberEmail(_ context.Context, email string) error {
	s.remember = email
	return nil
}

func (s *memStore) RememberedEmail(context.Context) (string, error) {
	return s.remember, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
