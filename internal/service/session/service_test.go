package session

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestService_Init(t *testing.T) {
	tests := []struct {
		name         string
		token        func(t *testing.T) string
		setupMock    func(m *MockAuthClient)
		wantIdentity *domain.Identity
	}{
		{
			name:         "no credential",
			token:        func(*testing.T) string { return "" },
			setupMock:    func(m *MockAuthClient) {},
			wantIdentity: nil,
		},
		{
			name:  "resolved via me",
			token: func(*testing.T) string { return "opaque" },
			setupMock: func(m *MockAuthClient) {
				m.On("Me", mock.Anything).Return(&luxoraapi.User{ID: 3, Username: "ann", Email: "ann@x.io"}, nil)
			},
			wantIdentity: &domain.Identity{ID: 3, Name: "ann", Email: "ann@x.io"},
		},
		{
			name: "me fails, claims decoded",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "bob@x.io", "username": "bob"})
			},
			setupMock: func(m *MockAuthClient) {
				m.On("Me", mock.Anything).Return(nil, luxoraapi.ErrTransport)
			},
			wantIdentity: &domain.Identity{Name: "bob", Email: "bob@x.io"},
		},
		{
			name:  "me fails, token not decodable",
			token: func(*testing.T) string { return "not-a-jwt" },
			setupMock: func(m *MockAuthClient) {
				m.On("Me", mock.Anything).Return(nil, &luxoraapi.RequestError{Status: 404, Message: "Not Found"})
			},
			wantIdentity: &domain.Identity{Name: domain.FallbackName, Email: domain.FallbackEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockAuthClient)
			tt.setupMock(client)
			store := &memStore{token: tt.token(t)}
			svc := NewService(client, store, nopLogger{})

			assert.True(t, svc.Loading())
			svc.Init(context.Background())

			assert.False(t, svc.Loading())
			assert.Equal(t, tt.wantIdentity, svc.Identity())
			assert.Equal(t, store.token != "", svc.IsAuthenticated(context.Background()))
			client.AssertExpectations(t)
			client.AssertNotCalled(t, "Logout", mock.Anything)
		})
	}
}

func TestService_Login(t *testing.T) {
	t.Run("authenticated immediately after login", func(t *testing.T) {
		store := &memStore{}
		client := new(MockAuthClient)
		client.On("Login", mock.Anything, "ann@x.io", "secret123").
			Run(func(args mock.Arguments) { store.token = "tok" }).
			Return(&luxoraapi.LoginResult{AccessToken: "tok", User: &luxoraapi.User{ID: 1, Name: "Ann", Email: "ann@x.io"}}, nil)

		svc := NewService(client, store, nopLogger{})
		svc.Init(context.Background())
		require.False(t, svc.IsAuthenticated(context.Background()))

		identity, err := svc.Login(context.Background(), " ann@x.io ", "secret123", true)

		require.NoError(t, err)
		assert.Equal(t, &domain.Identity{ID: 1, Name: "Ann", Email: "ann@x.io"}, identity)
		assert.True(t, svc.IsAuthenticated(context.Background()))
		assert.Equal(t, "ann@x.io", store.remember)
		client.AssertNotCalled(t, "Me", mock.Anything)
	})

	t.Run("identity from claims", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"email": "c@x.io", "name": "Cee"})
		client := new(MockAuthClient)
		client.On("Login", mock.Anything, "c@x.io", "pw").
			Return(&luxoraapi.LoginResult{AccessToken: token}, nil)
		store := &memStore{remember: "old@x.io"}

		identity, err := NewService(client, store, nopLogger{}).Login(context.Background(), "c@x.io", "pw", false)

		require.NoError(t, err)
		assert.Equal(t, &domain.Identity{Name: "Cee", Email: "c@x.io"}, identity)
		assert.Empty(t, store.remember)
	})

	t.Run("generic identity with typed email", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("Login", mock.Anything, "d@x.io", "pw").
			Return(&luxoraapi.LoginResult{AccessToken: "opaque"}, nil)

		identity, err := NewService(client, &memStore{}, nopLogger{}).Login(context.Background(), "d@x.io", "pw", false)

		require.NoError(t, err)
		assert.Equal(t, &domain.Identity{Name: domain.FallbackName, Email: "d@x.io"}, identity)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("Login", mock.Anything, "e@x.io", "bad").
			Return(nil, &luxoraapi.RequestError{Status: 401, Message: "Invalid email or password"})
		svc := NewService(client, &memStore{}, nopLogger{})

		_, err := svc.Login(context.Background(), "e@x.io", "bad", true)

		assert.ErrorIs(t, err, ErrAuthentication)
		assert.Contains(t, err.Error(), "Invalid email or password")
		assert.False(t, svc.IsAuthenticated(context.Background()))
	})

	t.Run("transport failure is not an authentication error", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("Login", mock.Anything, "f@x.io", "pw").
			Return(nil, errors.Join(luxoraapi.ErrTransport, errors.New("connection refused")))

		_, err := NewService(client, &memStore{}, nopLogger{}).Login(context.Background(), "f@x.io", "pw", false)

		assert.ErrorIs(t, err, ErrInternal)
		assert.NotErrorIs(t, err, ErrAuthentication)
	})
}

func TestService_Register(t *testing.T) {
	valid := RegisterInput{Name: " Ann ", Email: "ann@x.io", Password: "secret123", ConfirmPassword: "secret123"}

	tests := []struct {
		name    string
		input   RegisterInput
		wantMsg string
	}{
		{"missing name", RegisterInput{Name: "  ", Email: "a@x.io", Password: "secret123", ConfirmPassword: "secret123"}, msgNameRequired},
		{"missing email", RegisterInput{Name: "Ann", Password: "secret123", ConfirmPassword: "secret123"}, msgEmailRequired},
		{"too short", RegisterInput{Name: "Ann", Email: "a@x.io", Password: "abc123", ConfirmPassword: "abc123"}, msgPasswordTooWeak},
		{"no digit", RegisterInput{Name: "Ann", Email: "a@x.io", Password: "abcdefgh", ConfirmPassword: "abcdefgh"}, msgPasswordTooWeak},
		{"mismatch", RegisterInput{Name: "Ann", Email: "a@x.io", Password: "secret123", ConfirmPassword: "secret124"}, msgPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockAuthClient)
			_, err := NewService(client, &memStore{}, nopLogger{}).Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
			client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}

	t.Run("success does not log in", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("Register", mock.Anything, luxoraapi.RegisterRequest{Name: "Ann", Email: "ann@x.io", Password: "secret123"}).
			Return(&luxoraapi.User{ID: 5, Name: "Ann", Email: "ann@x.io"}, nil)
		svc := NewService(client, &memStore{}, nopLogger{})

		identity, err := svc.Register(context.Background(), valid)

		require.NoError(t, err)
		assert.Equal(t, int64(5), identity.ID)
		assert.False(t, svc.IsAuthenticated(context.Background()))
		assert.Nil(t, svc.Identity())
	})

	t.Run("backend rejection", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("Register", mock.Anything, mock.Anything).
			Return(nil, &luxoraapi.RequestError{Status: 400, Message: "Email already registered"})

		_, err := NewService(client, &memStore{}, nopLogger{}).Register(context.Background(), valid)

		assert.ErrorIs(t, err, ErrAuthentication)
		assert.Contains(t, err.Error(), "Email already registered")
	})
}

func TestService_Logout(t *testing.T) {
	store := &memStore{token: "tok"}
	client := new(MockAuthClient)
	client.On("Me", mock.Anything).Return(&luxoraapi.User{Email: "ann@x.io"}, nil)
	client.On("Logout", mock.Anything).Run(func(mock.Arguments) { store.token = "" }).Return(nil)
	svc := NewService(client, store, nopLogger{})
	svc.Init(context.Background())
	require.True(t, svc.IsAuthenticated(context.Background()))

	require.NoError(t, svc.Logout(context.Background()))

	assert.Nil(t, svc.Identity())
	assert.False(t, svc.IsAuthenticated(context.Background()))
	client.AssertExpectations(t)
}

func TestService_State(t *testing.T) {
	svc := NewService(new(MockAuthClient), &memStore{remember: "ann@x.io"}, nopLogger{})
	svc.Init(context.Background())

	assert.Equal(t, State{RememberedEmail: "ann@x.io"}, svc.State(context.Background()))
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"", StrengthEmpty},
		{"abc", StrengthWeak},
		{"abc1", StrengthOkay},
		{"abcdefg1", StrengthStrong},
		{"abcdef1!", StrengthVeryStrong},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordStrength(tt.password))
		})
	}
}
