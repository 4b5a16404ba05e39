package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// Service контекст сессии пользователя.
// Один экземпляр на процесс, передается потребителям явно.
type Service struct {
	client AuthClient
	store  CredentialStore
	logger Logger

	mu       sync.RWMutex
	identity *domain.Identity
	loading  bool
}

// NewService создает новый экземпляр сервиса сессии.
// До вызова Init сессия считается загружающейся.
func NewService(client AuthClient, store CredentialStore, logger Logger) *Service {
	return &Service{
		client:  client,
		store:   store,
		logger:  logger,
		loading: true,
	}
}

// Init восстанавливает сессию по сохраненному токену.
// При недоступности /auth/me identity берется из claims токена, иначе используется общая.
// Пользователь при этом не разлогинивается.
func (s *Service) Init(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	token, ok, err := s.store.Credential(ctx)
	if err != nil {
		s.logger.Error("Init: failed to read stored credential: %v", err)
		return
	}
	if !ok {
		s.logger.Info("Init: no stored credential")
		return
	}

	user, err := s.client.Me(ctx)
	if err == nil {
		s.setIdentity(identityFromUser(user, domain.FallbackEmail))
		s.logger.Info("Init: session restored via /auth/me for %s", user.Email)
		return
	}

	s.logger.Warn("Init: /auth/me failed, falling back to token claims: %v", err)
	if identity, ok := identityFromToken(token); ok {
		s.setIdentity(identity)
		return
	}

	s.logger.Warn("Init: token is not decodable, using generic identity")
	s.setIdentity(domain.FallbackIdentity())
}

// Login выполняет вход и определяет identity для отображения.
// remember сохраняет email для формы входа, иначе удаляет его.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	s.logger.Info("Login: attempt for %s", email)

	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, luxoraapi.ErrRequestRejected) {
			s.logger.Warn("Login: rejected for %s: %v", email, err)
			return nil, fmt.Errorf("%w: %s", ErrAuthentication, luxoraapi.MessageOf(err, "Login failed"))
		}
		s.logger.Error("Login: request failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - client error: %v", ErrInternal, err)
	}

	identity := s.resolveLoginIdentity(ctx, result, email)
	s.setIdentity(identity)

	if remember {
		err = s.store.RememberEmail(ctx, email)
	} else {
		err = s.store.RememberEmail(ctx, "")
	}
	if err != nil {
		s.logger.Warn("Login: failed to update remembered email: %v", err)
	}

	s.logger.Info("Login: success for %s", identity.Email)
	return identity, nil
}

// resolveLoginIdentity user из ответа -> claims токена -> {email, Luxora User}
func (s *Service) resolveLoginIdentity(ctx context.Context, result *luxoraapi.LoginResult, email string) *domain.Identity {
	if result.User != nil {
		return identityFromUser(result.User, email)
	}

	token := result.AccessToken
	if token == "" {
		if stored, ok, err := s.store.Credential(ctx); err == nil && ok {
			token = stored
		}
	}
	if identity, ok := identityFromToken(token); ok {
		if identity.Email == domain.FallbackEmail {
			identity.Email = email
		}
		return identity
	}

	return &domain.Identity{Email: email, Name: domain.FallbackName}
}

// Register регистрирует пользователя. Сессия не создается, вход выполняется отдельно.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Identity, error) {
	if err := validateRegister(&in); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	req := luxoraapi.RegisterRequest{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	}

	user, err := s.client.Register(ctx, req)
	if err != nil {
		if errors.Is(err, luxoraapi.ErrRequestRejected) {
			s.logger.Warn("Register: rejected for %s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: %s", ErrAuthentication, luxoraapi.MessageOf(err, "Registration failed"))
		}
		s.logger.Error("Register: request failed for %s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - client error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: account created for %s", req.Email)
	if user == nil {
		return &domain.Identity{Email: req.Email, Name: req.Name}, nil
	}
	return identityFromUser(user, req.Email), nil
}

// Logout очищает токен и identity локально, без запроса к backend
func (s *Service) Logout(ctx context.Context) error {
	s.setIdentity(nil)
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Error("Logout: failed to clear credential: %v", err)
		return fmt.Errorf("%w: Logout - %v", ErrInternal, err)
	}
	s.logger.Info("Logout: session cleared")
	return nil
}

// IsAuthenticated true, если есть identity или сохраненный токен
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	if s.Identity() != nil {
		return true
	}
	_, ok, err := s.store.Credential(ctx)
	if err != nil {
		s.logger.Warn("IsAuthenticated: failed to read credential: %v", err)
		return false
	}
	return ok
}

// Loading true, пока идет восстановление сессии
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Identity текущая identity или nil
func (s *Service) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// State снимок сессии для UI
func (s *Service) State(ctx context.Context) State {
	state := State{
		Authenticated: s.IsAuthenticated(ctx),
		Loading:       s.Loading(),
		Identity:      s.Identity(),
	}
	email, err := s.store.RememberedEmail(ctx)
	if err != nil {
		s.logger.Warn("State: failed to read remembered email: %v", err)
	}
	state.RememberedEmail = email
	return state
}

func (s *Service) setIdentity(identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

func (s *Service) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
