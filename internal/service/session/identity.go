package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// claimsFromToken читает claims токена без проверки подписи.
// Используется только для отображения, валидность токена проверяет backend.
func claimsFromToken(token string) (jwt.MapClaims, bool) {
	parser := new(jwt.Parser)
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// identityFromToken email <- email|sub, name <- name|username
func identityFromToken(token string) (*domain.Identity, bool) {
	claims, ok := claimsFromToken(token)
	if !ok {
		return nil, false
	}
	return &domain.Identity{
		Email: firstNonEmpty(claimString(claims, "email", "sub"), domain.FallbackEmail),
		Name:  firstNonEmpty(claimString(claims, "name", "username"), domain.FallbackName),
	}, true
}

func identityFromUser(user *luxoraapi.User, fallbackEmail string) *domain.Identity {
	return &domain.Identity{
		ID:    user.ID,
		Email: firstNonEmpty(user.Email, fallbackEmail),
		Name:  firstNonEmpty(user.Name, user.Username, domain.FallbackName),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
