package domain

// Identity is the best-effort display identity of the logged-in user
type Identity struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FallbackIdentity is assumed when a stored credential cannot be resolved
func FallbackIdentity() *Identity {
	return &Identity{Email: FallbackEmail, Name: FallbackName}
}
