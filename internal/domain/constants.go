package domain

// Wizard defaults
const (
	DefaultGuests        = 1
	DefaultDebounceMS    = 250
	MaxSpecialRequestLen = 500
)

// Fallback identity used when the session credential cannot be resolved
const (
	FallbackEmail = "user@luxora.local"
	FallbackName  = "Luxora User"
)

// FallbackRoomImage is shown for rooms without an image reference
const FallbackRoomImage = "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=1600&q=80"

// FilterAll disables a category/status filter
const FilterAll = "All"

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"
