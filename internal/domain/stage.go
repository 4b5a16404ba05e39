package domain

// Stage is one step of the booking wizard
type Stage int

const (
	StageChoosingRoom Stage = iota + 1
	StageSelectingDates
	StageEnteringGuestDetails
	StageConfirmed
)

func (s Stage) String() string {
	switch s {
	case StageChoosingRoom:
		return "choosing_room"
	case StageSelectingDates:
		return "selecting_dates"
	case StageEnteringGuestDetails:
		return "entering_guest_details"
	case StageConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the four wizard stages
func (s Stage) IsValid() bool {
	return s >= StageChoosingRoom && s <= StageConfirmed
}
