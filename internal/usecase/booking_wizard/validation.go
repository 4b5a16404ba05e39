package booking_wizard

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/pkg/types"
)

// applyStayInput применяет частичное обновление; формат даты проверяется сразу
func applyStayInput(stay domain.Stay, in StayInput) (domain.Stay, error) {
	if in.CheckIn != nil {
		d, err := parseDate(*in.CheckIn)
		if err != nil {
			return stay, fmt.Errorf("%w: check_in: %v", ErrInvalidInput, err)
		}
		stay.CheckIn = d
	}
	if in.CheckOut != nil {
		d, err := parseDate(*in.CheckOut)
		if err != nil {
			return stay, fmt.Errorf("%w: check_out: %v", ErrInvalidInput, err)
		}
		stay.CheckOut = d
	}
	if in.Guests != nil {
		if *in.Guests < 1 {
			return stay, fmt.Errorf("%w: %s", ErrInvalidGuests, msgGuestsAtLeast)
		}
		stay.Guests = *in.Guests
	}
	return stay, nil
}

// parseDate пустая строка очищает дату
func parseDate(s string) (types.DateString, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return types.NewDateStringFromString(s)
}

func applyContactInput(c Contact, in ContactInput) (Contact, error) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.SpecialRequests != nil {
		if len([]rune(*in.SpecialRequests)) > domain.MaxSpecialRequestLen {
			return c, fmt.Errorf("%w: special requests are limited to %d characters", ErrInvalidInput, domain.MaxSpecialRequestLen)
		}
		c.SpecialRequests = *in.SpecialRequests
	}
	return c, nil
}

// validateSubmitLocked проверки перед отправкой; сообщение сохраняется как ошибка отправки
func (w *Wizard) validateSubmitLocked() error {
	switch {
	case w.room == nil:
		w.submitErr = msgSelectRoom
		return fmt.Errorf("%w: %s", ErrNoRoomSelected, msgSelectRoom)
	case w.result == nil || !w.result.Available || w.stay.Nights() <= 0:
		w.submitErr = msgNotAvailable
		return fmt.Errorf("%w: %s", ErrNotAvailable, msgNotAvailable)
	case strings.TrimSpace(w.contact.Name) == "" || strings.TrimSpace(w.contact.Email) == "":
		w.submitErr = msgContactRequired
		return fmt.Errorf("%w: %s", ErrContactRequired, msgContactRequired)
	case w.stage != domain.StageEnteringGuestDetails:
		w.submitErr = msgGuestDetails
		return fmt.Errorf("%w: %s", ErrInvalidStage, msgGuestDetails)
	}
	return nil
}
