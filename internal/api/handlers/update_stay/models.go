package update_stay

import "github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"

// UpdateStayRequest HTTP request model. Отсутствующие поля не меняются, пустая дата очищается.
type UpdateStayRequest struct {
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Guests   *int    `json:"guests,omitempty"`
}

// ToInput конвертирует HTTP request в модель usecase
func (r *UpdateStayRequest) ToInput() booking_wizard.StayInput {
	return booking_wizard.StayInput{
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   r.Guests,
	}
}
