package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// Wizard мастер бронирования из четырех шагов:
// выбор номера -> даты и доступность -> данные гостя -> подтверждение.
//
// Каждое изменение номера, дат или гостей увеличивает generation.
// Отложенная проверка доступности и обработчик её ответа сравнивают
// сохраненный generation с текущим и ничего не делают, если он устарел.
type Wizard struct {
	availability AvailabilityClient
	bookings     BookingClient
	refresher    BookingsRefresher
	scheduler    Scheduler
	metrics      MetricsRecorder
	logger       Logger
	debounce     time.Duration

	mu      sync.Mutex
	stage   domain.Stage
	room    *domain.Room
	stay    domain.Stay
	contact Contact

	result              *domain.Availability
	availabilityLoading bool
	availabilityErr     string

	submitting bool
	submitErr  string
	receipt    *Receipt

	// generation номер последнего изменения входных данных проверки доступности
	generation uint64
	// epoch меняется при сбросе или смене номера; устаревший ответ на отправку не применяется
	epoch    uint64
	timer    Timer
	inflight context.CancelFunc
}

// Option настройка мастера
type Option func(*Wizard)

// WithScheduler подменяет планировщик (для тестирования)
func WithScheduler(s Scheduler) Option {
	return func(w *Wizard) {
		w.scheduler = s
	}
}

// WithMetrics включает учет исходов проверок доступности
func WithMetrics(m MetricsRecorder) Option {
	return func(w *Wizard) {
		w.metrics = m
	}
}

// WithRefresher задает список бронирований, перезагружаемый после создания
func WithRefresher(r BookingsRefresher) Option {
	return func(w *Wizard) {
		w.refresher = r
	}
}

// NewWizard создает новый экземпляр мастера бронирования
func NewWizard(
	availability AvailabilityClient,
	bookings BookingClient,
	debounce time.Duration,
	logger Logger,
	opts ...Option,
) *Wizard {
	w := &Wizard{
		availability: availability,
		bookings:     bookings,
		scheduler:    RealScheduler{},
		metrics:      nopMetrics{},
		logger:       logger,
		debounce:     debounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resetLocked()
	return w
}

// SelectRoom выбирает номер и переходит к выбору дат.
// Результат проверки, ошибки и подтверждение для прежнего номера сбрасываются,
// введенные даты и гости сохраняются.
func (w *Wizard) SelectRoom(room domain.Room) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.selectRoomLocked(room)
	return w.stateLocked(), err
}

// SelectRoomByType предварительный выбор номера по типу.
// Ничего не делает, если номер уже выбран или тип не найден.
func (w *Wizard) SelectRoomByType(roomType string, rooms []domain.Room) (State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.room != nil || roomType == "" {
		return w.stateLocked(), false
	}
	for i := range rooms {
		if rooms[i].RoomType == roomType {
			// ошибка вместимости уже отражена в состоянии
			_ = w.selectRoomLocked(rooms[i])
			return w.stateLocked(), true
		}
	}
	return w.stateLocked(), false
}

func (w *Wizard) selectRoomLocked(room domain.Room) error {
	w.logger.Info("SelectRoom: room id=%d type=%s", room.ID, room.RoomType)

	w.room = &room
	w.stage = domain.StageSelectingDates
	w.submitErr = ""
	w.receipt = nil
	w.epoch++
	return w.reevaluateLocked()
}

// UpdateStay частично обновляет даты и гостей и перепроверяет доступность.
// Превышение вместимости и гостей меньше одного возвращаются сразу, без запроса к backend.
func (w *Wizard) UpdateStay(in StayInput) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stay, err := applyStayInput(w.stay, in)
	if err != nil {
		w.logger.Warn("UpdateStay: %v", err)
		return w.stateLocked(), err
	}

	w.stay = stay
	localErr := w.reevaluateLocked()
	return w.stateLocked(), localErr
}

// UpdateContact частично обновляет контактные данные. Доступность не перепроверяется.
func (w *Wizard) UpdateContact(in ContactInput) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	contact, err := applyContactInput(w.contact, in)
	if err != nil {
		w.logger.Warn("UpdateContact: %v", err)
		return w.stateLocked(), err
	}
	w.contact = contact
	return w.stateLocked(), nil
}

// GoTo переходит к шагу, если его условие входа выполнено.
// Иначе состояние не меняется и возвращается false.
func (w *Wizard) GoTo(stage domain.Stage) (State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !stage.IsValid() || !w.canEnterLocked(stage) {
		return w.stateLocked(), false
	}
	w.stage = stage
	return w.stateLocked(), true
}

// Submit создает бронирование и переходит к подтверждению.
// При ошибке мастер остается на текущем шаге с сообщением об ошибке, повтор возможен.
func (w *Wizard) Submit(ctx context.Context) (*Receipt, error) {
	w.mu.Lock()

	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	w.submitErr = ""
	if err := w.validateSubmitLocked(); err != nil {
		w.logger.Warn("Submit: validation failed: %v", err)
		w.mu.Unlock()
		return nil, err
	}

	room := *w.room
	stay := w.stay
	nights := stay.Nights()
	total, _ := domain.QuotePrice(&room, nights, w.result)
	payload := luxoraapi.CreateBookingPayload{
		Name:            strings.TrimSpace(w.contact.Name),
		Email:           strings.TrimSpace(w.contact.Email),
		Phone:           strings.TrimSpace(w.contact.Phone),
		RoomType:        room.RoomType,
		CheckIn:         stay.CheckIn,
		CheckOut:        stay.CheckOut,
		Guests:          stay.GuestCount(),
		SpecialRequests: w.contact.SpecialRequests,
	}
	epoch := w.epoch
	w.submitting = true
	w.mu.Unlock()

	w.logger.Info("Submit: creating booking room_type=%s check_in=%s check_out=%s guests=%d",
		payload.RoomType, payload.CheckIn, payload.CheckOut, payload.Guests)

	created, err := w.bookings.CreateBooking(ctx, payload)

	w.mu.Lock()
	w.submitting = false
	current := epoch == w.epoch

	if err != nil {
		msg := luxoraapi.MessageOf(err, msgBookingFailed)
		if current {
			w.submitErr = msg
		}
		w.mu.Unlock()

		if errors.Is(err, luxoraapi.ErrRequestRejected) {
			w.logger.Warn("Submit: backend rejected booking: %v", err)
			return nil, fmt.Errorf("%w: %s", ErrBookingRejected, msg)
		}
		w.logger.Error("Submit: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: create booking: %v", ErrInternal, err)
	}

	receipt := &Receipt{
		BookingCode: created.BookingCode,
		ID:          created.ID,
		RoomName:    room.Name,
		RoomType:    room.RoomType,
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		Guests:      stay.GuestCount(),
		Total:       total,
	}

	if current {
		w.receipt = receipt
		w.stage = domain.StageConfirmed
	} else {
		w.logger.Warn("Submit: wizard was reset during submission, booking %s is not shown", receipt.BookingCode)
	}
	w.mu.Unlock()

	w.logger.Info("Submit: booking created code=%s shape=%s", created.BookingCode, created.Shape)

	if w.refresher != nil {
		if err := w.refresher.Refresh(ctx); err != nil {
			w.logger.Warn("Submit: failed to refresh bookings after create: %v", err)
		}
	}

	return receipt, nil
}

// Reset возвращает мастер в начальное состояние и отменяет ожидающую проверку
func (w *Wizard) Reset() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Info("Reset: wizard cleared")
	w.resetLocked()
	return w.stateLocked()
}

// Close отменяет ожидающую и выполняющуюся проверку доступности (уход со страницы)
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.cancelPendingLocked()
}

// State текущий снимок мастера
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Wizard) resetLocked() {
	w.generation++
	w.epoch++
	w.cancelPendingLocked()

	w.stage = domain.StageChoosingRoom
	w.room = nil
	w.stay = domain.Stay{Guests: domain.DefaultGuests}
	w.contact = Contact{}
	w.result = nil
	w.availabilityErr = ""
	w.submitErr = ""
	w.receipt = nil
}

func (w *Wizard) canEnterLocked(stage domain.Stage) bool {
	switch stage {
	case domain.StageChoosingRoom:
		return true
	case domain.StageSelectingDates:
		return w.room != nil
	case domain.StageEnteringGuestDetails:
		return w.result != nil && w.result.Available && w.stay.Nights() > 0
	case domain.StageConfirmed:
		return w.receipt != nil
	}
	return false
}

func (w *Wizard) stateLocked() State {
	nights := w.stay.Nights()
	total, estimate := domain.QuotePrice(w.room, nights, w.result)

	state := State{
		Stage:     w.stage,
		StageName: w.stage.String(),
		Stay:      w.stay,
		Contact:   w.contact,

		AvailabilityLoading: w.availabilityLoading,
		AvailabilityError:   w.availabilityErr,

		Submitting:  w.submitting,
		SubmitError: w.submitErr,

		Nights:          nights,
		Total:           total,
		TotalIsEstimate: estimate,

		CanGoSelectingDates:       w.canEnterLocked(domain.StageSelectingDates),
		CanGoEnteringGuestDetails: w.canEnterLocked(domain.StageEnteringGuestDetails),
		CanGoConfirmed:            w.canEnterLocked(domain.StageConfirmed),
	}
	if w.room != nil {
		room := *w.room
		state.Room = &room
	}
	if w.result != nil {
		result := *w.result
		state.Availability = &result
	}
	if w.receipt != nil {
		receipt := *w.receipt
		state.Receipt = &receipt
	}
	return state
}

// recordCheck учитывает исход проверки доступности
func (w *Wizard) recordCheck(outcome string) {
	w.metrics.IncAvailabilityCheck(outcome)
}

