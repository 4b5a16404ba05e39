package booking_wizard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
	"github.com/m04kA/SMC-LuxoraClient/pkg/metrics"
)

// reevaluateLocked сбрасывает результат проверки и планирует новую через debounce.
// Возвращает локальную ошибку валидации гостей, если запрос не нужен.
func (w *Wizard) reevaluateLocked() error {
	w.generation++
	w.cancelPendingLocked()
	w.result = nil
	w.availabilityErr = ""

	if w.room == nil {
		return nil
	}

	if w.room.ExceedsCapacity(w.stay.GuestCount()) {
		w.availabilityErr = fmt.Sprintf(msgMaxGuests, w.room.MaxGuests)
		w.recordCheck(metrics.OutcomeCapacity)
		return fmt.Errorf("%w: %s", ErrCapacityExceeded, w.availabilityErr)
	}

	if w.stay.CheckIn.IsZero() || w.stay.CheckOut.IsZero() || w.stay.Nights() <= 0 {
		return nil
	}

	gen := w.generation
	w.timer = w.scheduler.AfterFunc(w.debounce, func() {
		w.runCheck(gen)
	})
	return nil
}

// cancelPendingLocked останавливает таймер и отменяет запрос в полете
func (w *Wizard) cancelPendingLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.inflight != nil {
		w.inflight()
		w.inflight = nil
	}
	w.availabilityLoading = false
}

// runCheck выполняется по истечении debounce
func (w *Wizard) runCheck(gen uint64) {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.inflight = cancel
	w.timer = nil
	w.availabilityLoading = true
	query := luxoraapi.AvailabilityQuery{
		RoomType: w.room.RoomType,
		CheckIn:  w.stay.CheckIn,
		CheckOut: w.stay.CheckOut,
	}
	w.mu.Unlock()

	result, err := w.availability.CheckAvailability(ctx, query)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		w.logger.Info("CheckAvailability: discarding stale response for %s %s..%s", query.RoomType, query.CheckIn, query.CheckOut)
		w.recordCheck(metrics.OutcomeStale)
		return
	}

	w.inflight = nil
	w.availabilityLoading = false

	if err != nil {
		w.availabilityErr = luxoraapi.MessageOf(err, msgCheckFailed)
		w.logger.Warn("CheckAvailability: %s %s..%s failed: %v", query.RoomType, query.CheckIn, query.CheckOut, err)
		w.recordCheck(metrics.OutcomeError)
		return
	}

	w.result = result
	w.recordCheck(metrics.OutcomeApplied)
}
