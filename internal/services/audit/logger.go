package audit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zestagio/cinema-booking/internal/services/cinema"
	seatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool"
)

const serviceName = "audit"

const (
	OutcomeReserved = "reserved"
	OutcomeTaken    = "taken"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Logger writes one line per selection attempt.
type Logger struct {
	lg *zap.Logger
}

func New() *Logger {
	return NewWithLogger(zap.L())
}

func NewWithLogger(lg *zap.Logger) *Logger {
	return &Logger{lg: lg.Named(serviceName)}
}

func (l *Logger) Audit(_ context.Context, a cinema.Attempt) {
	fields := []zap.Field{
		zap.Int("customer", int(a.CustomerID)),
		zap.Int("theatre", int(a.Theatre)),
		zap.Stringer("seats", a.Seats),
		zap.String("outcome", Outcome(a.Err)),
	}

	if a.Succeeded() {
		l.lg.Info("seats reserved", append(fields, zap.Stringer("booking_id", a.BookingID))...)
		return
	}
	l.lg.Info("seats not reserved", append(fields, zap.Error(a.Err))...)
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeReserved
	case errors.Is(err, seatpool.ErrSeatsTaken):
		return OutcomeTaken
	case errors.Is(err, seatpool.ErrInvalidRequest):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}
