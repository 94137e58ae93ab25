package seatpool

import (
	"context"
	"errors"

	"github.com/zestagio/cinema-booking/internal/types"
)

var (
	// ErrInvalidRequest means the request can never succeed: it is empty,
	// repeats a seat or names a seat that does not exist.
	ErrInvalidRequest = errors.New("invalid seats request")

	// ErrSeatsTaken means at least one requested seat is already reserved.
	ErrSeatsTaken = errors.New("seats already taken")
)

// Pool represents concurrent-safe fixed set of numbered seats.
// Select is all-or-nothing: a failed call never changes availability.
type Pool interface {
	Capacity() int
	Select(ctx context.Context, seats []types.SeatNumber) error
	Availability() []bool
	Reserved() int
}
