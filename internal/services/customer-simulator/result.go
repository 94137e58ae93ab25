package customersimulator

import (
	"go.uber.org/atomic"

	"github.com/zestagio/cinema-booking/internal/types"
)

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeReserved
	OutcomeConflict
	OutcomeInvalid
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReserved:
		return "reserved"
	case OutcomeConflict:
		return "conflict"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeUnknown:
	}
	return "unknown"
}

type CustomerResult struct {
	Plan
	Outcome   Outcome
	BookingID types.BookingID
}

type Result struct {
	Reserved      int
	Conflicts     int
	Invalid       int
	Abandoned     int
	SeatsReserved int

	// Customers is indexed by customer id.
	Customers []CustomerResult
}

type counters struct {
	reserved      atomic.Int64
	conflicts     atomic.Int64
	invalid       atomic.Int64
	abandoned     atomic.Int64
	seatsReserved atomic.Int64
}

func (c *counters) add(o Outcome, seats int) {
	switch o {
	case OutcomeReserved:
		c.reserved.Inc()
		c.seatsReserved.Add(int64(seats))
	case OutcomeConflict:
		c.conflicts.Inc()
	case OutcomeInvalid:
		c.invalid.Inc()
	case OutcomeAbandoned:
		c.abandoned.Inc()
	case OutcomeUnknown:
	}
}

func (c *counters) result(customers []CustomerResult) Result {
	return Result{
		Reserved:      int(c.reserved.Load()),
		Conflicts:     int(c.conflicts.Load()),
		Invalid:       int(c.invalid.Load()),
		Abandoned:     int(c.abandoned.Load()),
		SeatsReserved: int(c.seatsReserved.Load()),
		Customers:     customers,
	}
}
