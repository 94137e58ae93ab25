package report

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	customersimulator "github.com/zestagio/cinema-booking/internal/services/customer-simulator"
	"github.com/zestagio/cinema-booking/internal/types"
)

const (
	takenMark = "[X]"
	freeMark  = "[ ]"
)

type cinema interface {
	Theatres() []types.TheatreNumber
	Availability(theatre types.TheatreNumber) ([]bool, error)
}

// Seats renders availability as one mark per seat.
func Seats(availability []bool) string {
	var b strings.Builder
	b.Grow(len(availability) * len(takenMark))
	for _, taken := range availability {
		if taken {
			b.WriteString(takenMark)
		} else {
			b.WriteString(freeMark)
		}
	}
	return b.String()
}

func WriteAvailability(w io.Writer, theatre types.TheatreNumber, availability []bool) error {
	_, err := fmt.Fprintf(w, "\nTheatre %d Seat Availability:\nSeats: %s\n", theatre, Seats(availability))
	return err
}

// WriteCinema writes every theatre in order, a failed theatre does not stop the rest.
func WriteCinema(w io.Writer, c cinema) (err error) {
	for _, th := range c.Theatres() {
		availability, aErr := c.Availability(th)
		if aErr != nil {
			err = multierr.Append(err, fmt.Errorf("get theatre %d availability: %v", th, aErr))
			continue
		}
		err = multierr.Append(err, WriteAvailability(w, th, availability))
	}
	return err
}

func WriteSummary(w io.Writer, r customersimulator.Result) error {
	_, err := fmt.Fprintf(w,
		"\nCustomers: %d, reserved: %d, conflicts: %d, invalid: %d, abandoned: %d, seats reserved: %d\n",
		len(r.Customers), r.Reserved, r.Conflicts, r.Invalid, r.Abandoned, r.SeatsReserved)
	return err
}
