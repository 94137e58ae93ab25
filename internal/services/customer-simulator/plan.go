package customersimulator

import (
	"fmt"
	"slices"
	"time"

	"github.com/zestagio/cinema-booking/internal/types"
)

// Plan is what a single customer is going to do.
type Plan struct {
	CustomerID types.CustomerID
	Theatre    types.TheatreNumber
	Seats      types.SeatNumbers
	Delay      time.Duration
}

// plan draws every customer plan up front so a seed fully determines the workload.
func (s *Service) plan() ([]Plan, error) {
	theatres := s.cinema.Theatres()
	if len(theatres) == 0 {
		return nil, errNoTheatres
	}

	plans := make([]Plan, 0, s.customers)
	for i := 0; i < s.customers; i++ {
		theatre := theatres[s.rnd.IntN(len(theatres))]

		capacity, err := s.cinema.Capacity(theatre)
		if err != nil {
			return nil, fmt.Errorf("get theatre %d capacity: %v", theatre, err)
		}

		n := 1 + s.rnd.IntN(min(s.maxSeats, capacity))
		seats := make(types.SeatNumbers, 0, n)
		for _, idx := range s.rnd.Perm(capacity)[:n] {
			seats = append(seats, types.SeatNumber(idx+1))
		}
		slices.Sort(seats)

		delay := s.minDelay
		if spread := s.maxDelay - s.minDelay; spread > 0 {
			delay += time.Duration(s.rnd.Int64N(int64(spread) + 1))
		}

		plans = append(plans, Plan{
			CustomerID: types.CustomerID(i),
			Theatre:    theatre,
			Seats:      seats,
			Delay:      delay,
		})
	}
	return plans, nil
}
