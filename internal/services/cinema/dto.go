package cinema

import (
	"github.com/zestagio/cinema-booking/internal/types"
	"github.com/zestagio/cinema-booking/internal/validator"
)

type SelectSeatsRequest struct {
	CustomerID types.CustomerID    `validate:"min=0"`
	Theatre    types.TheatreNumber `validate:"min=1"`
	Seats      []types.SeatNumber  `validate:"min=1,unique,dive,min=1"`
}

func (r SelectSeatsRequest) Validate() error {
	return validator.Validator.Struct(r)
}

// Attempt is an audit record of a single selection.
type Attempt struct {
	BookingID  types.BookingID
	CustomerID types.CustomerID
	Theatre    types.TheatreNumber
	Seats      types.SeatNumbers
	Err        error
}

func (a Attempt) Succeeded() bool {
	return a.Err == nil
}
