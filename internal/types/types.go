package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var errZeroID = errors.New("zero id")

// CustomerID identifies a customer competing for seats.
type CustomerID int

// TheatreNumber is a 1-based display label of a theatre.
type TheatreNumber int

// SeatNumber is a 1-based seat number inside a theatre.
type SeatNumber int

// Index returns the zero-based position of the seat in the availability map.
func (n SeatNumber) Index() uint { return uint(n - 1) }

type SeatNumbers []SeatNumber

func (s SeatNumbers) String() string {
	parts := make([]string, 0, len(s))
	for _, n := range s {
		parts = append(parts, strconv.Itoa(int(n)))
	}
	return strings.Join(parts, " ")
}

// BookingID identifies a successful seat selection.
type BookingID uuid.UUID

var BookingIDNil = BookingID(uuid.Nil)

func NewBookingID() BookingID {
	return BookingID(uuid.New())
}

func Parse(s string) (BookingID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BookingIDNil, fmt.Errorf("parse booking id: %v", err)
	}
	return BookingID(id), nil
}

func MustParse(s string) BookingID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id BookingID) String() string {
	return uuid.UUID(id).String()
}

func (id BookingID) IsZero() bool {
	return id == BookingIDNil
}

func (id BookingID) Validate() error {
	if id.IsZero() {
		return errZeroID
	}
	return nil
}

func (id BookingID) Matches(x any) bool {
	other, ok := x.(BookingID)
	return ok && other == id
}

func (id BookingID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *BookingID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}
