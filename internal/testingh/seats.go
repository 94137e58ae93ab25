package testingh

import (
	"github.com/zestagio/cinema-booking/internal/types"
)

// Seats is a shorthand for building seat requests in tests.
func Seats(numbers ...int) []types.SeatNumber {
	result := make([]types.SeatNumber, 0, len(numbers))
	for _, n := range numbers {
		result = append(result, types.SeatNumber(n))
	}
	return result
}

// Taken builds an availability map of the given capacity with the listed seats taken.
func Taken(capacity int, numbers ...int) []bool {
	result := make([]bool, capacity)
	for _, n := range numbers {
		result[n-1] = true
	}
	return result
}

// CountTaken returns the number of taken seats in the availability map.
func CountTaken(availability []bool) int {
	var n int
	for _, taken := range availability {
		if taken {
			n++
		}
	}
	return n
}
