package inmemseatpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"

	seatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool"
	"github.com/zestagio/cinema-booking/internal/types"
)

var _ seatpool.Pool = (*Service)(nil)

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	capacity int `option:"mandatory" validate:"min=1,max=100000"`
}

type Service struct {
	capacity uint

	mu    sync.Mutex
	taken *bitset.BitSet
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Service{
		capacity: uint(opts.capacity),
		taken:    bitset.New(uint(opts.capacity)),
	}, nil
}

// NewPools creates count independent pools with the same capacity.
func NewPools(count, capacity int) ([]seatpool.Pool, error) {
	pools := make([]seatpool.Pool, 0, count)
	for i := 0; i < count; i++ {
		p, err := New(NewOptions(capacity))
		if err != nil {
			return nil, fmt.Errorf("create pool %d: %v", i+1, err)
		}
		pools = append(pools, p)
	}
	return pools, nil
}

func (s *Service) Capacity() int {
	return int(s.capacity)
}

func (s *Service) Select(ctx context.Context, seats []types.SeatNumber) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Capacity never changes, so the request shape is checked outside the lock.
	if err := s.validate(seats); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range seats {
		if s.taken.Test(n.Index()) {
			return fmt.Errorf("%w: seat %d", seatpool.ErrSeatsTaken, n)
		}
	}

	for _, n := range seats {
		s.taken.Set(n.Index())
	}
	return nil
}

func (s *Service) validate(seats []types.SeatNumber) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: no seats requested", seatpool.ErrInvalidRequest)
	}

	requested := bitset.New(s.capacity)
	for _, n := range seats {
		if n < 1 || uint(n) > s.capacity {
			return fmt.Errorf("%w: seat %d is out of range [1, %d]", seatpool.ErrInvalidRequest, n, s.capacity)
		}
		if requested.Test(n.Index()) {
			return fmt.Errorf("%w: seat %d requested twice", seatpool.ErrInvalidRequest, n)
		}
		requested.Set(n.Index())
	}
	return nil
}

func (s *Service) Availability() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]bool, s.capacity)
	for i := range result {
		result[i] = s.taken.Test(uint(i))
	}
	return result
}

func (s *Service) Reserved() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.taken.Count())
}
