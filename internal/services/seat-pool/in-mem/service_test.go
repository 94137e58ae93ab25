package inmemseatpool_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	seatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool"
	inmemseatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool/in-mem"
	"github.com/zestagio/cinema-booking/internal/testingh"
	"github.com/zestagio/cinema-booking/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ServiceSuite struct {
	testingh.ContextSuite
	pool seatpool.Pool
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ContextSuite.SetupTest()
	s.pool = s.newPool(5)
}

func (s *ServiceSuite) newPool(capacity int) seatpool.Pool {
	p, err := inmemseatpool.New(inmemseatpool.NewOptions(capacity))
	s.Require().NoError(err)
	return p
}

func (s *ServiceSuite) TestNew_InvalidCapacity() {
	for _, c := range []int{-1, 0, 100_001} {
		_, err := inmemseatpool.New(inmemseatpool.NewOptions(c))
		s.Error(err, "capacity %d", c)
	}
}

func (s *ServiceSuite) TestNewPools() {
	pools, err := inmemseatpool.NewPools(3, 20)
	s.Require().NoError(err)
	s.Require().Len(pools, 3)

	s.Require().NoError(pools[0].Select(s.Ctx, testingh.Seats(1)))
	for i, p := range pools {
		s.Equal(20, p.Capacity())
		s.Equal(i == 0, p.Availability()[0], "pool %d", i)
	}

	_, err = inmemseatpool.NewPools(2, 0)
	s.Require().Error(err)
}

func (s *ServiceSuite) TestEmpty() {
	s.Equal(5, s.pool.Capacity())
	s.Equal(0, s.pool.Reserved())
	s.Equal(testingh.Taken(5), s.pool.Availability())
}

func (s *ServiceSuite) TestSelectScenario() {
	// Arrange.
	s.Require().NoError(s.pool.Select(s.Ctx, testingh.Seats(2, 4)))
	s.Equal([]bool{false, true, false, true, false}, s.pool.Availability())

	// Action.
	err := s.pool.Select(s.Ctx, testingh.Seats(4))

	// Assert.
	s.Require().ErrorIs(err, seatpool.ErrSeatsTaken)
	s.Equal([]bool{false, true, false, true, false}, s.pool.Availability())

	s.Require().NoError(s.pool.Select(s.Ctx, testingh.Seats(1, 5)))
	s.Equal([]bool{true, true, false, true, true}, s.pool.Availability())
	s.Equal(4, s.pool.Reserved())
}

func (s *ServiceSuite) TestSelect_EmptyRequest() {
	for _, seats := range [][]types.SeatNumber{nil, {}} {
		err := s.pool.Select(s.Ctx, seats)
		s.Require().ErrorIs(err, seatpool.ErrInvalidRequest)
		s.Equal(testingh.Taken(5), s.pool.Availability())
	}
}

func (s *ServiceSuite) TestSelect_Boundaries() {
	for _, capacity := range []int{1, 2, 5, 20, 1000} {
		p := s.newPool(capacity)

		for _, seat := range []int{0, -1, capacity + 1} {
			err := p.Select(s.Ctx, testingh.Seats(seat))
			s.Require().ErrorIs(err, seatpool.ErrInvalidRequest, "capacity %d, seat %d", capacity, seat)
			s.Equal(testingh.Taken(capacity), p.Availability())
		}

		s.Require().NoError(p.Select(s.Ctx, testingh.Seats(capacity)), "capacity %d", capacity)
		if capacity > 1 {
			s.Require().NoError(p.Select(s.Ctx, testingh.Seats(1)), "capacity %d", capacity)
		}
	}
}

func (s *ServiceSuite) TestSelect_IsAtomic() {
	s.Require().NoError(s.pool.Select(s.Ctx, testingh.Seats(3)))
	before := s.pool.Availability()

	cases := []struct {
		name  string
		seats []types.SeatNumber
		err   error
	}{
		{name: "taken seat at the end", seats: testingh.Seats(1, 2, 3), err: seatpool.ErrSeatsTaken},
		{name: "taken seat at the start", seats: testingh.Seats(3, 4, 5), err: seatpool.ErrSeatsTaken},
		{name: "out of range seat at the end", seats: testingh.Seats(1, 2, 6), err: seatpool.ErrInvalidRequest},
		{name: "zero seat in the middle", seats: testingh.Seats(1, 0, 2), err: seatpool.ErrInvalidRequest},
		{name: "repeated free seat", seats: testingh.Seats(4, 4), err: seatpool.ErrInvalidRequest},
		{name: "invalid wins over taken", seats: testingh.Seats(3, 99), err: seatpool.ErrInvalidRequest},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			err := s.pool.Select(s.Ctx, tt.seats)
			s.Require().ErrorIs(err, tt.err)
			s.Equal(before, s.pool.Availability())
			s.Equal(1, s.pool.Reserved())
		})
	}
}

func (s *ServiceSuite) TestSelect_CanceledContext() {
	ctx, cancel := context.WithCancel(s.Ctx)
	cancel()

	err := s.pool.Select(ctx, testingh.Seats(1))
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(0, s.pool.Reserved())
}

func (s *ServiceSuite) TestAvailability_IsIdempotentAndCopied() {
	s.Require().NoError(s.pool.Select(s.Ctx, testingh.Seats(2)))

	first := s.pool.Availability()
	second := s.pool.Availability()
	s.Equal(first, second)

	first[0] = true
	s.False(s.pool.Availability()[0])
}

func (s *ServiceSuite) TestConcurrency_MutualExclusion() {
	const (
		capacity = 20
		maxSeats = 3
	)
	customers := testingh.Config.StressCustomers
	rnd := rand.New(rand.NewPCG(uint64(testingh.Config.StressSeed), 0)) //nolint:gosec // for test math/rand is OK

	for round := 0; round < testingh.Config.StressRounds; round++ {
		pool := s.newPool(capacity)

		requests := make([][]types.SeatNumber, customers)
		for i := range requests {
			perm := rnd.Perm(capacity)[:1+rnd.IntN(maxSeats)]
			for _, p := range perm {
				requests[i] = append(requests[i], types.SeatNumber(p+1))
			}
		}

		won := make([]bool, customers)
		start := make(chan struct{})
		var eg errgroup.Group
		for i := range requests {
			eg.Go(func() error {
				<-start
				err := pool.Select(s.Ctx, requests[i])
				if err == nil {
					won[i] = true
					return nil
				}
				s.ErrorIs(err, seatpool.ErrSeatsTaken)
				return nil
			})
		}
		close(start)
		s.Require().NoError(eg.Wait())

		owners := make(map[types.SeatNumber]int)
		var seatsWon int
		for i, ok := range won {
			if !ok {
				continue
			}
			seatsWon += len(requests[i])
			for _, n := range requests[i] {
				prev, dup := owners[n]
				s.Require().False(dup, "round %d: seat %d won by %d and %d", round, n, prev, i)
				owners[n] = i
			}
		}

		availability := pool.Availability()
		s.Equal(seatsWon, testingh.CountTaken(availability))
		s.Equal(seatsWon, pool.Reserved())
		s.LessOrEqual(seatsWon, capacity)
		for n := range owners {
			s.True(availability[n.Index()])
		}
	}
}

func (s *ServiceSuite) TestConcurrency_ReadersSeeWholeSelections() {
	const capacity = 100

	pool := s.newPool(capacity)

	ctx, cancel := context.WithCancel(s.Ctx)
	defer cancel()

	// Every selection takes a pair of neighbours, so a consistent snapshot
	// always holds an even number of taken seats in matching pairs.
	var readers errgroup.Group
	for i := 0; i < 4; i++ {
		readers.Go(func() error {
			for ctx.Err() == nil {
				availability := pool.Availability()
				for j := 0; j < capacity; j += 2 {
					s.Equal(availability[j], availability[j+1])
				}
			}
			return nil
		})
	}

	var writers errgroup.Group
	for j := 1; j < capacity; j += 2 {
		writers.Go(func() error {
			return pool.Select(s.Ctx, testingh.Seats(j, j+1))
		})
	}
	s.Require().NoError(writers.Wait())
	cancel()
	s.Require().NoError(readers.Wait())

	s.Equal(capacity, pool.Reserved())
}
