package customersimulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/cinema-booking/internal/services/cinema"
	seatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool"
	"github.com/zestagio/cinema-booking/internal/types"
)

const serviceName = "customer-simulator"

var errNoTheatres = errors.New("cinema has no theatres")

//go:generate mockgen -source=$GOFILE -destination=mocks/service_mock.gen.go -package=customersimulatormocks

type cinemaService interface {
	Theatres() []types.TheatreNumber
	Capacity(theatre types.TheatreNumber) (int, error)
	SelectSeats(ctx context.Context, req cinema.SelectSeatsRequest) (types.BookingID, error)
}

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	customers int           `option:"mandatory" validate:"min=1,max=100000"`
	maxSeats  int           `option:"mandatory" validate:"min=1,max=100"`
	minDelay  time.Duration `option:"mandatory" validate:"min=0,max=1m"`
	maxDelay  time.Duration `option:"mandatory" validate:"min=0,max=1m"`
	rnd       *rand.Rand    `option:"mandatory" validate:"required"`
	cinema    cinemaService `option:"mandatory" validate:"required"`
}

// Service races customers against the cinema, one goroutine per customer.
type Service struct {
	Options
	lg *zap.Logger
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	if opts.maxDelay < opts.minDelay {
		return nil, fmt.Errorf("max delay %s is less than min delay %s", opts.maxDelay, opts.minDelay)
	}

	return &Service{
		Options: opts,
		lg:      zap.L().Named(serviceName),
	}, nil
}

// Run returns after every customer has either tried to select seats or given up.
// Service must not be run concurrently with itself because it owns the random source.
func (s *Service) Run(ctx context.Context) (Result, error) {
	plans, err := s.plan()
	if err != nil {
		return Result{}, fmt.Errorf("plan customers: %v", err)
	}

	var c counters
	customers := make([]CustomerResult, len(plans))

	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range plans {
		eg.Go(func() error {
			res, err := s.visit(ctx, p)
			if err != nil {
				return fmt.Errorf("customer %d: %w", p.CustomerID, err)
			}
			customers[i] = res
			c.add(res.Outcome, len(p.Seats))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return c.result(customers), err
	}

	r := c.result(customers)
	s.lg.Info("all customers are done",
		zap.Int("customers", len(plans)),
		zap.Int("reserved", r.Reserved),
		zap.Int("conflicts", r.Conflicts),
		zap.Int("invalid", r.Invalid),
		zap.Int("abandoned", r.Abandoned),
		zap.Int("seats_reserved", r.SeatsReserved))
	return r, nil
}

func (s *Service) visit(ctx context.Context, p Plan) (CustomerResult, error) {
	res := CustomerResult{Plan: p}

	t := time.NewTimer(p.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		res.Outcome = OutcomeAbandoned
		return res, nil
	case <-t.C:
	}

	bookingID, err := s.cinema.SelectSeats(ctx, cinema.SelectSeatsRequest{
		CustomerID: p.CustomerID,
		Theatre:    p.Theatre,
		Seats:      p.Seats,
	})

	switch {
	case err == nil:
		res.Outcome = OutcomeReserved
		res.BookingID = bookingID
	case errors.Is(err, seatpool.ErrSeatsTaken):
		res.Outcome = OutcomeConflict
	case errors.Is(err, seatpool.ErrInvalidRequest):
		res.Outcome = OutcomeInvalid
	case ctx.Err() != nil:
		res.Outcome = OutcomeAbandoned
	default:
		return res, fmt.Errorf("select seats: %w", err)
	}
	return res, nil
}
