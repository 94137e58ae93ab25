package cinema

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	seatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool"
	"github.com/zestagio/cinema-booking/internal/types"
)

const serviceName = "cinema"

// ErrTheatreNotFound also matches seatpool.ErrInvalidRequest.
var ErrTheatreNotFound = fmt.Errorf("%w: theatre not found", seatpool.ErrInvalidRequest)

//go:generate mockgen -source=$GOFILE -destination=mocks/service_mock.gen.go -package=cinemamocks

type auditor interface {
	Audit(ctx context.Context, attempt Attempt)
}

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	pools   []seatpool.Pool `option:"mandatory" validate:"min=1,dive,required"`
	auditor auditor         `option:"mandatory" validate:"required"`
}

// Service keeps independent theatres, theatre N is backed by pools[N-1].
type Service struct {
	Options
	lg *zap.Logger
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Service{
		Options: opts,
		lg:      zap.L().Named(serviceName),
	}, nil
}

func (s *Service) Theatres() []types.TheatreNumber {
	result := make([]types.TheatreNumber, 0, len(s.pools))
	for i := range s.pools {
		result = append(result, types.TheatreNumber(i+1))
	}
	return result
}

func (s *Service) Capacity(theatre types.TheatreNumber) (int, error) {
	p, err := s.pool(theatre)
	if err != nil {
		return 0, err
	}
	return p.Capacity(), nil
}

func (s *Service) Availability(theatre types.TheatreNumber) ([]bool, error) {
	p, err := s.pool(theatre)
	if err != nil {
		return nil, err
	}
	return p.Availability(), nil
}

// SelectSeats reserves all requested seats in the theatre or none of them.
func (s *Service) SelectSeats(ctx context.Context, req SelectSeatsRequest) (types.BookingID, error) {
	attempt := Attempt{
		CustomerID: req.CustomerID,
		Theatre:    req.Theatre,
		Seats:      req.Seats,
	}

	attempt.Err = s.selectSeats(ctx, req)
	if errors.Is(attempt.Err, context.Canceled) || errors.Is(attempt.Err, context.DeadlineExceeded) {
		s.lg.Debug("selection abandoned",
			zap.Int("customer", int(req.CustomerID)),
			zap.Int("theatre", int(req.Theatre)))
		return types.BookingIDNil, attempt.Err
	}

	if attempt.Succeeded() {
		attempt.BookingID = types.NewBookingID()
	}
	s.auditor.Audit(ctx, attempt)

	return attempt.BookingID, attempt.Err
}

func (s *Service) selectSeats(ctx context.Context, req SelectSeatsRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("validate request: %w: %v", seatpool.ErrInvalidRequest, err)
	}

	p, err := s.pool(req.Theatre)
	if err != nil {
		return err
	}

	if err := p.Select(ctx, req.Seats); err != nil {
		return fmt.Errorf("select seats in theatre %d: %w", req.Theatre, err)
	}
	return nil
}

func (s *Service) pool(theatre types.TheatreNumber) (seatpool.Pool, error) {
	if theatre < 1 || int(theatre) > len(s.pools) {
		return nil, fmt.Errorf("%w: %d", ErrTheatreNotFound, theatre)
	}
	return s.pools[theatre-1], nil
}
