package serverdebug

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/cinema-booking/internal/buildinfo"
	"github.com/zestagio/cinema-booking/internal/logger"
	"github.com/zestagio/cinema-booking/internal/report"
	"github.com/zestagio/cinema-booking/internal/types"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

type cinemaService interface {
	Theatres() []types.TheatreNumber
	Availability(theatre types.TheatreNumber) ([]bool, error)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr   string        `option:"mandatory" validate:"required,hostname_port"`
	cinema cinemaService `option:"mandatory" validate:"required"`
}

type Server struct {
	lg     *zap.Logger
	srv    *http.Server
	cinema cinemaService
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			lg.Debug("request",
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	s := &Server{
		lg: lg,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		cinema: opts.cinema,
	}
	index := newIndexPage()

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))

	{
		pprofMux := http.NewServeMux()
		pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
		pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
		index.addPage("/debug/pprof/", "Go std profiler")
		index.addPage("/debug/pprof/mutex", "Seat pools lock contention")
	}

	e.GET("/theatres", s.Theatres)
	index.addPage("/theatres", "Seat availability of every theatre")
	e.GET("/theatres/:number", s.Theatre)

	e.GET("/", s.index(index))
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(
		func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
		},
	)

	eg.Go(
		func() error {
			s.lg.Info("listen and serve", zap.String("addr", s.srv.Addr))

			if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen and serve: %v", err)
			}
			return nil
		},
	)

	return eg.Wait()
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

type theatreResponse struct {
	Number   types.TheatreNumber `json:"number"`
	Capacity int                 `json:"capacity"`
	Reserved int                 `json:"reserved"`
	Seats    string              `json:"seats"`
}

func (s *Server) Theatres(eCtx echo.Context) error {
	theatres := s.cinema.Theatres()
	resp := make([]theatreResponse, 0, len(theatres))
	for _, th := range theatres {
		t, err := s.theatre(th)
		if err != nil {
			return err
		}
		resp = append(resp, t)
	}
	return eCtx.JSON(http.StatusOK, resp)
}

func (s *Server) Theatre(eCtx echo.Context) error {
	n, err := strconv.Atoi(eCtx.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "theatre number must be an integer")
	}

	t, err := s.theatre(types.TheatreNumber(n))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return eCtx.JSON(http.StatusOK, t)
}

func (s *Server) theatre(th types.TheatreNumber) (theatreResponse, error) {
	availability, err := s.cinema.Availability(th)
	if err != nil {
		return theatreResponse{}, err
	}

	var reserved int
	for _, taken := range availability {
		if taken {
			reserved++
		}
	}

	return theatreResponse{
		Number:   th,
		Capacity: len(availability),
		Reserved: reserved,
		Seats:    report.Seats(availability),
	}, nil
}
