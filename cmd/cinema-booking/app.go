package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/cinema-booking/internal/config"
	"github.com/zestagio/cinema-booking/internal/report"
	serverdebug "github.com/zestagio/cinema-booking/internal/server-debug"
	"github.com/zestagio/cinema-booking/internal/services/audit"
	"github.com/zestagio/cinema-booking/internal/services/cinema"
	customersimulator "github.com/zestagio/cinema-booking/internal/services/customer-simulator"
	inmemseatpool "github.com/zestagio/cinema-booking/internal/services/seat-pool/in-mem"
)

// runApp races the configured customers against the cinema and writes the final report to out.
func runApp(ctx context.Context, cfg config.Config, out io.Writer) (customersimulator.Result, error) {
	lg := zap.L().Named("main")

	// Cinema.
	pools, err := inmemseatpool.NewPools(cfg.Cinema.Theatres, cfg.Cinema.Seats)
	if err != nil {
		return customersimulator.Result{}, fmt.Errorf("create theatres: %v", err)
	}

	cinemaSvc, err := cinema.New(cinema.NewOptions(pools, audit.New()))
	if err != nil {
		return customersimulator.Result{}, fmt.Errorf("create cinema: %v", err)
	}

	// Customers.
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lg.Info("simulation seed", zap.Int64("seed", seed))

	simulator, err := customersimulator.New(customersimulator.NewOptions(
		cfg.Simulation.Customers,
		cfg.Simulation.MaxSeatsPerCustomer,
		cfg.Simulation.MinDelay,
		cfg.Simulation.MaxDelay,
		rand.New(rand.NewPCG(uint64(seed), uint64(seed))), //nolint:gosec // simulation does not need crypto random
		cinemaSvc,
	))
	if err != nil {
		return customersimulator.Result{}, fmt.Errorf("create customer simulator: %v", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	runCtx, stopServers := context.WithCancel(egCtx)
	defer stopServers()

	// Servers.
	if addr := cfg.Servers.Debug.Addr; addr != "" {
		runtime.SetMutexProfileFraction(1)

		srvDebug, err := serverdebug.New(serverdebug.NewOptions(addr, cinemaSvc))
		if err != nil {
			return customersimulator.Result{}, fmt.Errorf("init debug server: %v", err)
		}
		eg.Go(func() error { return srvDebug.Run(runCtx) })
	}

	var result customersimulator.Result
	eg.Go(func() error {
		defer stopServers()

		var err error
		result, err = simulator.Run(runCtx)
		if err != nil {
			return fmt.Errorf("run customers: %v", err)
		}
		return nil
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return result, fmt.Errorf("wait app stop: %v", err)
	}

	return result, multierr.Combine(
		report.WriteCinema(out, cinemaSvc),
		report.WriteSummary(out, result),
	)
}
