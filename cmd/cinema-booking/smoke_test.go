package main

import (
	"bytes"
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zestagio/cinema-booking/internal/config"
	customersimulator "github.com/zestagio/cinema-booking/internal/services/customer-simulator"
)

var _ = Describe("Cinema Booking Smoke", func() {
	var (
		cfg config.Config
		out *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		cfg, err = config.ParseAndValidate(configExamplePath)
		Expect(err).ShouldNot(HaveOccurred())

		cfg.Servers.Debug.Addr = ""
		cfg.Simulation.MinDelay = 0
		cfg.Simulation.MaxDelay = 5 * time.Millisecond
		cfg.Simulation.Seed = 2024

		out = new(bytes.Buffer)
	})

	It("reports every theatre consistently with the customers outcome", func() {
		result, err := runApp(suiteCtx, cfg, out)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(result.Customers).To(HaveLen(cfg.Simulation.Customers))
		Expect(result.Reserved + result.Conflicts).To(Equal(cfg.Simulation.Customers))
		Expect(result.Invalid).To(BeZero())
		Expect(result.Abandoned).To(BeZero())
		Expect(result.SeatsReserved).To(BeNumerically("<=", cfg.Cinema.Theatres*cfg.Cinema.Seats))

		report := out.String()
		for _, header := range []string{
			"Theatre 1 Seat Availability:",
			"Theatre 2 Seat Availability:",
			"Theatre 3 Seat Availability:",
		} {
			Expect(report).To(ContainSubstring(header))
		}
		Expect(strings.Count(report, "Seats: ")).To(Equal(cfg.Cinema.Theatres))
		Expect(strings.Count(report, "[X]")).To(Equal(result.SeatsReserved))
		Expect(strings.Count(report, "[X]") + strings.Count(report, "[ ]")).
			To(Equal(cfg.Cinema.Theatres * cfg.Cinema.Seats))
		Expect(report).To(ContainSubstring("Customers: 100,"))
	})

	It("makes the same reservations for the same seed", func() {
		first, err := runApp(suiteCtx, cfg, out)
		Expect(err).ShouldNot(HaveOccurred())

		out.Reset()
		second, err := runApp(suiteCtx, cfg, out)
		Expect(err).ShouldNot(HaveOccurred())

		plans := func(r customersimulator.Result) []customersimulator.Plan {
			result := make([]customersimulator.Plan, 0, len(r.Customers))
			for _, c := range r.Customers {
				result = append(result, c.Plan)
			}
			return result
		}
		Expect(plans(second)).To(Equal(plans(first)))
		Expect(second.Reserved + second.Conflicts).To(Equal(cfg.Simulation.Customers))
	})

	It("leaves every seat free when customers give up before selecting", func() {
		cfg.Simulation.MinDelay = time.Minute
		cfg.Simulation.MaxDelay = time.Minute

		ctx, cancel := context.WithCancel(suiteCtx)
		cancel()

		result, err := runApp(ctx, cfg, out)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Abandoned).To(Equal(cfg.Simulation.Customers))
		Expect(result.SeatsReserved).To(BeZero())

		Expect(strings.Count(out.String(), "[X]")).To(BeZero())
		Expect(strings.Count(out.String(), "[ ]")).To(Equal(cfg.Cinema.Theatres * cfg.Cinema.Seats))
	})

	It("fails on a cinema without seats", func() {
		cfg.Cinema.Seats = 0

		_, err := runApp(suiteCtx, cfg, out)
		Expect(err).Should(HaveOccurred())
		Expect(out.String()).To(BeEmpty())
	})
})
