package config

import "time"

type Config struct {
	Global     GlobalConfig     `toml:"global"`
	Log        LogConfig        `toml:"log"`
	Sentry     SentryConfig     `toml:"sentry"`
	Servers    ServersConfig    `toml:"servers"`
	Cinema     CinemaConfig     `toml:"cinema"`
	Simulation SimulationConfig `toml:"simulation"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Debug DebugServerConfig `toml:"debug"`
}

// DebugServerConfig with an empty address disables the debug server.
type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

type CinemaConfig struct {
	Theatres int `toml:"theatres" validate:"min=1,max=100"`
	Seats    int `toml:"seats" validate:"min=1,max=100000"`
}

type SimulationConfig struct {
	Customers           int           `toml:"customers" validate:"min=1,max=100000"`
	MaxSeatsPerCustomer int           `toml:"max_seats_per_customer" validate:"min=1,max=100"`
	MinDelay            time.Duration `toml:"min_delay" validate:"min=0,max=1m"`
	MaxDelay            time.Duration `toml:"max_delay" validate:"min=0,max=1m,gtefield=MinDelay"`
	// Seed of the random source, zero means seeding from the current time.
	Seed int64 `toml:"seed"`
}
