package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/zestagio/cinema-booking/internal/validator"
)

// Default is the classic setup: three theatres of twenty seats raced by a hundred customers.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log:    LogConfig{Level: "info"},
		Cinema: CinemaConfig{
			Theatres: 3,
			Seats:    20,
		},
		Simulation: SimulationConfig{
			Customers:           100,
			MaxSeatsPerCustomer: 3,
			MinDelay:            500 * time.Millisecond,
			MaxDelay:            time.Second,
		},
	}
}

// ParseAndValidate overlays the file on Default. Keys unknown to Config are rejected.
func ParseAndValidate(filename string) (Config, error) {
	conf := Default()

	md, err := toml.DecodeFile(filename, &conf)
	if err != nil {
		return conf, fmt.Errorf("decode cinema config: %v", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return conf, fmt.Errorf("unknown cinema config keys: %s", strings.Join(keys, ", "))
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, fmt.Errorf("validate cinema config: %v", err)
	}

	return conf, nil
}
