package testingh

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/cinema-booking/internal/logger"
	"github.com/zestagio/cinema-booking/internal/validator"
)

var Config config

type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"error" validate:"required,oneof=debug info warn error"`

	StressCustomers int   `envconfig:"STRESS_CUSTOMERS" default:"100" validate:"min=1,max=100000"`
	StressRounds    int   `envconfig:"STRESS_ROUNDS" default:"20" validate:"min=1,max=10000"`
	StressSeed      int64 `envconfig:"STRESS_SEED" default:"1"`
}

func init() {
	if err := envconfig.Process("TEST", &Config); err != nil {
		panic(fmt.Sprintf("parse testing config: %v", err))
	}

	if err := validator.Validator.Struct(Config); err != nil {
		panic(fmt.Sprintf("validate testing config: %v", err))
	}

	logger.MustInit(logger.NewOptions(Config.LogLevel))
}
