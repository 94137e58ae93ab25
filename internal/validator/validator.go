package validator

import (
	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

// Validator is shared by config parsing, request DTOs and generated options.
var Validator = validator.New(validator.WithRequiredStructEnabled())

func init() {
	optsGenValidator.Set(Validator)
}
