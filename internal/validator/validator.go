package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// joinCodeRegex matches valid join codes: exactly 8 alphanumeric characters.
// Codes are stored uppercase but matching is case-insensitive for user input.
var joinCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

// validateJoinCode validates that a string is a valid team join code
func validateJoinCode(fl validator.FieldLevel) bool {
	return joinCodeRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("joincode", validateJoinCode)
	}
}
