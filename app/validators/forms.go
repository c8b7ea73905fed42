package validators

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct validates a request struct against its validate tags.
func Struct(v any) error {
	return validate.Struct(v)
}
