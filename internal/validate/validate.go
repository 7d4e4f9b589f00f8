package validate

// This package wraps go-playground/validator with the project's custom tags.
//
// e.g. internal/config/config.go
//   type TimerConfig struct {
//       Countdown     time.Duration `yaml:"countdown" validate:"gte=10ms,duration_multiple=10ms"`
//       ReleaseWindow time.Duration `yaml:"release_window" validate:"gte=10ms,duration_multiple=10ms"`
//   }

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Custom tag names registered on the shared validator.
const (
	TagDurationMultiple = "duration_multiple"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := v.RegisterValidation(TagDurationMultiple, durationMultiple); err != nil {
			panic(err)
		}
		validatorInst = v
	})
	return validatorInst
}

// durationMultiple accepts a time.Duration that is a whole multiple of the
// duration given as the tag parameter.
func durationMultiple(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Duration)
	if !ok {
		return false
	}
	step, err := time.ParseDuration(fl.Param())
	if err != nil || step <= 0 {
		return false
	}
	return d%step == 0
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
