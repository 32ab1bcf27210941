package api

import (
	"alcyxob/workout-sessions/internal/domain"
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the calendar tags used in request bindings:
// isodate (YYYY-MM-DD) and clocktime (HH:MM or HH:MM:SS, empty clears).
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("isodate", validateISODate); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("clocktime", validateClockTime)
	})
	return registerErr
}

func validateISODate(fl validator.FieldLevel) bool {
	return domain.IsValidDate(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	clock := fl.Field().String()
	return clock == "" || domain.IsValidClockTime(clock)
}

// validationMessage turns binder errors into a short client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body: " + err.Error()
	}
	first := verrs[0]
	switch first.Tag() {
	case "required":
		return "Validation error: " + first.Field() + " is required"
	case "isodate":
		return "Validation error: " + first.Field() + " must be YYYY-MM-DD"
	case "clocktime":
		return "Validation error: " + first.Field() + " must be HH:MM or HH:MM:SS"
	default:
		return "Validation error: " + first.Field() + " failed on " + first.Tag()
	}
}
