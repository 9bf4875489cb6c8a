package validator

import (
	"sync"

	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator with the custom tags registered
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("decimal", validateDecimal)
	})
	return validate
}

// ValidateRequest runs struct validation and converts failures into a
// validation error carrying one detail per offending field.
func ValidateRequest(req interface{}) error {
	err := GetValidator().Struct(req)
	if err == nil {
		return nil
	}

	details := map[string]interface{}{}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
	}

	return ierr.WithError(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}

func validateDecimal(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	d, err := decimal.NewFromString(value)
	return err == nil && types.QuantityInRange(d)
}
