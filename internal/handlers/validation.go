package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// ensureValidators registers the custom validators on gin's engine once.
func ensureValidators() error {
	registerValidatorsOnce.Do(func() {
		registerValidatorsErr = registerValidators()
	})
	return registerValidatorsErr
}

// registerValidators teaches gin's validator about decimal.Decimal fields.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("dgt0", decimalGreaterThanZero); err != nil {
		return fmt.Errorf("failed to register dgt0 validator: %w", err)
	}
	return nil
}

// decimalGreaterThanZero implements the "dgt0" tag.
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}
