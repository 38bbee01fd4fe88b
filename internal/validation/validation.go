// Package validation registers the custom binding tags used by request bodies.
package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
)

var (
	once   sync.Once
	regErr error
)

// Register adds the "currency" and "period" tags to gin's validator. It is
// safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			regErr = errors.New("gin validator is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("currency", validCurrency); err != nil {
			regErr = err
			return
		}
		regErr = v.RegisterValidation("period", validPeriod)
	})
	return regErr
}

func validCurrency(fl validator.FieldLevel) bool {
	return currency.Valid(fl.Field().String())
}

func validPeriod(fl validator.FieldLevel) bool {
	return billing.PeriodKind(strings.ToLower(fl.Field().String())).Valid()
}
