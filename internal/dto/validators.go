package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs decimal-aware validations on gin's binding
// engine. The builtin numeric tags (gte, lte) cannot inspect
// decimal.Decimal, so amounts and percentages get their own tags:
//
//	decimal_nonneg - value >= 0
//	decimal_pos    - value > 0
//	decimal_pct    - 0 <= value <= 100
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("decimal_nonneg", decimalNonNeg); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_pos", decimalPos); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_pct", decimalPct)
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return d, ok
}

func decimalNonNeg(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && !d.IsNegative()
}

func decimalPos(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.IsPositive()
}

func decimalPct(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}
