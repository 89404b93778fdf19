package handlers

import (
	"sync"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/utils/fxrates"
	"github.com/SscSPs/price_dashboard/internal/utils/mapping"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the query tags used by the request DTOs to gin's validator:
// currency, scale, isodate (YYYY-MM-DD or DD/MM/YYYY) and yearmonth (YYYY-MM).
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseCurrency(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("scale", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseScale(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := mapping.NormalizeDate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
			_, err := fxrates.ParseMonth(fl.Field().String())
			return err == nil
		})
	})
}
