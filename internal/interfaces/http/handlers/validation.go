package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("carddigits", cardDigits)
	}
}

// cardDigits accepts card numbers made of digits only. Length bounds are
// enforced separately by min/max tags.
var cardDigits validator.Func = func(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if number == "" {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
