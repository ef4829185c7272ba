package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cariesreview/catalog/internal/pkg/logger"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// RegisterBindingValidator installs the catalog's custom tags and JSON field
// naming on gin's binding validator.
func RegisterBindingValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn().Msg("gin binding validator is not go-playground/validator; custom tags not registered")
		return
	}
	validation.Register(v)
}
