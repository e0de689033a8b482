package request

import (
	"errors"
	"sync"

	"voltflow_crm/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the CRM tags to gin's binding engine. Safe to call
// more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("lead_source", validLeadSource)
	})
	return registerErr
}

func validLeadSource(fl validator.FieldLevel) bool {
	return entities.IsValidLeadSource(fl.Field().String())
}
