package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/placebetween/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("phase", func(fl validator.FieldLevel) bool {
			_, err := entity.ParsePhase(fl.Field().String())
			return err == nil
		})
	})
}
