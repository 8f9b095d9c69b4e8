package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
