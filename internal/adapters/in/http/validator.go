package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		return err
	}
	return c.Validate(dest)
}
