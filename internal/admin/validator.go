package admin

import (
	"ShopBot/internal/core/domain"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator registers the panel's extra tags:
//
//	money: a non-negative decimal amount such as "12.50"
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMoney(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

// Validate returns validator.ValidationErrors for invalid input.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var tagMessages = map[string]string{
	"required": "обязательное поле",
	"min":      "слишком коротко",
	"max":      "слишком длинно",
	"money":    "сумма в формате 12.50",
	"number":   "целое число",
	"url":      "некорректный URL",
	"gt":       "выберите значение",
	"oneof":    "недопустимое значение",
}

// fieldErrors maps form field names to a human readable problem.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "некорректное значение"
		}
		out[fe.Field()] = msg
	}
	return out
}
