package middleware

import (
	"reflect"
	"strconv"
	"strings"

	"GameStore/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// RequestValidator plugs go-playground/validator into echo.Context.Validate.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator reports field errors by their JSON names and lets
// numeric tags (gte, lte, ...) apply to decimal fields. The decimals=N tag
// limits a decimal field to N fractional digits.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := asDecimal(field.Interface()); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{}, dto.Price{})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("decimals", maxDecimals); err != nil {
		panic(err)
	}
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case dto.Price:
		return d.Decimal, true
	}
	return decimal.Decimal{}, false
}

// maxDecimals reads the original field from the parent struct, since the
// custom type func hands validators a float64.
func maxDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(err)
	}
	field := reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return false
	}
	d, ok := asDecimal(field.Interface())
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(int32(places)))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "decimals":
		return "must have at most " + fe.Param() + " decimal places"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
