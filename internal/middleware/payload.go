package middleware

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const payloadKey = "validated_payload"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// ValidateBody decodes the JSON body into a new T and validates it before the
// handler runs. Invalid payloads are answered with 400 and never reach the
// handler. The decoded value is available through Payload.
func ValidateBody[T any]() echo.MiddlewareFunc {
	binder := &echo.DefaultBinder{}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := new(T)
			if err := binder.BindBody(c, req); err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
			}
			if err := c.Validate(req); err != nil {
				var verrs validator.ValidationErrors
				if !errors.As(err, &verrs) {
					return err
				}
				fields := make(map[string]string, len(verrs))
				for _, fe := range verrs {
					fields[fe.Field()] = describe(fe)
				}
				return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
					Error:  "validation failed",
					Errors: fields,
				})
			}
			c.Set(payloadKey, req)
			return next(c)
		}
	}
}

// Payload returns the body stored by ValidateBody[T], or nil when the route
// was registered without it.
func Payload[T any](c echo.Context) *T {
	p, _ := c.Get(payloadKey).(*T)
	return p
}
