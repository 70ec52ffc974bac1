package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"logistica_xpto/internal/adapter/http/dto/response"
	"logistica_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeAppError renders an AppError. 500s get the bare {error} body so the
// wrapped cause never reaches the caller; everything else uses the
// success/message envelope.
func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus == http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, response.InternalError{Error: appErr.Message})
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindingError aggregates every field violation from a bind failure
// into one 400 response.
func writeBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ValidationErrors{Errors: fieldErrors(err)})
}

func fieldErrors(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []response.FieldError{{Field: "body", Message: "must be a valid JSON payload"}}
	}

	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// paramID parses a numeric-id path parameter. On failure it writes the 400
// response itself and reports false.
func paramID(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest)
		writeAppError(c, appErr)
		return 0, false
	}
	return v, true
}
