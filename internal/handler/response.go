package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/healthlab/portal-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondBindingError turns a request-binding failure into a 400. When
// the failure comes from binding-tag validation it carries the same
// field-keyed shape as service-level validation errors.
func RespondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on " + fe.Tag() + " validation"
		}
		c.JSON(http.StatusBadRequest, &Response{
			Status:  "error",
			Message: "please fix the errors in the form",
			Data:    gin.H{"errors": fields},
		})
		return
	}
	c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
}

// RespondError maps service errors onto HTTP responses. Validation
// failures carry their field map so the client can render per-field
// messages.
func RespondError(c *gin.Context, err error) {
	if ve, ok := errors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, &Response{
			Status:  "error",
			Message: "please fix the errors in the form",
			Data:    gin.H{"errors": ve.Fields},
		})
		return
	}

	switch {
	case errors.IsCode(err, errors.ErrNotFound):
		c.JSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	case errors.IsCode(err, errors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case errors.IsCode(err, errors.ErrRegistrationRequired):
		c.JSON(http.StatusForbidden, NewErrorResponse("please register first before booking a lab test"))
	case errors.IsCode(err, errors.ErrStorage):
		c.JSON(http.StatusInternalServerError, NewErrorResponse("cannot persist data"))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
	}
}
