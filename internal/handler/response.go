package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/medcoop/clinic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessageResponse(message string) *Response {
	return &Response{
		Status:  "success",
		Message: message,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

func NewValidationResponse(messages []string) *Response {
	return &Response{
		Status:  "error",
		Message: "validation failed",
		Errors:  messages,
	}
}

// BindingErrorMessage flattens gin binding failures into a readable
// message instead of the raw validator dump.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return "invalid field " + f.Field() + ": failed " + f.Tag() + " check"
	}
	return err.Error()
}

// RespondWithError maps the application error taxonomy onto HTTP statuses.
func RespondWithError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
		return
	}

	switch appErr.Code {
	case errors.ErrNotFound:
		c.JSON(http.StatusNotFound, NewErrorResponse(appErr.Message))
	case errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, NewValidationResponse(appErr.Details))
	case errors.ErrReferentialIntegrity, errors.ErrUniqueness:
		c.JSON(http.StatusConflict, NewErrorResponse(appErr.Message))
	case errors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, NewErrorResponse(appErr.Message))
	case errors.ErrForbidden:
		c.JSON(http.StatusForbidden, NewErrorResponse(appErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
	}
}
