package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError maps a core error onto the right HTTP response.
func FromError(c *gin.Context, err error) {
	switch {
	case IsValidation(err):
		BadRequest(c, "validation_error", err.Error())
	case IsConflict(err):
		Conflict(c, "slot_conflict", err.Error())
	case IsNotFound(err):
		NotFound(c, "not_found", err.Error())
	case IsStore(err):
		Internal(c, "store_error", "storage failure")
	default:
		var be BusinessError
		if errors.As(err, &be) {
			BadRequest(c, be.Code, be.Code)
			return
		}
		Internal(c, "internal_error", "unexpected error")
	}
}
