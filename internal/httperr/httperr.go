package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Canonical auth gate messages, part of the public contract.
const (
	MsgUnauthorized = "Unauthorized access!"
	MsgForbidden    = "Forbidden access!"
)

type HTTPError struct {
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context) {
	Write(c, http.StatusUnauthorized, MsgUnauthorized)
}

func Forbidden(c *gin.Context) {
	Write(c, http.StatusForbidden, MsgForbidden)
}
