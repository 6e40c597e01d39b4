package handlers

import (
	"net/http"

	"shopbackend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var tokenSecret = []byte("super-secret-key-change-me")

// SetTokenSecret wires the session signing secret from config at startup.
func SetTokenSecret(secret string) {
	if secret != "" {
		tokenSecret = []byte(secret)
	}
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
