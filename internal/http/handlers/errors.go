package handlers

import (
	"net/http"

	"shopbackend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsUnauthenticated(err):
		c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false, "error": true})
	case domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	default:
		RespondError(c, http.StatusInternalServerError, "internal error", nil)
	}
}
