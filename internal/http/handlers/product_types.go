package handlers

import (
	"net/http"
	"strings"

	"shopbackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// POST /api/product/type
func CreateProductType(c *gin.Context) {
	var payload namePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": msg})
		return
	}

	productType, err := repositories.ProductTypeRepository{}.Create(strings.TrimSpace(payload.Name))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "productType": productType})
}

// GET /api/product/type
func GetProductTypes(c *gin.Context) {
	types, err := repositories.ProductTypeRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "category listing failed", err)
		return
	}
	c.JSON(http.StatusOK, types)
}
