package handlers

import (
	"net/http"
	"strings"

	"shopbackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type namePayload struct {
	Name string `json:"name"`
}

func (p namePayload) validate() string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "name is required"
	case len(p.Name) > 100:
		return "name is limited to 100 characters"
	}
	return ""
}

// POST /api/product/brand
func CreateBrand(c *gin.Context) {
	var payload namePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": msg})
		return
	}

	repo := repositories.BrandRepository{}
	brand, err := repo.Create(strings.TrimSpace(payload.Name))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": err.Error()})
		return
	}

	brands, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "brand listing failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand, "resultArray": brands})
}

// GET /api/product/brands
func GetBrands(c *gin.Context) {
	brands, err := repositories.BrandRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "brand listing failed", err)
		return
	}
	c.JSON(http.StatusOK, brands)
}
