package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shopbackend/internal/domain/models"
	"shopbackend/internal/repositories"
	"shopbackend/internal/services"

	"github.com/gin-gonic/gin"
)

type productPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Brand       int64    `json:"brand"`
	ProductType int64    `json:"productType"`
	Shipping    *bool    `json:"shipping"`
	Available   *bool    `json:"available"`
	Publish     *bool    `json:"publish"`
	Sold        int      `json:"sold"`
	Images      []string `json:"images"`
}

func (p productPayload) validate() string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "name is required"
	case len(p.Name) > 100:
		return "name is limited to 100 characters"
	case strings.TrimSpace(p.Description) == "":
		return "description is required"
	case p.Price == nil:
		return "price is required"
	case p.Brand == 0:
		return "brand is required"
	case p.ProductType == 0:
		return "productType is required"
	case p.Shipping == nil:
		return "shipping is required"
	case p.Available == nil:
		return "available is required"
	case p.Publish == nil:
		return "publish is required"
	}
	return ""
}

// POST /api/product
func CreateProduct(c *gin.Context) {
	var payload productPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": msg})
		return
	}

	repo := repositories.ProductRepository{}
	product, err := repo.Create(models.Product{
		Name:          strings.TrimSpace(payload.Name),
		Description:   payload.Description,
		Price:         *payload.Price,
		BrandID:       payload.Brand,
		ProductTypeID: payload.ProductType,
		Shipping:      *payload.Shipping,
		Available:     *payload.Available,
		Sold:          payload.Sold,
		Publish:       *payload.Publish,
		Images:        payload.Images,
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

type filterRequest struct {
	SortBy  string           `json:"sortBy"`
	Order   string           `json:"order"`
	Limit   any              `json:"limit"`
	Skip    any              `json:"skip"`
	Filters map[string][]any `json:"filters"`
}

// toIntPtr coerces the loosely typed numbers legacy clients send (JSON
// numbers or numeric strings); anything else stays absent.
func toIntPtr(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return &i
		}
	}
	return nil
}

// POST /api/product/filter
func FilterProducts(c *gin.Context) {
	var req filterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	spec := repositories.BuildFilterSpec(repositories.FilterParams{
		SortBy:  req.SortBy,
		Order:   req.Order,
		Limit:   toIntPtr(req.Limit),
		Skip:    toIntPtr(req.Skip),
		Filters: req.Filters,
	})

	repo := repositories.ProductRepository{}
	products, err := repo.Filter(spec)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "product filter failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"size": len(products), "products": products})
}

// GET /api/product?productId=&sortBy=&order=&limit=&publish=
func GetProducts(c *gin.Context) {
	repo := repositories.ProductRepository{}

	// The publish filter short-circuits everything else on this route.
	if publish := c.Query("publish"); publish == "true" || publish == "false" {
		products, err := repo.ListByPublish(publish == "true")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "product listing failed", err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	sortBy := c.Query("sortBy")
	order := c.Query("order")
	limit := c.Query("limit")

	if sortBy != "" || order != "" || limit != "" {
		spec := repositories.BuildFilterSpec(repositories.FilterParams{
			SortBy: sortBy,
			Order:  order,
			Limit:  toIntPtr(limit),
		})
		// Top-limit after sort; this branch never paginates.
		products, err := repo.ListSorted(spec)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "product listing failed", err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	if productID := strings.TrimSpace(c.Query("productId")); productID != "" {
		product, err := repo.GetFromFullListing(productID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "product lookup failed", err)
			return
		}
		// A miss renders as null, matching the legacy single-id branch.
		c.JSON(http.StatusOK, product)
		return
	}

	products, err := repo.ListAll()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "product listing failed", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/product/catalog/pdf
func CatalogPDF(c *gin.Context) {
	repo := repositories.ProductRepository{}
	svc := services.DocsService{Loader: func() ([]services.CatalogItem, error) {
		all, err := repo.ListAll()
		if err != nil {
			return nil, err
		}
		items := []services.CatalogItem{}
		for _, p := range all {
			if !p.Publish {
				continue
			}
			item := services.CatalogItem{
				Name:      p.Name,
				Price:     p.Price,
				Sold:      p.Sold,
				Available: p.Available,
			}
			if p.Brand != nil {
				item.BrandName = p.Brand.Name
			}
			if p.ProductType != nil {
				item.TypeName = p.ProductType.Name
			}
			items = append(items, item)
		}
		return items, nil
	}}

	data, filename, err := svc.GenerateCatalog()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "catalog export failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
