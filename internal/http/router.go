package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "shopbackend/internal/config"
	h "shopbackend/internal/http/handlers"
	"shopbackend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	// The session travels in a cookie, so credentialed requests must pass.
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetTokenSecret(env.TokenSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", h.Connected)

	auth := middleware.RequireAuth()
	admin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		product := api.Group("/product")
		{
			product.POST("/type", auth, admin, h.CreateProductType)
			product.GET("/type", auth, h.GetProductTypes)

			product.POST("", auth, admin, h.CreateProduct)
			product.POST("/filter", auth, h.FilterProducts)
			product.GET("", auth, h.GetProducts)
			product.GET("/catalog/pdf", auth, admin, h.CatalogPDF)

			product.POST("/brand", auth, admin, h.CreateBrand)
			product.GET("/brands", h.GetBrands)
		}

		users := api.Group("/users")
		{
			users.GET("/auth", auth, h.Auth)
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)
			users.GET("/logout", auth, h.Logout)
			users.POST("/uploadImage", auth, admin, h.UploadImage)
			users.GET("/removeImage", auth, admin, h.RemoveImage)
		}
	}

	return r
}
