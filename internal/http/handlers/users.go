package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"shopbackend/internal/domain"
	"shopbackend/internal/http/middleware"
	"shopbackend/internal/services"
	"shopbackend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session cookie lifetime in seconds; zero keeps it a session cookie like
// the legacy API did.
const cookieMaxAge = 0

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.CookieName, token, cookieMaxAge, "/", "", false, true)
}

func sessionService(c *gin.Context) services.SessionService {
	return services.SessionService{
		Secret:    tokenSecret,
		RequestID: middleware.GetRequestID(c),
	}
}

type registerRequest struct {
	Name     string      `json:"name"`
	Lastname string      `json:"lastname"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// POST /api/users/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
		return
	}

	svc := sessionService(c)
	_, token, err := svc.Register(services.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Lastname: strings.TrimSpace(req.Lastname),
		Email:    email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if domain.IsConflict(err) {
			// Legacy wire contract: conflicts come back in the body, not
			// as a status code.
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email is used already"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "err": err.Error()})
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/users/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := sessionService(c)
	_, token, err := svc.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotFound):
			c.JSON(http.StatusOK, gin.H{"loginSuccess": false, "message": "Auth failed, email not found"})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusOK, gin.H{"loginSuccess": false, "message": "wrong password"})
		default:
			RespondDomainError(c, err)
		}
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"loginSuccess": true})
}

// GET /api/users/auth
func Auth(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, user.ToProfile())
}

// GET /api/users/logout
func Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false, "error": true})
		return
	}

	if err := sessionService(c).Logout(user); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/users/uploadImage
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cannot read uploaded file", err)
		return
	}
	defer src.Close()

	key := "products/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if _, err := storage.Client().Put(key, src); err != nil {
		RespondError(c, http.StatusInternalServerError, "image upload failed", err)
		return
	}

	url, err := storage.Client().GetURL(key)
	if err != nil {
		url = key
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "public_id": key})
}

// GET /api/users/removeImage?public_id=...
func RemoveImage(c *gin.Context) {
	key := strings.TrimSpace(c.Query("public_id"))
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "public_id is required"})
		return
	}

	if err := storage.Client().Delete(key); err != nil {
		RespondError(c, http.StatusInternalServerError, "image removal failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
