package handlers

import (
	"net/http"

	intconfig "shopbackend/internal/config"
	intdb "shopbackend/internal/db"

	"github.com/gin-gonic/gin"
)

// Connected is the legacy root liveness probe.
func Connected(c *gin.Context) {
	c.String(http.StatusOK, "connected")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "shop backend running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}
	if !intdb.HasTable(intconfig.DB, "users") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "users table missing, run the schema first"})
		return
	}
	if !intdb.HasColumn(intconfig.DB, "users", "session_token") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "users.session_token column missing, schema is outdated"})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "users_in_db": count})
}
