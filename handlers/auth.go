package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"turfbook/config"
	"turfbook/utils"
)

const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler exchanges the operator credentials for a bearer token.
// POST /api/admin/login
func (hb *HandlerBundle) AdminLoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminUser == "" || cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
		return
	}
	if req.Username != cfg.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		getLogger(c).Warn("failed admin login", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(req.Username, adminTokenTTL)
	if err != nil {
		getLogger(c).Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
	})
}
