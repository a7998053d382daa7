package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turfbook/config"
)

// GetSiteHandler exposes the public site configuration the booking page
// renders from: courts, hours, peak window and contact details.
// GET /api/site
func (hb *HandlerBundle) GetSiteHandler(c *gin.Context) {
	site := config.Site()
	c.JSON(http.StatusOK, gin.H{
		"name":      site.Name,
		"address":   site.Address,
		"phone":     site.Phone,
		"whatsapp":  site.WhatsApp,
		"courts":    site.Courts,
		"hours":     site.Hours,
		"peakHours": site.PeakHours,
	})
}

// ReloadSiteHandler re-reads site.json so pricing and hours changes land
// without a restart. POST /api/admin/site/reload
func (hb *HandlerBundle) ReloadSiteHandler(c *gin.Context) {
	if _, err := config.LoadSiteConfig(); err != nil {
		getLogger(c).Error("site config reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload site configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reloaded": true})
}
