package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsSummaryHandler aggregates the archive for the dashboard.
// GET /api/admin/analytics?start=...&end=... or ?days=N (default 90).
func (hb *HandlerBundle) AnalyticsSummaryHandler(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		days := 90
		if d, err := strconv.Atoi(c.Query("days")); err == nil && d > 0 {
			days = d
		}
		now := time.Now().UTC()
		end = now.Format("2006-01-02")
		start = now.AddDate(0, 0, -days).Format("2006-01-02")
	}

	summary, err := hb.Records.Summary(c.Request.Context(), start, end)
	if err != nil {
		getLogger(c).Error("analytics aggregation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "analytics backend failed"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// NotificationsFeedHandler returns the operator's notification feed.
// GET /api/admin/notifications?limit=N
func (hb *HandlerBundle) NotificationsFeedHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	feed, err := hb.Notifs.Feed(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("notification feed read failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "notification backend failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": feed})
}
