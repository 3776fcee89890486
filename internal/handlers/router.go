package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yububu-edu/progress-service/internal/services"
)

type HandlerManager struct {
	progressHandler *ProgressHandler
	badgeHandler    *BadgeHandler
}

func NewHandlerManager(
	progressService services.ProgressService,
	gamificationService services.GamificationService,
	reportService services.ReportService,
	logger *slog.Logger,
) *HandlerManager {
	return &HandlerManager{
		progressHandler: NewProgressHandler(progressService, reportService, logger),
		badgeHandler:    NewBadgeHandler(gamificationService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		progress := v1.Group("/progress")
		{
			progress.POST("/complete", hm.progressHandler.CompleteChapter)
		}

		students := v1.Group("/students")
		{
			students.GET("/:id/progress", hm.progressHandler.GetStudentProgress)
			students.GET("/:id/analytics", hm.progressHandler.GetAnalytics)
			students.GET("/:id/report.xlsx", hm.progressHandler.ExportReport)
			students.GET("/:id/badges", hm.badgeHandler.GetStudentBadges)
			students.GET("/:id/leaderboard-position", hm.badgeHandler.GetLeaderboardPosition)
		}
	}
}
