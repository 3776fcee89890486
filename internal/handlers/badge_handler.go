package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yububu-edu/progress-service/internal/services"
)

// BadgeHandler serves badge and leaderboard reads.
type BadgeHandler struct {
	gamificationService services.GamificationService
	logger              *slog.Logger
}

func NewBadgeHandler(gamificationService services.GamificationService, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{
		gamificationService: gamificationService,
		logger:              logger,
	}
}

// GetStudentBadges lists every badge a student earned.
// GET /api/v1/students/:id/badges
func (h *BadgeHandler) GetStudentBadges(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	badges, err := h.gamificationService.GetStudentBadges(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "badges", Data: badges})
}

// GetLeaderboardPosition returns the student's rank by total score.
// GET /api/v1/students/:id/leaderboard-position
func (h *BadgeHandler) GetLeaderboardPosition(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	position, err := h.gamificationService.GetLeaderboardPosition(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"position": position})
}
