package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"github.com/yububu-edu/progress-service/internal/services"
)

// ProgressHandler serves the completion and read endpoints of the progress
// engine.
type ProgressHandler struct {
	progressService services.ProgressService
	reportService   services.ReportService
	logger          *slog.Logger
}

func NewProgressHandler(progressService services.ProgressService, reportService services.ReportService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		reportService:   reportService,
		logger:          logger,
	}
}

// CompleteChapter records a chapter completion attempt.
// POST /api/v1/progress/complete
func (h *ProgressHandler) CompleteChapter(c *gin.Context) {
	var req services.CompleteChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	result, err := h.progressService.CompleteChapter(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("Complete chapter failed",
			"student_id", req.StudentID,
			"chapter_id", req.ChapterID,
			"error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "attempt recorded", Data: result})
}

// GetStudentProgress lists the progress records of one student.
// GET /api/v1/students/:id/progress
func (h *ProgressHandler) GetStudentProgress(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	filters := repositories.ProgressFilters{
		Limit:  parseIntQuery(c, "limit", 100),
		Offset: parseIntQuery(c, "offset", 0),
		SortBy: c.Query("sort_by"),
	}
	if completed := c.Query("completed"); completed != "" {
		value := completed == "true"
		filters.Completed = &value
	}

	records, total, err := h.progressService.GetStudentProgress(c.Request.Context(), studentID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"total": total,
	})
}

// GetAnalytics returns the aggregated progress rollup for one student.
// GET /api/v1/students/:id/analytics
func (h *ProgressHandler) GetAnalytics(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	analytics, err := h.progressService.GetAnalytics(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "analytics", Data: analytics})
}

// ExportReport streams the student's progress workbook.
// GET /api/v1/students/:id/report.xlsx
func (h *ProgressHandler) ExportReport(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	payload, err := h.reportService.ExportStudentReportExcel(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="progress-report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
