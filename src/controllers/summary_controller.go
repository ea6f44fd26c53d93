package controllers

import (
	"Backend-KidCheckin/src/services/checkin"
	"Backend-KidCheckin/src/services/summaries"
	"Backend-KidCheckin/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetSummaryByDate godoc
// @Summary Attendance summary for a date
// @Tags summaries
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.AttendanceSummary
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /summaries/{date} [get]
func GetSummaryByDate(c *fiber.Ctx) error {
	summary, err := summaries.GetSummaryForDate(c.Params("date"))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch summary")
	}
	if summary == nil {
		return utils.HandleError(c, http.StatusNotFound, "No summary for this date")
	}
	return c.JSON(summary)
}

// GetTodayTotals godoc
// @Summary Dashboard totals for the active session date
// @Tags summaries
// @Produce json
// @Success 200 {object} models.TodayTotals
// @Failure 500 {object} models.ErrorResponse
// @Router /summaries/today/totals [get]
func GetTodayTotals(c *fiber.Ctx) error {
	date, err := checkin.ActiveSessionDate()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to read session date")
	}
	totals, err := summaries.GetTotalsForDate(date)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch totals")
	}
	return c.JSON(totals)
}
