package controllers

import (
	"Backend-KidCheckin/src/models"
	"Backend-KidCheckin/src/services/checkin"
	"Backend-KidCheckin/src/services/children"
	"Backend-KidCheckin/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// PreviewTag godoc
// @Summary Live tag preview
// @Description Provisional tag for the currently selected (uncommitted) program. The code ordinal is a fixed placeholder; never authoritative.
// @Tags tags
// @Produce json
// @Param childId query string true "Child ID"
// @Param program query string true "P1, P2 or both"
// @Success 200 {object} models.TagData
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tags/preview [get]
func PreviewTag(c *fiber.Ctx) error {
	childID := c.Query("childId")
	programParam := c.Query("program")
	if childID == "" || programParam == "" {
		return utils.HandleError(c, http.StatusBadRequest, "childId and program are required")
	}

	var program models.Program
	switch programParam {
	case "P1":
		program = models.ProgramP1
	case "P2":
		program = models.ProgramP2
	case "both":
		program = models.ProgramBoth
	default:
		return utils.HandleError(c, http.StatusBadRequest, "Unknown program")
	}

	child, err := children.GetChildByID(childID)
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch child")
	}

	date, err := checkin.ActiveSessionDate()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to read session date")
	}

	return c.JSON(checkin.PreviewTag(child, program, date))
}
