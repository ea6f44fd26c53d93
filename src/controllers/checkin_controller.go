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

type checkInRequest struct {
	ChildID      string              `json:"childId" validate:"required"`
	Program      string              `json:"program" validate:"required,oneof=P1 P2 both"`
	MedicalCheck models.MedicalCheck `json:"medicalCheck"`
	CheckedInBy  string              `json:"checkedInBy"`
}

type programResult struct {
	Program models.Program           `json:"program"`
	Record  *models.AttendanceRecord `json:"record,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// CheckInChild godoc
// @Summary Check in a child
// @Description Records presence for one program, or for both sessions when program is "both". Partial success on "both" is reported per program, not rolled back.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body checkInRequest true "Check-in request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkins [post]
func CheckInChild(c *fiber.Ctx) error {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	if req.Program != "both" {
		rec, err := checkin.CheckInChild(req.ChildID, models.Program(req.Program), req.MedicalCheck, req.CheckedInBy)
		if err != nil {
			return handleCheckInError(c, err)
		}

		tag := buildTag(req.ChildID, rec.Program, rec.UniqueCode, rec.Date)
		return c.JSON(fiber.Map{
			"record": rec,
			"tag":    tag,
		})
	}

	// "both" is two independent single-program check-ins; the first is never
	// rolled back when the second fails
	results := make([]programResult, 0, 2)
	var p1Record, lastRecord *models.AttendanceRecord
	var firstErr error
	for _, program := range []models.Program{models.ProgramP1, models.ProgramP2} {
		rec, err := checkin.CheckInChild(req.ChildID, program, req.MedicalCheck, req.CheckedInBy)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			results = append(results, programResult{Program: program, Error: userMessage(err)})
			continue
		}
		results = append(results, programResult{Program: program, Record: rec})
		lastRecord = rec
		if program == models.ProgramP1 {
			p1Record = rec
		}
	}

	if lastRecord == nil {
		// both sessions rejected; report the first failure once
		return handleCheckInError(c, firstErr)
	}

	// the combined tag shows a single code: the P1 code with the program
	// suffix swapped for the combined marker
	var tag *models.TagData
	if p1Record != nil && len(results) == 2 && results[1].Record != nil {
		tag = buildTag(req.ChildID, models.ProgramBoth, checkin.CombineCode(p1Record.UniqueCode), p1Record.Date)
	} else {
		tag = buildTag(req.ChildID, lastRecord.Program, lastRecord.UniqueCode, lastRecord.Date)
	}

	return c.JSON(fiber.Map{
		"results": results,
		"tag":     tag,
	})
}

func buildTag(childID string, program models.Program, code, date string) *models.TagData {
	child, err := children.GetChildByID(childID)
	if err != nil {
		return nil
	}
	tag := checkin.ToTagData(child, program, code, date)
	return &tag
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, checkin.ErrChildNotFound):
		return "Child not found"
	case errors.Is(err, checkin.ErrIncompleteScreening):
		return "Medical screening incomplete: all three checks must be confirmed"
	case errors.Is(err, checkin.ErrInvalidProgram):
		return "Unknown program"
	default:
		return "Check-in failed: storage error"
	}
}

func handleCheckInError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkin.ErrChildNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Child not found")
	case errors.Is(err, checkin.ErrIncompleteScreening):
		return utils.HandleError(c, http.StatusUnprocessableEntity, "Medical screening incomplete: all three checks must be confirmed")
	case errors.Is(err, checkin.ErrInvalidProgram):
		return utils.HandleError(c, http.StatusBadRequest, "Unknown program")
	default:
		return utils.HandleError(c, http.StatusInternalServerError, "Check-in failed: storage error")
	}
}

// GetAttendanceByDate godoc
// @Summary Attendance for a date
// @Tags checkins
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.AttendanceRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /checkins/date/{date} [get]
func GetAttendanceByDate(c *fiber.Ctx) error {
	records, err := checkin.GetAttendanceForDate(c.Params("date"))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch attendance")
	}
	return c.JSON(records)
}

// GetAttendanceByChild godoc
// @Summary Attendance history for a child
// @Tags checkins
// @Produce json
// @Param childId path string true "Child ID"
// @Success 200 {array} models.AttendanceRecord
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkins/child/{childId} [get]
func GetAttendanceByChild(c *fiber.Ctx) error {
	records, err := checkin.GetAttendanceForChild(c.Params("childId"))
	if err != nil {
		if errors.Is(err, checkin.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch attendance")
	}
	return c.JSON(records)
}

// GetSessionDate godoc
// @Summary Active session date
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /session/date [get]
func GetSessionDate(c *fiber.Ctx) error {
	date, err := checkin.ActiveSessionDate()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to read session date")
	}
	return c.JSON(fiber.Map{"date": date})
}

// SetSessionDate godoc
// @Summary Set active session date
// @Tags session
// @Accept json
// @Produce json
// @Param body body map[string]string true "{date: YYYY-MM-DD}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /session/date [put]
func SetSessionDate(c *fiber.Ctx) error {
	var body struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&body); err != nil || body.Date == "" {
		return utils.HandleError(c, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
	}
	if err := checkin.SetActiveSessionDate(body.Date); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return c.JSON(fiber.Map{"message": "Session date updated", "date": body.Date})
}
