package controllers

import (
	"Backend-KidCheckin/src/models"
	"Backend-KidCheckin/src/services/children"
	"Backend-KidCheckin/src/utils"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = validator.New()

type createChildRequest struct {
	FirstName    string            `json:"firstName" validate:"required"`
	LastName     string            `json:"lastName" validate:"required"`
	BirthDate    string            `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Category     string            `json:"category" validate:"omitempty,oneof=member guest"`
	Guardians    []models.Guardian `json:"guardians" validate:"omitempty,dive"`
	Allergies    string            `json:"allergies"`
	SpecialNeeds bool              `json:"specialNeeds"`
	MedicalNotes string            `json:"medicalNotes"`
}

// CreateChild godoc
// @Summary Register a child
// @Description Register a new child profile at the front desk
// @Tags children
// @Accept json
// @Produce json
// @Param child body createChildRequest true "Child to register"
// @Success 201 {object} models.Child
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /children [post]
func CreateChild(c *fiber.Ctx) error {
	var req createChildRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
	child := models.Child{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    birthDate,
		Category:     models.Category(req.Category),
		Guardians:    req.Guardians,
		Allergies:    req.Allergies,
		SpecialNeeds: req.SpecialNeeds,
		MedicalNotes: req.MedicalNotes,
	}

	if err := children.CreateChild(&child); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to register child")
	}
	return c.Status(http.StatusCreated).JSON(child)
}

// SearchChildren godoc
// @Summary Search children
// @Description Case-insensitive substring search over first, last and full name
// @Tags children
// @Produce json
// @Param search query string false "Search keyword"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /children [get]
func SearchChildren(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	results, total, err := children.SearchChildren(params)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error searching children")
	}
	return c.JSON(models.NewPaginatedResponse(results, total, params))
}

// GetChild godoc
// @Summary Get child by id
// @Tags children
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} models.Child
// @Failure 404 {object} models.ErrorResponse
// @Router /children/{id} [get]
func GetChild(c *fiber.Ctx) error {
	child, err := children.GetChildByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch child")
	}
	return c.JSON(child)
}

// UpdateChild godoc
// @Summary Update child
// @Description Partial update of a child profile
// @Tags children
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Param child body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.Child
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /children/{id} [put]
func UpdateChild(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	// only profile fields may be patched over HTTP; check-in state is owned
	// by the orchestrator
	allowed := map[string]bool{
		"firstName": true, "lastName": true, "birthDate": true,
		"category": true, "guardians": true, "allergies": true,
		"specialNeeds": true, "medicalNotes": true,
	}
	patch := bson.M{}
	for k, v := range body {
		if !allowed[k] {
			continue
		}
		if k == "birthDate" {
			s, ok := v.(string)
			if !ok {
				return utils.HandleError(c, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
			}
			parsed, err := time.Parse("2006-01-02", s)
			if err != nil {
				return utils.HandleError(c, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
			}
			patch[k] = parsed
			continue
		}
		patch[k] = v
	}
	if len(patch) == 0 {
		return utils.HandleError(c, http.StatusBadRequest, "No updatable fields in request")
	}

	child, err := children.UpdateChild(c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to update child")
	}
	return c.JSON(child)
}

// AddSibling godoc
// @Summary Link siblings
// @Description Links two children as siblings (both directions)
// @Tags children
// @Produce json
// @Param id path string true "Child ID"
// @Param siblingId path string true "Sibling ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /children/{id}/siblings/{siblingId} [post]
func AddSibling(c *fiber.Ctx) error {
	err := children.AddSibling(c.Params("id"), c.Params("siblingId"))
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to link siblings")
	}
	return c.JSON(fiber.Map{"message": "Siblings linked"})
}

// RemoveSibling godoc
// @Summary Unlink siblings
// @Tags children
// @Produce json
// @Param id path string true "Child ID"
// @Param siblingId path string true "Sibling ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /children/{id}/siblings/{siblingId} [delete]
func RemoveSibling(c *fiber.Ctx) error {
	err := children.RemoveSibling(c.Params("id"), c.Params("siblingId"))
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Child not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to unlink siblings")
	}
	return c.JSON(fiber.Map{"message": "Siblings unlinked"})
}
