package api

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateHandler serves the admin template library.
type TemplateHandler struct {
	workoutService service.WorkoutService
}

func NewTemplateHandler(workoutService service.WorkoutService) *TemplateHandler {
	return &TemplateHandler{workoutService: workoutService}
}

// --- DTOs ---

// CreateTemplateRequest accepts calendar fields for compatibility; they are dropped.
type CreateTemplateRequest struct {
	Name      string            `json:"name" binding:"required"`
	Exercises []domain.Exercise `json:"exercises"`
	Tags      []string          `json:"tags"`
	Goal      string            `json:"goal"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	UserID    string            `json:"userId"`
	TrainerID string            `json:"trainerId"`
}

func (r CreateTemplateRequest) toInput() service.TemplateInput {
	input := service.TemplateInput{
		Name:      r.Name,
		Exercises: r.Exercises,
		Tags:      r.Tags,
		Goal:      r.Goal,
		Date:      r.Date,
		Time:      r.Time,
	}
	if id, err := primitive.ObjectIDFromHex(r.UserID); err == nil {
		input.UserID = &id
	}
	if id, err := primitive.ObjectIDFromHex(r.TrainerID); err == nil {
		input.TrainerID = &id
	}
	return input
}

type UpdateTemplateRequest struct {
	Name      *string           `json:"name"`
	Exercises []domain.Exercise `json:"exercises"`
	Tags      []string          `json:"tags"`
	Goal      *string           `json:"goal"`
}

// --- Handler Methods ---

// CreateTemplate godoc
// @Summary Create an admin template
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param template body CreateTemplateRequest true "Template details"
// @Success 201 {object} service.SessionView
// @Failure 400 {object} gin.H "Validation error"
// @Failure 403 {object} gin.H "Forbidden (not an admin)"
// @Router /admin/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	template, err := h.workoutService.CreateAdminTemplate(c.Request.Context(), req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "create template")
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetTemplates godoc
// @Summary List admin templates
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} service.TemplatePage
// @Router /admin/templates [get]
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	page, err := h.workoutService.GetAdminTemplates(c.Request.Context(), q.Page, q.Limit, q.Search)
	if err != nil {
		respondWithServiceError(c, err, "retrieve templates")
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpdateTemplate godoc
// @Summary Update an admin template
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param template body UpdateTemplateRequest true "Fields to change"
// @Success 200 {object} service.SessionView
// @Failure 404 {object} gin.H "Template not found"
// @Router /admin/templates/{id} [patch]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	template, err := h.workoutService.UpdateAdminTemplate(c.Request.Context(), templateID, service.TemplateUpdateInput{
		Name:      req.Name,
		Exercises: req.Exercises,
		Tags:      req.Tags,
		Goal:      req.Goal,
	})
	if err != nil {
		respondWithServiceError(c, err, "update template")
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary Delete an admin template
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Not an admin template"
// @Router /admin/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteAdminTemplate(c.Request.Context(), templateID); err != nil {
		respondWithServiceError(c, err, "delete template")
		return
	}

	c.Status(http.StatusNoContent)
}
