package api

import (
	"alcyxob/workout-sessions/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DayHandler struct {
	workoutService service.WorkoutService
}

func NewDayHandler(workoutService service.WorkoutService) *DayHandler {
	return &DayHandler{workoutService: workoutService}
}

// --- DTOs ---

type CreateDayRequest struct {
	Date string `json:"date" binding:"required,isodate"`
}

type AddSessionToDayRequest struct {
	SessionID string `json:"sessionId" binding:"required,len=24,hexadecimal"`
}

type dayListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// --- Handler Methods ---

// CreateDay godoc
// @Summary Create (or fetch) the caller's day for a date
// @Description Idempotent, a second call returns the same day.
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day body CreateDayRequest true "Date"
// @Success 201 {object} service.DayView
// @Failure 400 {object} gin.H "Validation error"
// @Failure 409 {object} gin.H "Day created concurrently"
// @Router /days [post]
func (h *DayHandler) CreateDay(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	day, err := h.workoutService.CreateDay(c.Request.Context(), principal.ID, req.Date)
	if err != nil {
		respondWithServiceError(c, err, "create day")
		return
	}

	c.JSON(http.StatusCreated, day)
}

// GetDays godoc
// @Summary List the caller's days
// @Description Newest first, sessions resolved.
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {array} service.DayView
// @Router /days [get]
func (h *DayHandler) GetDays(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var q dayListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	days, err := h.workoutService.GetDays(c.Request.Context(), principal.ID, q.Page, q.Limit)
	if err != nil {
		respondWithServiceError(c, err, "retrieve days")
		return
	}

	c.JSON(http.StatusOK, days)
}

// GetDay godoc
// @Summary Get the caller's day for a date
// @Description Responds with null when the caller has no day on that date.
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.DayView
// @Failure 400 {object} gin.H "Invalid date"
// @Router /days/{date} [get]
func (h *DayHandler) GetDay(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	day, err := h.workoutService.GetDay(c.Request.Context(), principal.ID, c.Param("date"))
	if err != nil {
		respondWithServiceError(c, err, "retrieve day")
		return
	}

	if day == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, day)
}

// AddSessionToDay godoc
// @Summary Attach a session to the caller's day
// @Description Creates the day when needed. Attaching twice keeps a single reference.
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param session body AddSessionToDayRequest true "Session to attach"
// @Success 200 {object} service.DayView
// @Failure 400 {object} gin.H "Validation error"
// @Failure 403 {object} gin.H "Session belongs to someone else"
// @Failure 404 {object} gin.H "Session not found"
// @Router /days/{date}/sessions [post]
func (h *DayHandler) AddSessionToDay(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req AddSessionToDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}
	sessionID, err := primitive.ObjectIDFromHex(req.SessionID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid sessionId format.")
		return
	}

	day, err := h.workoutService.AddSessionToDay(c.Request.Context(), principal.ID, c.Param("date"), sessionID)
	if err != nil {
		respondWithServiceError(c, err, "attach session")
		return
	}

	c.JSON(http.StatusOK, day)
}

// RemoveSessionFromDay godoc
// @Summary Detach a session from the caller's day
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param sessionId path string true "Session ID"
// @Success 200 {object} service.DayView
// @Failure 404 {object} gin.H "Day not found"
// @Router /days/{date}/sessions/{sessionId} [delete]
func (h *DayHandler) RemoveSessionFromDay(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	sessionID, ok := objectIDParam(c, "sessionId")
	if !ok {
		return
	}

	day, err := h.workoutService.RemoveSessionFromDay(c.Request.Context(), principal.ID, c.Param("date"), sessionID)
	if err != nil {
		respondWithServiceError(c, err, "detach session")
		return
	}

	c.JSON(http.StatusOK, day)
}
