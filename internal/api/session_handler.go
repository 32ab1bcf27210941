package api

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionHandler struct {
	workoutService service.WorkoutService
}

func NewSessionHandler(workoutService service.WorkoutService) *SessionHandler {
	return &SessionHandler{workoutService: workoutService}
}

// --- DTOs ---

// CreateSessionRequest is the body of POST /sessions and POST /trainer/clients/{clientId}/sessions.
// givenBy is optional and must match the caller's role when present.
type CreateSessionRequest struct {
	Name      string            `json:"name" binding:"required"`
	GivenBy   domain.GivenBy    `json:"givenBy"`
	UserID    string            `json:"userId" binding:"omitempty,len=24,hexadecimal"` // admins only
	Date      string            `json:"date" binding:"omitempty,isodate"`
	Time      string            `json:"time" binding:"omitempty,clocktime"`
	Exercises []domain.Exercise `json:"exercises"`
	Tags      []string          `json:"tags"`
	Goal      string            `json:"goal"`
	Notes     string            `json:"notes"`
}

func (r CreateSessionRequest) toInput() service.CreateSessionInput {
	input := service.CreateSessionInput{
		Name:      r.Name,
		GivenBy:   r.GivenBy,
		Date:      r.Date,
		Time:      r.Time,
		Exercises: r.Exercises,
		Tags:      r.Tags,
		Goal:      r.Goal,
		Notes:     r.Notes,
	}
	if userID, err := primitive.ObjectIDFromHex(r.UserID); err == nil {
		input.UserID = &userID
	}
	return input
}

type ExerciseUpdateRequest struct {
	ExerciseID string  `json:"exerciseId" binding:"required"`
	TimeTaken  float64 `json:"timeTaken" binding:"gte=0"`
}

// UpdateSessionRequest is a partial update, absent fields are left alone.
type UpdateSessionRequest struct {
	Name            *string                 `json:"name"`
	Date            *string                 `json:"date" binding:"omitempty,isodate"`
	Time            *string                 `json:"time" binding:"omitempty,clocktime"`
	Exercises       []domain.Exercise       `json:"exercises"`
	ExerciseUpdates []ExerciseUpdateRequest `json:"exerciseUpdates" binding:"omitempty,dive"`
	Tags            []string                `json:"tags"`
	Goal            *string                 `json:"goal"`
	Notes           *string                 `json:"notes"`
	IsDone          *bool                   `json:"isDone"`
}

func (r UpdateSessionRequest) toInput() service.UpdateSessionInput {
	input := service.UpdateSessionInput{
		Name:      r.Name,
		Date:      r.Date,
		Time:      r.Time,
		Exercises: r.Exercises,
		Tags:      r.Tags,
		Goal:      r.Goal,
		Notes:     r.Notes,
		IsDone:    r.IsDone,
	}
	for _, u := range r.ExerciseUpdates {
		input.ExerciseUpdates = append(input.ExerciseUpdates, domain.ExerciseUpdate{ExerciseID: u.ExerciseID, TimeTaken: u.TimeTaken})
	}
	return input
}

// CompletedSessionResponse is returned when an update marked the session done
// and the streak was refreshed.
type CompletedSessionResponse struct {
	Success bool                 `json:"success"`
	Streak  int                  `json:"streak"`
	Session *service.SessionView `json:"session"`
}

type listQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}

// --- Handler Methods ---

// CreateSession godoc
// @Summary Create a workout session
// @Description Creates a session for the caller. Dated user and admin sessions are put on the owner's day.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body CreateSessionRequest true "Session details"
// @Success 201 {object} service.SessionView
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Notes or givenBy not allowed for this role"
// @Failure 409 {object} gin.H "Day created concurrently"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	session, err := h.workoutService.CreateSession(c.Request.Context(), principal, req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "create session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions godoc
// @Summary List calendar sessions
// @Description Dated sessions of the caller plus dated admin sessions, newest first.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} service.SessionPage
// @Failure 400 {object} gin.H "Invalid query"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions [get]
func (h *SessionHandler) GetSessions(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	page, err := h.workoutService.GetSessions(c.Request.Context(), principal.ID, q.Page, q.Limit, q.Search)
	if err != nil {
		respondWithServiceError(c, err, "retrieve sessions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetSession godoc
// @Summary Get a workout session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} service.SessionView
// @Failure 400 {object} gin.H "Invalid session ID"
// @Failure 403 {object} gin.H "Not your session"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	sessionID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.workoutService.GetSession(c.Request.Context(), principal, sessionID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// UpdateSession godoc
// @Summary Update a workout session
// @Description Partial update. Setting isDone to true refreshes the owner's streak; the response then carries success and streak.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to change"
// @Success 200 {object} CompletedSessionResponse "Session completed"
// @Success 200 {object} service.SessionView "Session updated"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 403 {object} gin.H "Not allowed"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id} [patch]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	sessionID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.workoutService.UpdateSession(c.Request.Context(), principal, sessionID, req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "update session")
		return
	}

	if result.Completion != nil {
		c.JSON(http.StatusOK, CompletedSessionResponse{
			Success: result.Completion.Success,
			Streak:  result.Completion.Streak,
			Session: result.Session,
		})
		return
	}
	c.JSON(http.StatusOK, result.Session)
}

// DeleteSession godoc
// @Summary Delete a workout session
// @Description Deleting an unknown session succeeds.
// @Tags Sessions
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Not your session"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	sessionID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteSession(c.Request.Context(), principal, sessionID); err != nil {
		respondWithServiceError(c, err, "delete session")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTemplates godoc
// @Summary List reusable templates
// @Description Undated sessions of the caller plus admin templates.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.SessionView
// @Router /templates [get]
func (h *SessionHandler) GetTemplates(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	templates, err := h.workoutService.GetTemplates(c.Request.Context(), principal)
	if err != nil {
		respondWithServiceError(c, err, "retrieve templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// objectIDParam reads a hex ObjectID path parameter, aborting with 400 when malformed.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}
