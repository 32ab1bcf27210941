// internal/api/trainer_handler.go
package api

import (
	"alcyxob/workout-sessions/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	workoutService service.WorkoutService
}

func NewTrainerHandler(workoutService service.WorkoutService) *TrainerHandler {
	return &TrainerHandler{workoutService: workoutService}
}

// CreateClientSession godoc
// @Summary Give a session to a client
// @Description Creates a trainer-given session on the client's calendar day. givenBy is always trainer.
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client's user ID"
// @Param session body CreateSessionRequest true "Session details, date required"
// @Success 201 {object} service.SessionView
// @Failure 400 {object} gin.H "Validation error (missing date, invalid client ID)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 409 {object} gin.H "Day created concurrently"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/clients/{clientId}/sessions [post]
func (h *TrainerHandler) CreateClientSession(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	// RoleMiddleware gates the route, this keeps the handler safe on its own
	if !principal.IsTrainer() {
		abortWithError(c, http.StatusForbidden, service.ErrTrainerOnly.Error())
		return
	}

	clientID, ok := objectIDParam(c, "clientId")
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	session, err := h.workoutService.TrainerCreateSession(c.Request.Context(), principal.ID, clientID, req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "create client session")
		return
	}

	c.JSON(http.StatusCreated, session)
}
