package service

import (
	"alcyxob/workout-sessions/internal/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Inputs ---

// CreateSessionInput is the caller's session payload. GivenBy is optional: it is derived
// from the caller's role, and a supplied value only passes when it agrees.
type CreateSessionInput struct {
	Name      string
	GivenBy   domain.GivenBy
	UserID    *primitive.ObjectID // honored for admins only
	Date      string
	Time      string
	Exercises []domain.Exercise
	Tags      []string
	Goal      string
	Notes     string
}

// UpdateSessionInput is a partial update; nil fields stay as stored.
type UpdateSessionInput struct {
	Name      *string
	Date      *string
	Time      *string
	Exercises []domain.Exercise
	// ExerciseUpdates set timeTaken on matching exercises and are never stored.
	ExerciseUpdates []domain.ExerciseUpdate
	Tags            []string
	Goal            *string
	Notes           *string
	IsDone          *bool
}

// TemplateInput creates an admin template. Calendar fields are accepted and dropped.
type TemplateInput struct {
	Name      string
	Exercises []domain.Exercise
	Tags      []string
	Goal      string
	Date      string
	Time      string
	UserID    *primitive.ObjectID
	TrainerID *primitive.ObjectID
}

type TemplateUpdateInput struct {
	Name      *string
	Exercises []domain.Exercise
	Tags      []string
	Goal      *string
}

// --- Views ---

// SessionView is the read shape of a session with references flattened to hex ids.
type SessionView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	GivenBy   domain.GivenBy    `json:"givenBy"`
	TrainerID string            `json:"trainerId,omitempty"`
	UserID    string            `json:"userId,omitempty"`
	Date      string            `json:"date,omitempty"`
	Time      string            `json:"time,omitempty"`
	Exercises []domain.Exercise `json:"exercises"`
	Tags      []string          `json:"tags"`
	Goal      string            `json:"goal,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	IsDone    bool              `json:"isDone"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Completion is attached to an update that marked a session done.
type Completion struct {
	Success bool `json:"success"`
	Streak  int  `json:"streak"`
}

// UpdateSessionResult carries the updated session and, when the update completed the
// session and the streak could be refreshed, the completion outcome.
type UpdateSessionResult struct {
	Session    *SessionView
	Completion *Completion
}

type SessionPage struct {
	Sessions   []SessionView `json:"sessions"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

type TemplatePage struct {
	Templates  []SessionView `json:"templates"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// DayView is a day with its session references. Sessions is filled in by the read
// operations only; writes return the references alone.
type DayView struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	Date       string        `json:"date"`
	SessionIDs []string      `json:"sessionIds"`
	Sessions   []SessionView `json:"sessions,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// MapSessionToView converts a stored session to its read shape.
func MapSessionToView(s *domain.WorkoutSession) SessionView {
	view := SessionView{
		ID:        s.ID.Hex(),
		Name:      s.Name,
		GivenBy:   s.GivenBy,
		Date:      s.Date,
		Time:      s.Time,
		Exercises: make([]domain.Exercise, len(s.Exercises)),
		Tags:      s.Tags,
		Goal:      s.Goal,
		Notes:     s.Notes,
		IsDone:    s.IsDone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	copy(view.Exercises, s.Exercises)
	if s.TrainerID != nil {
		view.TrainerID = s.TrainerID.Hex()
	}
	if s.UserID != nil {
		view.UserID = s.UserID.Hex()
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	return view
}

// MapDayToView converts a stored day, without resolving its sessions.
func MapDayToView(d *domain.WorkoutDay) DayView {
	ids := make([]string, len(d.Sessions))
	for i, id := range d.Sessions {
		ids[i] = id.Hex()
	}
	return DayView{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		Date:       d.Date,
		SessionIDs: ids,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
