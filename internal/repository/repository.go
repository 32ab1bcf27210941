package repository

import (
	"alcyxob/workout-sessions/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrMissingData  = RepositoryError("missing required fields")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionFilter narrows session queries. Zero value matches everything.
type SessionFilter struct {
	UserID *primitive.ObjectID
	// IncludeAdmin widens a UserID match with admin-given sessions (visible to everyone).
	IncludeAdmin  bool
	GivenBy       *domain.GivenBy
	OnlyDated     bool
	OnlyTemplates bool
	// Search is a case-insensitive substring match on the session name.
	Search string
}

// SessionUpdate carries a partial update; nil fields are left untouched.
type SessionUpdate struct {
	Name      *string
	Date      *string
	Time      *string
	Exercises []domain.Exercise // nil means unchanged
	Tags      []string          // nil means unchanged
	Goal      *string
	Notes     *string
	IsDone    *bool
	// Unset lists stored fields to remove, used to keep templates free of calendar fields.
	Unset []string
}

// IsEmpty reports whether the update would change nothing but updatedAt.
func (u SessionUpdate) IsEmpty() bool {
	return u.Name == nil && u.Date == nil && u.Time == nil && u.Exercises == nil &&
		u.Tags == nil && u.Goal == nil && u.Notes == nil && u.IsDone == nil && len(u.Unset) == 0
}

// DayUpdate carries a partial day update. The session set is deliberately absent:
// it only changes through AddSession/RemoveSession.
type DayUpdate struct {
	Date *string
}

// TemplatePage is one page of admin templates.
type TemplatePage struct {
	Templates  []domain.WorkoutSession
	Total      int64
	Page       int
	TotalPages int
}

// SessionRepository defines the interface for interacting with workout session data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	// FindByIDs returns the sessions that still exist, in no particular order.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.WorkoutSession, error)
	Update(ctx context.Context, id primitive.ObjectID, update SessionUpdate) (*domain.WorkoutSession, error)
	Delete(ctx context.Context, id primitive.ObjectID) error // idempotent
	FindSessions(ctx context.Context, filter SessionFilter, page, limit int) ([]domain.WorkoutSession, int64, error)
	FindTemplates(ctx context.Context, filter SessionFilter) ([]domain.WorkoutSession, error)
	FindAdminTemplates(ctx context.Context, page, limit int, search string) (*TemplatePage, error)
}

// DayRepository defines the interface for interacting with workout day data.
type DayRepository interface {
	Create(ctx context.Context, day *domain.WorkoutDay) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutDay, error)
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, error)
	// Upsert atomically finds or creates the day for (userID, date); created reports an insert.
	Upsert(ctx context.Context, userID primitive.ObjectID, date string) (day *domain.WorkoutDay, created bool, err error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, skip, limit int) ([]domain.DayWithSessions, error)
	AddSession(ctx context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error)
	RemoveSession(ctx context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error)
	Update(ctx context.Context, dayID primitive.ObjectID, update DayUpdate) (*domain.WorkoutDay, error)
}
