package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layouts for the calendar strings stored on sessions and days.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	TimeLayoutLong = "15:04:05"
)

// GivenBy is the provenance of a session: who authored it.
type GivenBy string

const (
	GivenByUser    GivenBy = "user"
	GivenByTrainer GivenBy = "trainer"
	GivenByAdmin   GivenBy = "admin"
)

func (g GivenBy) IsValid() bool {
	switch g {
	case GivenByUser, GivenByTrainer, GivenByAdmin:
		return true
	default:
		return false
	}
}

// GivenByForRole maps the acting role onto the provenance tag it produces.
func GivenByForRole(role Role) GivenBy {
	switch role {
	case RoleTrainer:
		return GivenByTrainer
	case RoleAdmin:
		return GivenByAdmin
	default:
		return GivenByUser
	}
}

// Exercise is embedded in a session, it is not addressable on its own.
// ID points into the external exercise catalog.
type Exercise struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Image     string   `bson:"image,omitempty" json:"image,omitempty"`
	Sets      int      `bson:"sets" json:"sets"`
	Reps      string   `bson:"reps,omitempty" json:"reps,omitempty"`
	Time      string   `bson:"time,omitempty" json:"time,omitempty"` // cardio-style entries use time instead of reps
	Rest      string   `bson:"rest,omitempty" json:"rest,omitempty"`
	Notes     string   `bson:"notes,omitempty" json:"notes,omitempty"`
	TimeTaken *float64 `bson:"timeTaken,omitempty" json:"timeTaken,omitempty"` // filled in after completion
}

// ExerciseUpdate is a transient instruction carried by a session update; it is never stored.
type ExerciseUpdate struct {
	ExerciseID string  `json:"exerciseId"`
	TimeTaken  float64 `json:"timeTaken"`
}

// WorkoutSession is a named collection of exercises, either dated (calendar-attached)
// or undated (a reusable template).
type WorkoutSession struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	GivenBy   GivenBy             `bson:"givenBy" json:"givenBy"`
	TrainerID *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Date      string              `bson:"date,omitempty" json:"date,omitempty"`
	Time      string              `bson:"time,omitempty" json:"time,omitempty"`
	Exercises []Exercise          `bson:"exercises" json:"exercises"`
	Tags      []string            `bson:"tags,omitempty" json:"tags,omitempty"`
	Goal      string              `bson:"goal,omitempty" json:"goal,omitempty"`
	Notes     string              `bson:"notes,omitempty" json:"notes,omitempty"` // only on trainer-given sessions
	IsDone    bool                `bson:"isDone" json:"isDone"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsTemplate reports whether the session is a reusable template (no calendar date).
func (s *WorkoutSession) IsTemplate() bool {
	return s.Date == ""
}

// IsAdminTemplate reports whether the session is an entry of the admin template library.
func (s *WorkoutSession) IsAdminTemplate() bool {
	return s.GivenBy == GivenByAdmin && s.IsTemplate()
}

// BelongsToCalendar reports whether the session's provenance puts it on a user's day.
func (s *WorkoutSession) BelongsToCalendar() bool {
	return s.GivenBy == GivenByUser || s.GivenBy == GivenByAdmin
}

// IsValidDate checks the YYYY-MM-DD layout used for session and day dates.
func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// IsValidClockTime accepts HH:MM and HH:MM:SS.
func IsValidClockTime(clock string) bool {
	if _, err := time.Parse(TimeLayout, clock); err == nil {
		return true
	}
	_, err := time.Parse(TimeLayoutLong, clock)
	return err == nil
}
