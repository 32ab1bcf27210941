package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutDay groups the calendar-attached sessions of one user on one date.
// There is at most one day per (UserID, Date).
type WorkoutDay struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID   `bson:"userId" json:"userId"`
	Date      string               `bson:"date" json:"date"`
	Sessions  []primitive.ObjectID `bson:"sessions" json:"sessions"` // set semantics, mutate only via add/remove
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasSession reports whether the session id is already attached.
func (d *WorkoutDay) HasSession(sessionID primitive.ObjectID) bool {
	for _, id := range d.Sessions {
		if id == sessionID {
			return true
		}
	}
	return false
}

// DayWithSessions is a day with its session references resolved.
type DayWithSessions struct {
	WorkoutDay `bson:",inline"`

	SessionDocs []WorkoutSession `bson:"sessionDocs"`
}
