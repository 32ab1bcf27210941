package service

import "context"

//go:generate mockgen -source=collaborators.go -destination=collaborators_mocks_test.go -package=service

// StreakTracker owns the consecutive-activity counter of a user.
type StreakTracker interface {
	UpdateUserStreak(ctx context.Context, userID string) error
	// CheckAndResetUserStreak applies the tracker's expiry policy and returns the current streak.
	CheckAndResetUserStreak(ctx context.Context, userID string) (int, error)
}

// StreakNotifier pushes streak changes to whoever listens for the user. Fire-and-forget:
// an error means the event could not be handed off, never that nobody received it.
type StreakNotifier interface {
	EmitStreakUpdate(ctx context.Context, userID string, currentStreak int) error
}
