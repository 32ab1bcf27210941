package service

import "alcyxob/workout-sessions/internal/domain"

// MergeExerciseUpdates returns a copy of current where every exercise named by an update
// gets its timeTaken set. Exercises nobody mentions are returned unchanged; updates for
// unknown exercise ids are ignored. When an id is updated twice the last update wins.
func MergeExerciseUpdates(current []domain.Exercise, updates []domain.ExerciseUpdate) []domain.Exercise {
	merged := make([]domain.Exercise, len(current))
	copy(merged, current)
	if len(updates) == 0 {
		return merged
	}

	timeTaken := make(map[string]float64, len(updates))
	for _, u := range updates {
		timeTaken[u.ExerciseID] = u.TimeTaken
	}

	for i := range merged {
		if t, ok := timeTaken[merged[i].ID]; ok {
			t := t
			merged[i].TimeTaken = &t
		}
	}
	return merged
}
