package service

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memSessionRepo is an in-memory repository.SessionRepository with the same
// filter semantics as the mongo implementation.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[primitive.ObjectID]domain.WorkoutSession
	// lastUpdate records the most recent partial update for assertions
	lastUpdate repository.SessionUpdate
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[primitive.ObjectID]domain.WorkoutSession{}}
}

func (r *memSessionRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.Name == "" || !session.GivenBy.IsValid() {
		return primitive.NilObjectID, repository.ErrMissingData
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Exercises == nil {
		session.Exercises = []domain.Exercise{}
	}
	r.sessions[session.ID] = *session
	return session.ID, nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (r *memSessionRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := []domain.WorkoutSession{}
	for _, id := range ids {
		if session, ok := r.sessions[id]; ok {
			found = append(found, session)
		}
	}
	return found, nil
}

func (r *memSessionRepo) Update(_ context.Context, id primitive.ObjectID, u repository.SessionUpdate) (*domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastUpdate = u
	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Name != nil {
		session.Name = *u.Name
	}
	if u.Date != nil {
		session.Date = *u.Date
	}
	if u.Time != nil {
		session.Time = *u.Time
	}
	if u.Exercises != nil {
		session.Exercises = u.Exercises
	}
	if u.Tags != nil {
		session.Tags = u.Tags
	}
	if u.Goal != nil {
		session.Goal = *u.Goal
	}
	if u.Notes != nil {
		session.Notes = *u.Notes
	}
	if u.IsDone != nil {
		session.IsDone = *u.IsDone
	}
	for _, field := range u.Unset {
		switch field {
		case "date":
			session.Date = ""
		case "time":
			session.Time = ""
		case "userId":
			session.UserID = nil
		case "trainerId":
			session.TrainerID = nil
		}
	}
	session.UpdatedAt = time.Now().UTC()
	r.sessions[id] = session
	return &session, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) matching(f repository.SessionFilter) []domain.WorkoutSession {
	matched := []domain.WorkoutSession{}
	for _, session := range r.sessions {
		if f.UserID != nil {
			own := session.UserID != nil && *session.UserID == *f.UserID
			if !own && !(f.IncludeAdmin && session.GivenBy == domain.GivenByAdmin) {
				continue
			}
		}
		if f.GivenBy != nil && session.GivenBy != *f.GivenBy {
			continue
		}
		if f.OnlyDated && session.Date == "" {
			continue
		}
		if f.OnlyTemplates && session.Date != "" {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(session.Name), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, session)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].Name < matched[j].Name
	})
	return matched
}

func paginate(sessions []domain.WorkoutSession, page, limit int) []domain.WorkoutSession {
	start := (page - 1) * limit
	if start >= len(sessions) {
		return []domain.WorkoutSession{}
	}
	end := start + limit
	if end > len(sessions) {
		end = len(sessions)
	}
	return sessions[start:end]
}

func (r *memSessionRepo) FindSessions(_ context.Context, f repository.SessionFilter, page, limit int) ([]domain.WorkoutSession, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.matching(f)
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *memSessionRepo) FindTemplates(_ context.Context, f repository.SessionFilter) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.OnlyTemplates = true
	f.OnlyDated = false
	return r.matching(f), nil
}

func (r *memSessionRepo) FindAdminTemplates(_ context.Context, page, limit int, search string) (*repository.TemplatePage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin := domain.GivenByAdmin
	matched := r.matching(repository.SessionFilter{GivenBy: &admin, OnlyTemplates: true, Search: search})
	return &repository.TemplatePage{
		Templates:  paginate(matched, page, limit),
		Total:      int64(len(matched)),
		Page:       page,
		TotalPages: totalPages(int64(len(matched)), limit),
	}, nil
}

// memDayRepo is an in-memory repository.DayRepository keyed like the unique index.
type memDayRepo struct {
	mu        sync.Mutex
	days      map[primitive.ObjectID]*domain.WorkoutDay
	upsertErr error
	addErr    error
}

func newMemDayRepo() *memDayRepo {
	return &memDayRepo{days: map[primitive.ObjectID]*domain.WorkoutDay{}}
}

func (r *memDayRepo) find(userID primitive.ObjectID, date string) *domain.WorkoutDay {
	for _, day := range r.days {
		if day.UserID == userID && day.Date == date {
			return day
		}
	}
	return nil
}

func (r *memDayRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.days)
}

func copyDay(day *domain.WorkoutDay) *domain.WorkoutDay {
	c := *day
	c.Sessions = append([]primitive.ObjectID{}, day.Sessions...)
	return &c
}

func (r *memDayRepo) Create(_ context.Context, day *domain.WorkoutDay) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(day.UserID, day.Date) != nil {
		return primitive.NilObjectID, repository.ErrDuplicateKey
	}
	day.ID = primitive.NewObjectID()
	if day.Sessions == nil {
		day.Sessions = []primitive.ObjectID{}
	}
	r.days[day.ID] = copyDay(day)
	return day.ID, nil
}

func (r *memDayRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.days[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyDay(day), nil
}

func (r *memDayRepo) GetByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := r.find(userID, date)
	if day == nil {
		return nil, repository.ErrNotFound
	}
	return copyDay(day), nil
}

func (r *memDayRepo) Upsert(_ context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return nil, false, r.upsertErr
	}
	if day := r.find(userID, date); day != nil {
		return copyDay(day), false, nil
	}
	now := time.Now().UTC()
	day := &domain.WorkoutDay{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		Sessions:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.days[day.ID] = day
	return copyDay(day), true, nil
}

func (r *memDayRepo) FindByUserID(_ context.Context, userID primitive.ObjectID, skip, limit int) ([]domain.DayWithSessions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	days := []domain.DayWithSessions{}
	for _, day := range r.days {
		if day.UserID == userID {
			days = append(days, domain.DayWithSessions{WorkoutDay: *copyDay(day)})
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	if skip >= len(days) {
		return []domain.DayWithSessions{}, nil
	}
	end := skip + limit
	if end > len(days) {
		end = len(days)
	}
	return days[skip:end], nil
}

func (r *memDayRepo) AddSession(_ context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return nil, r.addErr
	}
	day, ok := r.days[dayID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if !day.HasSession(sessionID) {
		day.Sessions = append(day.Sessions, sessionID)
	}
	return copyDay(day), nil
}

func (r *memDayRepo) RemoveSession(_ context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.days[dayID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := day.Sessions[:0]
	for _, id := range day.Sessions {
		if id != sessionID {
			kept = append(kept, id)
		}
	}
	day.Sessions = kept
	return copyDay(day), nil
}

func (r *memDayRepo) Update(_ context.Context, dayID primitive.ObjectID, u repository.DayUpdate) (*domain.WorkoutDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.days[dayID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Date != nil {
		if other := r.find(day.UserID, *u.Date); other != nil && other.ID != dayID {
			return nil, repository.ErrDuplicateKey
		}
		day.Date = *u.Date
	}
	return copyDay(day), nil
}

// fakeFileStorage signs keys deterministically.
type fakeFileStorage struct{}

func (fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://signed.example.com/" + objectKey + "?sig=1", nil
}
