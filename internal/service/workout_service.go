package service

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/metrics"
	"alcyxob/workout-sessions/internal/repository"
	"alcyxob/workout-sessions/internal/storage"
	"alcyxob/workout-sessions/internal/telemetry/tracing"
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultSessionPageSize = 10
	defaultDayPageSize     = 20
	maxPageSize            = 100
)

// fields a template never carries
var templateCalendarFields = []string{"date", "userId", "trainerId", "time"}

// WorkoutService creates and reads workout sessions, groups them into calendar days
// and drives the streak side effect when a session is completed.
type WorkoutService interface {
	// Sessions
	CreateSession(ctx context.Context, principal domain.Principal, input CreateSessionInput) (*SessionView, error)
	TrainerCreateSession(ctx context.Context, trainerID, clientID primitive.ObjectID, input CreateSessionInput) (*SessionView, error)
	UpdateSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID, input UpdateSessionInput) (*UpdateSessionResult, error)
	DeleteSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID) error
	GetSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID) (*SessionView, error)
	GetSessions(ctx context.Context, userID primitive.ObjectID, page, limit int, search string) (*SessionPage, error)
	GetTemplates(ctx context.Context, principal domain.Principal) ([]SessionView, error)

	// Days
	CreateDay(ctx context.Context, userID primitive.ObjectID, date string) (*DayView, error)
	GetDay(ctx context.Context, userID primitive.ObjectID, date string) (*DayView, error)
	GetDays(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]DayView, error)
	AddSessionToDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) (*DayView, error)
	RemoveSessionFromDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) (*DayView, error)

	// Admin templates
	CreateAdminTemplate(ctx context.Context, input TemplateInput) (*SessionView, error)
	GetAdminTemplates(ctx context.Context, page, limit int, search string) (*TemplatePage, error)
	UpdateAdminTemplate(ctx context.Context, templateID primitive.ObjectID, input TemplateUpdateInput) (*SessionView, error)
	DeleteAdminTemplate(ctx context.Context, templateID primitive.ObjectID) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	sessionRepo repository.SessionRepository
	dayRepo     repository.DayRepository
	streaks     StreakTracker
	notifier    StreakNotifier
	fileStorage storage.FileStorage // optional, signs exercise image keys
	templates   *TemplateCache      // optional
	metrics     *metrics.Manager
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	sessionRepo repository.SessionRepository,
	dayRepo repository.DayRepository,
	streaks StreakTracker,
	notifier StreakNotifier,
	fileStorage storage.FileStorage,
	templates *TemplateCache,
	metricsManager *metrics.Manager,
) WorkoutService {
	return &workoutService{
		sessionRepo: sessionRepo,
		dayRepo:     dayRepo,
		streaks:     streaks,
		notifier:    notifier,
		fileStorage: fileStorage,
		templates:   templates,
		metrics:     metricsManager,
	}
}

// === Sessions ===

// CreateSession persists a session authored by the principal and, for calendar sessions,
// attaches it to the owner's day.
func (s *workoutService) CreateSession(ctx context.Context, principal domain.Principal, input CreateSessionInput) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.createSession")
	defer tracing.EndWithError(span, &err)

	givenBy := domain.GivenByForRole(principal.Role)
	if input.GivenBy != "" {
		if !input.GivenBy.IsValid() {
			return nil, ErrInvalidGivenBy
		}
		if input.GivenBy != givenBy {
			return nil, ErrGivenByMismatch
		}
	}
	span.SetAttributes(attribute.String("givenBy", string(givenBy)))

	session := newSessionFromInput(input, givenBy)
	switch principal.Role {
	case domain.RoleUser:
		userID := principal.ID
		session.UserID = &userID
	case domain.RoleTrainer:
		trainerID := principal.ID
		session.TrainerID = &trainerID
	case domain.RoleAdmin:
		if session.IsTemplate() {
			// an undated admin session joins the template library
			session.Time = ""
		} else {
			session.UserID = input.UserID
		}
	}

	if err := validateSession(session); err != nil {
		return nil, err
	}

	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}
	if session.IsAdminTemplate() {
		s.templates.Clear()
	}

	if session.BelongsToCalendar() && session.Date != "" && session.UserID != nil {
		if err := s.attachNewSession(ctx, session); err != nil {
			return nil, err
		}
	}

	return s.sessionView(ctx, session), nil
}

// TrainerCreateSession writes a trainer-given session into a client's calendar.
// The caller is trusted to have checked the trainer role.
func (s *workoutService) TrainerCreateSession(ctx context.Context, trainerID, clientID primitive.ObjectID, input CreateSessionInput) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.trainerCreateSession")
	defer tracing.EndWithError(span, &err)

	if trainerID == primitive.NilObjectID || clientID == primitive.NilObjectID || input.Date == "" {
		return nil, ErrMissingRequiredFields
	}

	session := newSessionFromInput(input, domain.GivenByTrainer)
	session.TrainerID = &trainerID
	session.UserID = &clientID

	if err := validateSession(session); err != nil {
		return nil, err
	}

	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}
	if err := s.attachNewSession(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionView(ctx, session), nil
}

// UpdateSession applies a partial update. Marking a session done refreshes the owner's
// streak; that side effect never undoes the update.
func (s *workoutService) UpdateSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID, input UpdateSessionInput) (_ *UpdateSessionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.updateSession")
	defer tracing.EndWithError(span, &err)

	current, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canModify(principal, current) {
		return nil, ErrForbidden
	}

	if input.Notes != nil && *input.Notes != "" {
		// checked against the stored provenance, which is immutable
		if current.GivenBy != domain.GivenByTrainer || !principal.IsTrainer() {
			return nil, ErrNotesTrainerOnly
		}
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrMissingRequiredFields
	}
	if input.Date != nil && !domain.IsValidDate(*input.Date) {
		return nil, ErrInvalidDate
	}
	if input.Time != nil && *input.Time != "" && !domain.IsValidClockTime(*input.Time) {
		return nil, ErrInvalidTime
	}

	update := repository.SessionUpdate{
		Name:      input.Name,
		Date:      input.Date,
		Time:      input.Time,
		Exercises: input.Exercises,
		Tags:      input.Tags,
		Goal:      input.Goal,
		Notes:     input.Notes,
		IsDone:    input.IsDone,
	}
	if current.IsAdminTemplate() {
		// admin templates stay off the calendar
		update.Date = nil
		update.Time = nil
		update.Unset = templateCalendarFields
	}
	if len(input.ExerciseUpdates) > 0 {
		base := current.Exercises
		if input.Exercises != nil {
			base = input.Exercises
		}
		update.Exercises = MergeExerciseUpdates(base, input.ExerciseUpdates)
	}

	updated, err := s.sessionRepo.Update(ctx, sessionID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}

	if current.IsAdminTemplate() {
		s.templates.Clear()
	}
	if update.Date != nil && *update.Date != current.Date {
		s.moveToDay(ctx, current, updated)
	}

	result := &UpdateSessionResult{Session: s.sessionView(ctx, updated)}
	if input.IsDone != nil && *input.IsDone && updated.UserID != nil {
		s.metrics.CounterSessionsCompleted.Inc()
		result.Completion = s.completeSession(ctx, updated.UserID.Hex())
	}
	return result, nil
}

// completeSession refreshes the user's streak and announces it. Failures are logged and
// reported as a nil completion; the session update already stands.
func (s *workoutService) completeSession(ctx context.Context, userID string) *Completion {
	if err := s.streaks.UpdateUserStreak(ctx, userID); err != nil {
		s.metrics.CounterStreakFailures.Inc()
		log.WithError(err).Errorf("update streak for user %s", userID)
		return nil
	}

	streak, err := s.streaks.CheckAndResetUserStreak(ctx, userID)
	if err != nil {
		s.metrics.CounterStreakFailures.Inc()
		log.WithError(err).Errorf("check streak for user %s", userID)
		return nil
	}

	if s.notifier != nil {
		if err := s.notifier.EmitStreakUpdate(ctx, userID, streak); err != nil {
			log.WithError(err).Warnf("emit streak update for user %s", userID)
		}
	}

	return &Completion{Success: true, Streak: streak}
}

// DeleteSession hard-deletes a session. Deleting a missing session succeeds.
func (s *workoutService) DeleteSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.deleteSession")
	defer tracing.EndWithError(span, &err)

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get session: %w", err)
	}
	if !canModify(principal, session) {
		return ErrForbidden
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if session.IsAdminTemplate() {
		s.templates.Clear()
	}

	if session.Date != "" && session.UserID != nil {
		s.detachFromDay(ctx, *session.UserID, session.Date, sessionID)
	}
	return nil
}

// GetSession returns a session the principal may see: their own, one they authored as
// trainer, or an admin-given one.
func (s *workoutService) GetSession(ctx context.Context, principal domain.Principal, sessionID primitive.ObjectID) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getSession")
	defer tracing.EndWithError(span, &err)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canModify(principal, session) && session.GivenBy != domain.GivenByAdmin {
		return nil, ErrForbidden
	}
	return s.sessionView(ctx, session), nil
}

// GetSessions pages through the calendar sessions a user can see: their own plus every
// dated admin-given session. Templates never show up here.
func (s *workoutService) GetSessions(ctx context.Context, userID primitive.ObjectID, page, limit int, search string) (_ *SessionPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getSessions")
	defer tracing.EndWithError(span, &err)

	page, limit = normalizePage(page, limit, defaultSessionPageSize)
	filter := repository.SessionFilter{
		UserID:       &userID,
		IncludeAdmin: true,
		OnlyDated:    true,
		Search:       strings.TrimSpace(search),
	}

	sessions, total, err := s.sessionRepo.FindSessions(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}

	return &SessionPage{
		Sessions:   s.sessionViews(ctx, sessions),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GetTemplates lists the undated sessions the principal can reuse.
func (s *workoutService) GetTemplates(ctx context.Context, principal domain.Principal) (_ []SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getTemplates")
	defer tracing.EndWithError(span, &err)

	userID := principal.ID
	templates, err := s.sessionRepo.FindTemplates(ctx, repository.SessionFilter{UserID: &userID, IncludeAdmin: true})
	if err != nil {
		return nil, fmt.Errorf("find templates: %w", err)
	}
	return s.sessionViews(ctx, templates), nil
}

// === Days ===

// CreateDay returns the user's day for the date, creating an empty one if needed.
func (s *workoutService) CreateDay(ctx context.Context, userID primitive.ObjectID, date string) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.createDay")
	defer tracing.EndWithError(span, &err)

	if userID == primitive.NilObjectID {
		return nil, ErrMissingRequiredFields
	}
	if !domain.IsValidDate(date) {
		return nil, ErrInvalidDate
	}

	day, err := s.resolveDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	view := MapDayToView(day)
	return &view, nil
}

// GetDay returns the day with its sessions resolved, or nil when the user has none on that date.
func (s *workoutService) GetDay(ctx context.Context, userID primitive.ObjectID, date string) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getDay")
	defer tracing.EndWithError(span, &err)

	if !domain.IsValidDate(date) {
		return nil, ErrInvalidDate
	}

	day, err := s.dayRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get day: %w", err)
	}

	sessions, err := s.sessionRepo.FindByIDs(ctx, day.Sessions)
	if err != nil {
		return nil, fmt.Errorf("resolve day sessions: %w", err)
	}

	view := s.dayView(ctx, day, sessions)
	return &view, nil
}

// GetDays pages through the user's days, newest first, sessions resolved.
func (s *workoutService) GetDays(ctx context.Context, userID primitive.ObjectID, page, limit int) (_ []DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getDays")
	defer tracing.EndWithError(span, &err)

	page, limit = normalizePage(page, limit, defaultDayPageSize)
	days, err := s.dayRepo.FindByUserID(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("find days: %w", err)
	}

	views := make([]DayView, 0, len(days))
	for i := range days {
		views = append(views, s.dayView(ctx, &days[i].WorkoutDay, days[i].SessionDocs))
	}
	return views, nil
}

// AddSessionToDay attaches an existing session to the user's day, creating the day if
// needed. Repeating the call changes nothing.
func (s *workoutService) AddSessionToDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.addSessionToDay")
	defer tracing.EndWithError(span, &err)

	if !domain.IsValidDate(date) {
		return nil, ErrInvalidDate
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != nil && *session.UserID != userID {
		return nil, ErrForbidden
	}

	day, err := s.attachToDay(ctx, userID, date, sessionID)
	if err != nil {
		return nil, err
	}
	view := MapDayToView(day)
	return &view, nil
}

// RemoveSessionFromDay detaches a session from the user's day.
func (s *workoutService) RemoveSessionFromDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.removeSessionFromDay")
	defer tracing.EndWithError(span, &err)

	if !domain.IsValidDate(date) {
		return nil, ErrInvalidDate
	}

	day, err := s.dayRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("get day: %w", err)
	}

	day, err = s.dayRepo.RemoveSession(ctx, day.ID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("remove session from day: %w", err)
	}
	view := MapDayToView(day)
	return &view, nil
}

// === Admin templates ===

// CreateAdminTemplate stores a reusable admin session. Calendar fields are dropped.
func (s *workoutService) CreateAdminTemplate(ctx context.Context, input TemplateInput) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.createAdminTemplate")
	defer tracing.EndWithError(span, &err)

	template := &domain.WorkoutSession{
		Name:      strings.TrimSpace(input.Name),
		GivenBy:   domain.GivenByAdmin,
		Exercises: input.Exercises,
		Tags:      input.Tags,
		Goal:      input.Goal,
	}
	if template.Name == "" {
		return nil, ErrMissingRequiredFields
	}

	if err := s.persistSession(ctx, template); err != nil {
		return nil, err
	}
	s.templates.Clear()

	return s.sessionView(ctx, template), nil
}

// GetAdminTemplates pages through admin templates, optionally filtered by name.
func (s *workoutService) GetAdminTemplates(ctx context.Context, page, limit int, search string) (_ *TemplatePage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getAdminTemplates")
	defer tracing.EndWithError(span, &err)

	page, limit = normalizePage(page, limit, defaultSessionPageSize)
	search = strings.TrimSpace(search)

	if cached, ok := s.templates.Get(page, limit, search); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return s.signTemplatePage(ctx, cached), nil
	}

	found, err := s.sessionRepo.FindAdminTemplates(ctx, page, limit, search)
	if err != nil {
		return nil, fmt.Errorf("find admin templates: %w", err)
	}

	result := &TemplatePage{
		Templates:  make([]SessionView, 0, len(found.Templates)),
		Total:      found.Total,
		Page:       found.Page,
		TotalPages: found.TotalPages,
	}
	for i := range found.Templates {
		result.Templates = append(result.Templates, MapSessionToView(&found.Templates[i]))
	}
	// cached pages keep object keys, links are signed per read
	s.templates.Set(page, limit, search, result)
	return s.signTemplatePage(ctx, result), nil
}

func (s *workoutService) signTemplatePage(ctx context.Context, page *TemplatePage) *TemplatePage {
	for i := range page.Templates {
		s.signImages(ctx, page.Templates[i].Exercises)
	}
	return page
}

// UpdateAdminTemplate edits an admin template and re-strips its calendar fields.
func (s *workoutService) UpdateAdminTemplate(ctx context.Context, templateID primitive.ObjectID, input TemplateUpdateInput) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.updateAdminTemplate")
	defer tracing.EndWithError(span, &err)

	if _, err := s.getAdminTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrMissingRequiredFields
	}

	updated, err := s.sessionRepo.Update(ctx, templateID, repository.SessionUpdate{
		Name:      input.Name,
		Exercises: input.Exercises,
		Tags:      input.Tags,
		Goal:      input.Goal,
		Unset:     templateCalendarFields,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("update template: %w", err)
	}
	s.templates.Clear()

	return s.sessionView(ctx, updated), nil
}

// DeleteAdminTemplate removes an admin template. Deleting a missing template succeeds.
func (s *workoutService) DeleteAdminTemplate(ctx context.Context, templateID primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.deleteAdminTemplate")
	defer tracing.EndWithError(span, &err)

	if _, err := s.getAdminTemplate(ctx, templateID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if err := s.sessionRepo.Delete(ctx, templateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	s.templates.Clear()
	return nil
}

// === helpers ===

func newSessionFromInput(input CreateSessionInput, givenBy domain.GivenBy) *domain.WorkoutSession {
	return &domain.WorkoutSession{
		Name:      strings.TrimSpace(input.Name),
		GivenBy:   givenBy,
		Date:      input.Date,
		Time:      input.Time,
		Exercises: input.Exercises,
		Tags:      input.Tags,
		Goal:      input.Goal,
		Notes:     input.Notes,
	}
}

func validateSession(session *domain.WorkoutSession) error {
	if session.Name == "" {
		return ErrMissingRequiredFields
	}
	if session.GivenBy == domain.GivenByUser && session.UserID == nil {
		return ErrMissingRequiredFields
	}
	if session.Date != "" && !domain.IsValidDate(session.Date) {
		return ErrInvalidDate
	}
	if session.Time != "" && !domain.IsValidClockTime(session.Time) {
		return ErrInvalidTime
	}
	if session.Notes != "" && session.GivenBy != domain.GivenByTrainer {
		return ErrNotesTrainerOnly
	}
	return nil
}

func (s *workoutService) persistSession(ctx context.Context, session *domain.WorkoutSession) error {
	if _, err := s.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, repository.ErrMissingData) {
			return ErrMissingRequiredFields
		}
		return fmt.Errorf("create session: %w", err)
	}
	s.metrics.CounterSessionsCreated.WithLabelValues(string(session.GivenBy)).Inc()
	return nil
}

// attachNewSession puts a freshly created session on its day. When that fails the
// session is removed again so no orphan stays behind.
func (s *workoutService) attachNewSession(ctx context.Context, session *domain.WorkoutSession) error {
	if _, err := s.attachToDay(ctx, *session.UserID, session.Date, session.ID); err != nil {
		if delErr := s.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			log.WithError(delErr).Errorf("orphan session %s left without a day", session.ID.Hex())
		}
		return err
	}
	return nil
}

func (s *workoutService) resolveDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, error) {
	day, created, err := s.dayRepo.Upsert(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDayConflict
		}
		return nil, fmt.Errorf("resolve day: %w", err)
	}
	if created {
		s.metrics.CounterDaysCreated.Inc()
	}
	return day, nil
}

func (s *workoutService) attachToDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) (*domain.WorkoutDay, error) {
	day, err := s.resolveDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if day.HasSession(sessionID) {
		return day, nil
	}

	day, err = s.dayRepo.AddSession(ctx, day.ID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("attach session to day: %w", err)
	}
	return day, nil
}

// detachFromDay is best effort: the session itself is already gone or moved.
func (s *workoutService) detachFromDay(ctx context.Context, userID primitive.ObjectID, date string, sessionID primitive.ObjectID) {
	day, err := s.dayRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.WithError(err).Warnf("detach session %s: get day %s", sessionID.Hex(), date)
		}
		return
	}
	if _, err := s.dayRepo.RemoveSession(ctx, day.ID, sessionID); err != nil {
		log.WithError(err).Warnf("detach session %s from day %s", sessionID.Hex(), day.ID.Hex())
	}
}

// moveToDay follows a date change of a calendar session.
func (s *workoutService) moveToDay(ctx context.Context, before, after *domain.WorkoutSession) {
	if after.UserID == nil {
		return
	}
	if before.Date != "" && before.UserID != nil {
		s.detachFromDay(ctx, *before.UserID, before.Date, before.ID)
	}
	if after.Date != "" {
		if _, err := s.attachToDay(ctx, *after.UserID, after.Date, after.ID); err != nil {
			log.WithError(err).Errorf("attach moved session %s to %s", after.ID.Hex(), after.Date)
		}
	}
}

func (s *workoutService) getSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *workoutService) getAdminTemplate(ctx context.Context, templateID primitive.ObjectID) (*domain.WorkoutSession, error) {
	template, err := s.getSession(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.GivenBy != domain.GivenByAdmin || !template.IsTemplate() {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

// canModify: admins touch everything, users their own sessions, trainers the ones they gave.
func canModify(principal domain.Principal, session *domain.WorkoutSession) bool {
	switch principal.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleTrainer:
		return session.TrainerID != nil && *session.TrainerID == principal.ID
	case domain.RoleUser:
		return session.UserID != nil && *session.UserID == principal.ID
	default:
		return false
	}
}

func (s *workoutService) sessionView(ctx context.Context, session *domain.WorkoutSession) *SessionView {
	view := MapSessionToView(session)
	s.signImages(ctx, view.Exercises)
	return &view
}

func (s *workoutService) sessionViews(ctx context.Context, sessions []domain.WorkoutSession) []SessionView {
	views := make([]SessionView, 0, len(sessions))
	for i := range sessions {
		views = append(views, *s.sessionView(ctx, &sessions[i]))
	}
	return views
}

// dayView keeps the day's attach order; references to deleted sessions are skipped.
func (s *workoutService) dayView(ctx context.Context, day *domain.WorkoutDay, sessions []domain.WorkoutSession) DayView {
	byID := make(map[primitive.ObjectID]*domain.WorkoutSession, len(sessions))
	for i := range sessions {
		byID[sessions[i].ID] = &sessions[i]
	}

	view := MapDayToView(day)
	view.Sessions = make([]SessionView, 0, len(day.Sessions))
	for _, id := range day.Sessions {
		if session, ok := byID[id]; ok {
			view.Sessions = append(view.Sessions, *s.sessionView(ctx, session))
		}
	}
	return view
}

// signImages swaps storage object keys for presigned links. A failed signature leaves the key.
func (s *workoutService) signImages(ctx context.Context, exercises []domain.Exercise) {
	if s.fileStorage == nil {
		return
	}
	for i := range exercises {
		if !storage.IsObjectKey(exercises[i].Image) {
			continue
		}
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercises[i].Image, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.WithError(err).Warnf("sign exercise image %s", exercises[i].Image)
			continue
		}
		exercises[i].Image = url
	}
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
