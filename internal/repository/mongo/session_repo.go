package mongo

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/repository"
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new WorkoutSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new session. ID and timestamps are assigned here.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.Name == "" || !session.GivenBy.IsValid() {
		return primitive.NilObjectID, fmt.Errorf("workout session requires name and givenBy: %w", repository.ErrMissingData)
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Exercises == nil {
		session.Exercises = []domain.Exercise{}
	}

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout session ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// FindByIDs resolves a set of session references. Missing ids are skipped.
func (r *mongoSessionRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.WorkoutSession, error) {
	if len(ids) == 0 {
		return []domain.WorkoutSession{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

// Update merges the non-nil fields into the stored session and returns the result.
func (r *mongoSessionRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.SessionUpdate) (*domain.WorkoutSession, error) {
	if id == primitive.NilObjectID {
		return nil, errors.New("workout session ID is required for update")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var session domain.WorkoutSession
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, buildSessionUpdate(update, time.Now().UTC()), opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (r *mongoSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// FindSessions returns one page of sessions matching the filter, newest date first, plus the total.
func (r *mongoSessionRepository) FindSessions(ctx context.Context, filter repository.SessionFilter, page, limit int) ([]domain.WorkoutSession, int64, error) {
	query := buildSessionFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64(pageOffset(page, limit))).
		SetLimit(int64(limit))

	sessions, err := r.find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// FindTemplates returns undated sessions matching the filter.
func (r *mongoSessionRepository) FindTemplates(ctx context.Context, filter repository.SessionFilter) ([]domain.WorkoutSession, error) {
	filter.OnlyTemplates = true
	filter.OnlyDated = false
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, buildSessionFilter(filter), findOptions)
}

// FindAdminTemplates pages through admin-authored templates, optionally filtered by name.
func (r *mongoSessionRepository) FindAdminTemplates(ctx context.Context, page, limit int, search string) (*repository.TemplatePage, error) {
	givenBy := domain.GivenByAdmin
	query := buildSessionFilter(repository.SessionFilter{
		GivenBy:       &givenBy,
		OnlyTemplates: true,
		Search:        search,
	})

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(pageOffset(page, limit))).
		SetLimit(int64(limit))
	templates, err := r.find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}

	return &repository.TemplatePage{
		Templates:  templates,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (r *mongoSessionRepository) find(ctx context.Context, query bson.M, findOptions *options.FindOptions) ([]domain.WorkoutSession, error) {
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []domain.WorkoutSession{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// buildSessionFilter translates a SessionFilter into a Mongo query document.
func buildSessionFilter(f repository.SessionFilter) bson.M {
	query := bson.M{}
	var and bson.A

	if f.UserID != nil {
		if f.IncludeAdmin {
			and = append(and, bson.M{"$or": bson.A{
				bson.M{"userId": *f.UserID},
				bson.M{"givenBy": domain.GivenByAdmin},
			}})
		} else {
			query["userId"] = *f.UserID
		}
	}
	if f.GivenBy != nil {
		query["givenBy"] = *f.GivenBy
	}
	if f.OnlyDated {
		query["date"] = bson.M{"$exists": true, "$ne": ""}
	}
	if f.OnlyTemplates {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"date": bson.M{"$exists": false}},
			bson.M{"date": ""},
		}})
	}
	if f.Search != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	if len(and) > 0 {
		query["$and"] = and
	}
	return query
}

// buildSessionUpdate turns a partial update into $set/$unset operators.
func buildSessionUpdate(u repository.SessionUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Time != nil {
		set["time"] = *u.Time
	}
	if u.Exercises != nil {
		set["exercises"] = u.Exercises
	}
	if u.Tags != nil {
		set["tags"] = u.Tags
	}
	if u.Goal != nil {
		set["goal"] = *u.Goal
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	if u.IsDone != nil {
		set["isDone"] = *u.IsDone
	}

	doc := bson.M{"$set": set}
	if len(u.Unset) > 0 {
		unset := bson.M{}
		for _, field := range u.Unset {
			unset[field] = ""
		}
		doc["$unset"] = unset
	}
	return doc
}

func pageOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// A user's calendar, newest first
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			// Admin templates and admin sessions visible to everyone
			Keys:    bson.D{{Key: "givenBy", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
