package mongo

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dayCollectionName = "workout_days"

// mongoDayRepository implements repository.DayRepository
type mongoDayRepository struct {
	collection *mongo.Collection
}

// NewMongoDayRepository creates a new WorkoutDay repository backed by MongoDB.
func NewMongoDayRepository(db *mongo.Database) repository.DayRepository {
	return &mongoDayRepository{
		collection: db.Collection(dayCollectionName),
	}
}

// Create inserts a new day. A second day for the same (userId, date) is rejected by the unique index.
func (r *mongoDayRepository) Create(ctx context.Context, day *domain.WorkoutDay) (primitive.ObjectID, error) {
	if day.UserID == primitive.NilObjectID || day.Date == "" {
		return primitive.NilObjectID, fmt.Errorf("workout day requires userId and date: %w", repository.ErrMissingData)
	}

	day.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	day.CreatedAt = now
	day.UpdatedAt = now
	if day.Sessions == nil {
		day.Sessions = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, day)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout day ID")
	}
	return insertedID, nil
}

// GetByID retrieves a day by its ID.
func (r *mongoDayRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutDay, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByUserAndDate retrieves the day of a user on a date.
func (r *mongoDayRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "date": date})
}

// Upsert finds the day for (userID, date) or creates an empty one in a single atomic write.
// Two concurrent upserts on the unique index can still collide; the loser retries once,
// which then matches the winner's document.
func (r *mongoDayRepository) Upsert(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutDay, bool, error) {
	if userID == primitive.NilObjectID || date == "" {
		return nil, false, fmt.Errorf("workout day requires userId and date: %w", repository.ErrMissingData)
	}

	filter := bson.M{"userId": userID, "date": date}
	var (
		result *mongo.UpdateResult
		err    error
	)
	for attempt := 0; attempt < 2; attempt++ {
		now := time.Now().UTC()
		update := bson.M{
			"$setOnInsert": bson.M{
				"sessions":  bson.A{},
				"createdAt": now,
				"updatedAt": now,
			},
		}
		result, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, false, repository.ErrDuplicateKey
		}
		return nil, false, err
	}

	day, err := r.findOne(ctx, filter)
	if err != nil {
		return nil, false, err
	}
	return day, result.UpsertedCount > 0, nil
}

// FindByUserID returns a page of the user's days, newest first, with sessions joined in.
func (r *mongoDayRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, skip, limit int) ([]domain.DayWithSessions, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         sessionCollectionName,
			"localField":   "sessions",
			"foreignField": "_id",
			"as":           "sessionDocs",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	days := []domain.DayWithSessions{}
	if err = cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// AddSession attaches a session with set semantics ($addToSet), so repeated calls are no-ops.
func (r *mongoDayRepository) AddSession(ctx context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error) {
	update := bson.M{
		"$addToSet": bson.M{"sessions": sessionID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, dayID, update)
}

// RemoveSession detaches a session from the day.
func (r *mongoDayRepository) RemoveSession(ctx context.Context, dayID, sessionID primitive.ObjectID) (*domain.WorkoutDay, error) {
	update := bson.M{
		"$pull": bson.M{"sessions": sessionID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, dayID, update)
}

// Update changes day fields other than the session set.
func (r *mongoDayRepository) Update(ctx context.Context, dayID primitive.ObjectID, update repository.DayUpdate) (*domain.WorkoutDay, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	day, err := r.findOneAndUpdate(ctx, dayID, bson.M{"$set": set})
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil, repository.ErrDuplicateKey
	}
	return day, err
}

func (r *mongoDayRepository) findOne(ctx context.Context, filter bson.M) (*domain.WorkoutDay, error) {
	var day domain.WorkoutDay
	err := r.collection.FindOne(ctx, filter).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *mongoDayRepository) findOneAndUpdate(ctx context.Context, dayID primitive.ObjectID, update bson.M) (*domain.WorkoutDay, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var day domain.WorkoutDay
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": dayID}, update, opts).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// EnsureDayIndexes creates the indexes for the workout_days collection.
// The unique (userId, date) index is what makes day resolution race-free.
func EnsureDayIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_date"),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
