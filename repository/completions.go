package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateCompletion signals a second completion record for the same
// (habit, day) pair. Callers translate it into a 409.
var ErrDuplicateCompletion = errors.New("habit already completed for this date")

type CompletionsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for habit completions
func GetCompletionsRepo(client *mongo.Client) *CompletionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("COMPLETIONS_COLLECTION")
	return &CompletionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Records a completion. At most one record may exist per (habit, day); the
// unique index enforces it, and we also check first to return a clean error
// instead of a raw duplicate-key failure.
func (r *CompletionsRepo) CreateCompletion(ctx context.Context, completion *model.Completion) error {
	timer := utils.TrackDBOperation("insert", "completions")
	defer timer.ObserveDuration()

	if completion.UserID == "" || completion.HabitID == "" {
		utils.TrackError("database", "invalid_completion_data")
		return errors.New("user ID and habit ID are required")
	}

	existing, err := r.GetCompletionByDay(ctx, completion.HabitID, completion.UserID, completion.CompletedAt)
	if err != nil {
		return err
	}
	if existing != nil {
		utils.TrackError("database", "duplicate_completion")
		return ErrDuplicateCompletion
	}

	_, err = r.MongoCollection.InsertOne(ctx, completion)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "duplicate_completion")
			return ErrDuplicateCompletion
		}
		utils.TrackError("database", "completion_creation_failed")
		return err
	}

	utils.TrackHabitOperation("complete")
	return nil
}

func (r *CompletionsRepo) GetCompletionByDay(ctx context.Context, habitID, userID, day string) (*model.Completion, error) {
	timer := utils.TrackDBOperation("find", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"habit_id":     habitID,
		"user_id":      userID,
		"completed_at": day,
	}

	var completion model.Completion
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&completion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "completion_fetch_failed")
		return nil, err
	}
	return &completion, nil
}

// Retrieves a user's completions newest first. An empty since means the full
// history; otherwise only records with completed_at >= since are returned.
// Day keys compare chronologically as strings, so the bound is a plain $gte.
func (r *CompletionsRepo) GetUserCompletionsSince(ctx context.Context, userID string, since string) ([]*model.Completion, error) {
	timer := utils.TrackDBOperation("find", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if since != "" {
		filter["completed_at"] = bson.M{"$gte": since}
	}

	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "completion_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var completions []*model.Completion
	if err = cursor.All(ctx, &completions); err != nil {
		utils.TrackError("database", "completion_decode_failed")
		return nil, err
	}
	return completions, nil
}

// Removes the completion record for one habit on one day
func (r *CompletionsRepo) DeleteCompletionByDay(ctx context.Context, habitID, userID, day string) error {
	timer := utils.TrackDBOperation("delete", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"habit_id":     habitID,
		"user_id":      userID,
		"completed_at": day,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "completion_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "completion_not_found")
		return errors.New("completion not found")
	}

	utils.TrackHabitOperation("uncomplete")
	return nil
}

// Removes all completion records for a habit, used when the habit is deleted
func (r *CompletionsRepo) DeleteHabitCompletions(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"habit_id": habitID,
		"user_id":  userID,
	}

	if _, err := r.MongoCollection.DeleteMany(ctx, filter); err != nil {
		utils.TrackError("database", "completion_deletion_failed")
		return err
	}
	return nil
}
