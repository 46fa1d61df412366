package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for habits
func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("HABITS_COLLECTION")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new habit into the database
func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}

	utils.TrackHabitOperation("create")
	return nil
}

// Retrieves all habits for a user, newest first
func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

// Retrieves a single habit, scoped to its owner
func (r *HabitsRepo) GetHabitByID(ctx context.Context, habitID string, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&habit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

// All encompassing update for a specific habit
func (r *HabitsRepo) UpdateHabit(ctx context.Context, habitID string, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":             updates.Name,
			"description":      updates.Description,
			"category_id":      updates.CategoryID,
			"target_frequency": updates.TargetFrequency,
			"is_active":        updates.IsActive,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}

	utils.TrackHabitOperation("update")
	return nil
}

// Removes a specific habit from the database
func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}

	utils.TrackHabitOperation("delete")
	return nil
}

// ClearCategory detaches every habit referencing a deleted category, leaving
// the habits themselves intact.
func (r *HabitsRepo) ClearCategory(ctx context.Context, categoryID string) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"category_id": "",
			"updated_at":  time.Now(),
		},
	}

	_, err := r.MongoCollection.UpdateMany(ctx, bson.M{"category_id": categoryID}, update)
	if err != nil {
		utils.TrackError("database", "habit_category_clear_failed")
		return err
	}
	return nil
}
