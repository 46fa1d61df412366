package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	habitsCollection := db.Collection("habits")
	completionsCollection := db.Collection("completions")
	usersCollection := db.Collection("users")
	sessionsCollection := db.Collection("sessions")

	habitIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_habits_date").
				SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_habits"),
		},
		{
			Keys: bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().
				SetName("habit_category"),
		},
	}

	completionIndexes := []mongo.IndexModel{
		// One completion record per habit per day
		{
			Keys: bson.D{
				{Key: "habit_id", Value: 1},
				{Key: "completed_at", Value: 1},
			},
			Options: options.Index().
				SetName("habit_day_unique").
				SetUnique(true),
		},
		// Covers the stats and analytics window scans
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "completed_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_completions_date"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_unique").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().
				SetName("session_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
				{Key: "expires_at", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_sessions"),
		},
		// Expired sessions are reaped by Mongo itself
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetName("session_ttl").
				SetExpireAfterSeconds(0),
		},
	}

	if _, err := habitsCollection.Indexes().CreateMany(ctx, habitIndexes); err != nil {
		return fmt.Errorf("failed to create habits indexes: %w", err)
	}

	if _, err := completionsCollection.Indexes().CreateMany(ctx, completionIndexes); err != nil {
		return fmt.Errorf("failed to create completions indexes: %w", err)
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	if _, err := sessionsCollection.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
