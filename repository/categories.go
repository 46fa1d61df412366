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
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for categories
func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("CATEGORIES_COLLECTION")
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.Name == "" {
		utils.TrackError("database", "missing_category_name")
		return errors.New("category name is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		utils.TrackError("database", "category_creation_failed")
		return err
	}
	return nil
}

// Categories are shared across users, so no owner filter here.
func (r *CategoriesRepo) GetCategories(ctx context.Context) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepo) GetCategoryByID(ctx context.Context, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepo) UpdateCategory(ctx context.Context, categoryID string, updates *model.Category) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"name":        updates.Name,
			"description": updates.Description,
			"color":       updates.Color,
			"icon":        updates.Icon,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": categoryID}, update)
	if err != nil {
		utils.TrackError("database", "category_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": categoryID})
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}
