package categoryRepo

import (
	"context"

	"taskhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns a category by its ID.
func (r *mongoCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetAll returns every category.
func (r *mongoCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Seed upserts the given categories by name so repeated bootstraps are harmless.
func (r *mongoCategoryRepo) Seed(ctx context.Context, categories []models.Category) error {
	for _, cat := range categories {
		if cat.ID == "" {
			cat.ID = uuid.New().String()
		}
		filter := bson.M{"name": cat.Name}
		update := bson.M{"$setOnInsert": cat}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}
