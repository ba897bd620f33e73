package providerRepo

import (
	"context"

	"taskhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID returns a provider by its ID.
func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var p models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCategory returns providers declaring the given skill category.
func (r *mongoProviderRepo) ListByCategory(ctx context.Context, categoryID string) ([]models.Provider, error) {
	return r.list(ctx, bson.M{"categoryIds": categoryID})
}

// GetAll returns every provider.
func (r *mongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoProviderRepo) list(ctx context.Context, filter bson.M) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}
