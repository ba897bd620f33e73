package providerRepo

import (
	"context"
	"errors"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no provider matches the query.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines data access for providers.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// ListByCategory returns providers declaring the given skill category.
	ListByCategory(ctx context.Context, categoryID string) ([]models.Provider, error)
	// GetAll retrieves all providers.
	GetAll(ctx context.Context) ([]models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo returns a ProviderRepository backed by MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{coll: database.DB().Collection("providers")}
}
