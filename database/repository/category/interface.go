package categoryRepo

import (
	"context"
	"errors"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no category matches the query.
var ErrNotFound = errors.New("category not found")

// CategoryRepository defines read access to the category reference data.
type CategoryRepository interface {
	// GetByID retrieves a category by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Category, error)
	// GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Seed inserts categories that do not exist yet (admin bootstrap).
	Seed(ctx context.Context, categories []models.Category) error
}

type mongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo returns a CategoryRepository backed by MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	return &mongoCategoryRepo{coll: database.DB().Collection("categories")}
}
