package requestRepo

import (
	"context"
	"errors"

	"taskhive/database"
	"taskhive/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no request matches the query.
var ErrNotFound = errors.New("request not found")

// RequestQuery narrows List results.
type RequestQuery struct {
	Statuses   []models.RequestStatus
	CategoryID string
	BuyerID    string
	Limit      int64
}

// RequestRepository defines data access for service requests.
type RequestRepository interface {
	// GetByID retrieves a request by its unique ID.
	GetByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	// Create inserts a new request record and returns its ID.
	Create(ctx context.Context, req models.ServiceRequest) (string, error)
	// Update replaces the mutable fields of an open request.
	Update(ctx context.Context, req models.ServiceRequest) error
	// UpdateStatus performs a single-record status write.
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error
	// List returns requests matching the query, newest first.
	List(ctx context.Context, q RequestQuery) ([]models.ServiceRequest, error)
}

type mongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo returns a RequestRepository backed by MongoDB.
func NewMongoRequestRepo() RequestRepository {
	return &mongoRequestRepo{coll: database.DB().Collection("requests")}
}
