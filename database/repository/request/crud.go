package requestRepo

import (
	"context"
	"time"

	"taskhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new request and returns its ID.
func (r *mongoRequestRepo) Create(ctx context.Context, req models.ServiceRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = models.RequestOpen
	}
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	return req.ID, nil
}

// GetByID returns a request by its ID.
func (r *mongoRequestRepo) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Update replaces the mutable fields of a request. Status is deliberately
// excluded: status writes go through UpdateStatus only.
func (r *mongoRequestRepo) Update(ctx context.Context, req models.ServiceRequest) error {
	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"description": req.Description,
		"budget":      req.Budget,
		"deadline":    req.Deadline,
		"location":    req.Location,
		"categoryId":  req.CategoryID,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": req.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus performs a single-record status write.
func (r *mongoRequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
