package requestRepo

import (
	"context"

	"taskhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns requests matching the query, newest first.
func (r *mongoRequestRepo) List(ctx context.Context, q RequestQuery) ([]models.ServiceRequest, error) {
	filter := bson.M{}
	if len(q.Statuses) > 0 {
		filter["status"] = bson.M{"$in": q.Statuses}
	}
	if q.CategoryID != "" {
		filter["categoryId"] = q.CategoryID
	}
	if q.BuyerID != "" {
		filter["buyerId"] = q.BuyerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
