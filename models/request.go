package models

import "time"

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// ServiceRequest is a buyer's posted need for a service.
type ServiceRequest struct {
	ID          string        `bson:"id" json:"id"`
	BuyerID     string        `bson:"buyerId" json:"buyerId"`
	CategoryID  string        `bson:"categoryId" json:"categoryId"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Budget      BudgetRange   `bson:"budget" json:"budget"`
	Deadline    *time.Time    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Location    *Location     `bson:"location,omitempty" json:"location,omitempty"`
	Status      RequestStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
