package models

import "time"

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "pending"
	ProposalAccepted  ProposalStatus = "accepted"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalWithdrawn ProposalStatus = "withdrawn"
)

// Proposal is a provider's bid against a service request.
// A provider may submit at most one proposal per request; the proposal service
// checks this before insert and a unique (requestId, providerId) index backs it.
type Proposal struct {
	ID          string         `bson:"id" json:"id"`
	RequestID   string         `bson:"requestId" json:"requestId"`
	ProviderID  string         `bson:"providerId" json:"providerId"`
	BidPrice    float64        `bson:"bidPrice" json:"bidPrice"`
	TimelineDays int           `bson:"timelineDays" json:"timelineDays"`
	CoverLetter string         `bson:"coverLetter" json:"coverLetter"`
	Status      ProposalStatus `bson:"status" json:"status"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
