package models

import "time"

// Provider is a service provider able to bid on requests.
// CategoryIDs is the provider's declared skill set; Location is their base location
// and may be absent when the provider has not granted location access.
type Provider struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	CategoryIDs []string  `bson:"categoryIds" json:"categoryIds"`
	Location    *Location `bson:"location,omitempty" json:"location,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	FCMToken    string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// HasCategory reports whether the provider declares the given skill category.
func (p Provider) HasCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
