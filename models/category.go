package models

// Category is immutable reference data created by an administrator.
// MatchRadiusKm is nil for online/unlimited services: location is irrelevant there.
type Category struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	MatchRadiusKm *float64 `bson:"matchRadiusKm" json:"matchRadiusKm"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	Icon          string   `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Online reports whether the category matches without any distance bound.
func (c Category) Online() bool {
	return c.MatchRadiusKm == nil
}
