package matching

import "taskhive/models"

// IsWithinRange decides whether a candidate location is a geographic match for
// a request under the category's radius policy.
//
// Categories without a radius are online services: location is irrelevant and
// everything matches. For bounded categories with a location missing on either
// side the policy is inclusive by default: a provider who has not granted
// location still sees the request. That trades precision for never silently
// hiding work, and the bias is intentional.
func IsWithinRange(cat models.Category, requestLoc, candidateLoc *models.Location) bool {
	if cat.MatchRadiusKm == nil {
		return true
	}
	if requestLoc == nil || candidateLoc == nil {
		return true
	}
	return DistanceKm(requestLoc.Coordinate(), candidateLoc.Coordinate()) <= *cat.MatchRadiusKm
}
