package middleware

import (
	"taskhive/services/matching"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientLocationKey is the context key carrying the caller's resolved location.
const ClientLocationKey = "clientLocation"

// GeolocationMiddleware resolves an approximate location for the caller's IP
// and stores it in the context. Resolution is best-effort: when the resolver
// fails or the IP is private, no location is set and radius filtering further
// down degrades to "include".
func GeolocationMiddleware(resolver matching.LocationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if ip == "" {
			c.Next()
			return
		}

		loc, err := resolver.Resolve(c.Request.Context(), ip)
		if err != nil {
			zap.L().Warn("failed to resolve client location", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if loc != nil {
			c.Set(ClientLocationKey, loc)
		}
		c.Next()
	}
}
