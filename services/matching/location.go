package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"taskhive/models"

	"go.uber.org/zap"
)

// IPLocationResolver approximates a caller's location from their IP using
// ipapi.co, with an in-process cache. Good enough for feed fallback when the
// caller has no stored location; never good enough to persist.
type IPLocationResolver struct {
	Client *http.Client

	mu    sync.RWMutex
	cache map[string]*models.Location
}

// NewIPLocationResolver returns a resolver with a bounded request timeout.
func NewIPLocationResolver() *IPLocationResolver {
	return &IPLocationResolver{
		Client: &http.Client{Timeout: 5 * time.Second},
		cache:  make(map[string]*models.Location),
	}
}

// Resolve looks up an approximate location for the IP. Private or
// unresolvable IPs yield a nil location and no error: the caller falls back
// to unlimited-radius matching.
func (r *IPLocationResolver) Resolve(ctx context.Context, ip string) (*models.Location, error) {
	if ip == "" || isPrivateIP(ip) {
		return nil, nil
	}

	r.mu.RLock()
	if loc, ok := r.cache[ip]; ok {
		r.mu.RUnlock()
		return loc, nil
	}
	r.mu.RUnlock()

	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		zap.L().Warn("geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("geolocation API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var payload struct {
		City      string  `json:"city"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		zap.L().Warn("failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return nil, nil
	}

	loc := &models.Location{Lat: payload.Latitude, Lng: payload.Longitude, City: payload.City}

	r.mu.Lock()
	r.cache[ip] = loc
	r.mu.Unlock()

	return loc, nil
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	return parsedIP.IsLoopback() || parsedIP.IsPrivate()
}
