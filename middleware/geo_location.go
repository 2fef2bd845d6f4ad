// File: middleware/geolocation.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoLocation represents the geolocation information for an IP. It is used as
// a hint only: to center the map view and pre-fill the location field.
type GeoLocation struct {
	IP        string  `json:"ip"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoKey is the gin context key for the resolved geolocation hint.
const GeoKey = "geoLocation"

// geoCache caches geolocation results keyed by IP address.
var geoCache = make(map[string]*GeoLocation)
var cacheMutex sync.RWMutex

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// getGeolocation retrieves geolocation data from an external API (using ipapi.co)
// and caches the result. If the IP is private or the lookup fails, a default
// "Unknown" hint is returned; lookup failure is never an error for the caller.
func getGeolocation(ip string, logger *zap.Logger) *GeoLocation {
	cacheMutex.RLock()
	if geo, exists := geoCache[ip]; exists {
		cacheMutex.RUnlock()
		return geo
	}
	cacheMutex.RUnlock()

	unknown := &GeoLocation{IP: ip, Country: "Unknown"}

	if isPrivateIP(ip) {
		logger.Warn("Client IP is private; using default geolocation", zap.String("ip", ip))
		cacheMutex.Lock()
		geoCache[ip] = unknown
		cacheMutex.Unlock()
		return unknown
	}

	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		logger.Warn("Failed to query external geolocation API", zap.String("ip", ip), zap.Error(err))
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("External geolocation API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return unknown
	}

	var geo GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		logger.Warn("Failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return unknown
	}
	if geo.Country == "" {
		geo.Country = "Unknown"
	}

	cacheMutex.Lock()
	geoCache[ip] = &geo
	cacheMutex.Unlock()
	return &geo
}

// GeolocationMiddleware resolves a best-effort location hint for the request
// and sets it in the context. It never aborts: denial, timeout or lookup
// failure all degrade to the default hint and the user enters a location
// manually.
func GeolocationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		clientIP := getClientIP(c)
		if clientIP == "" {
			c.Set(GeoKey, &GeoLocation{Country: "Unknown"})
			c.Next()
			return
		}
		c.Set(GeoKey, getGeolocation(clientIP, logger))
		c.Next()
	}
}

// GeoFromContext returns the geolocation hint placed by GeolocationMiddleware.
func GeoFromContext(c *gin.Context) (*GeoLocation, bool) {
	val, exists := c.Get(GeoKey)
	if !exists {
		return nil, false
	}
	geo, ok := val.(*GeoLocation)
	return geo, ok
}
