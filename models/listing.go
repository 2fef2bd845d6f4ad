package models

import "strings"

// Rating is the aggregate review score carried on a provider reference.
// Upstream omits it entirely for providers with no reviews, so both fields
// default to zero.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ProviderRef is the provider summary embedded in listing payloads. Upstream
// sends it partially populated depending on the endpoint; every field must be
// read defensively.
type ProviderRef struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name,omitempty"`
	BusinessName string  `json:"businessName,omitempty"`
	Email        string  `json:"email,omitempty"`
	City         string  `json:"city,omitempty"`
	Verified     bool    `json:"verified,omitempty"`
	Latitude     float64 `json:"lat,omitempty"`
	Longitude    float64 `json:"lng,omitempty"`
	Rating       *Rating `json:"rating,omitempty"`
}

// RatingOrZero flattens the optional rating into defined defaults.
func (p *ProviderRef) RatingOrZero() Rating {
	if p == nil || p.Rating == nil {
		return Rating{}
	}
	return *p.Rating
}

// Listing is a provider's published service offering, mirrored from the
// upstream API and never persisted by the gateway.
type Listing struct {
	ID              string       `json:"_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Price           float64      `json:"price"`
	InspectionPrice float64      `json:"inspectionPrice,omitempty"`
	Location        string       `json:"location"`
	Image           string       `json:"image,omitempty"`
	Provider        *ProviderRef `json:"providerId,omitempty"`
	DistanceKm      float64      `json:"distanceKm,omitempty"`
	Duration        string       `json:"estimatedDuration,omitempty"`
}

// DefaultInspectionPrice applies when a listing carries no inspection price.
const DefaultInspectionPrice = 200

// InspectionPriceOrDefault returns the listing's inspection price with the
// platform default applied.
func (l Listing) InspectionPriceOrDefault() float64 {
	if l.InspectionPrice > 0 {
		return l.InspectionPrice
	}
	return DefaultInspectionPrice
}

// HasTrustedImage reports whether the provider-supplied image URL can be used
// as-is. Only absolute http(s) URLs are trusted.
func (l Listing) HasTrustedImage() bool {
	return strings.HasPrefix(l.Image, "http")
}

// NewListingRequest is the payload for publishing a listing.
type NewListingRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	InspectionPrice float64 `json:"inspectionPrice"`
	Location        string  `json:"location"`
	Image           string  `json:"image,omitempty"`
}
