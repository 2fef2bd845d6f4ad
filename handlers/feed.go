package handlers

import (
	"net/http"
	"strconv"

	"urbanease/middleware"
	"urbanease/models"
	"urbanease/services/feed"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the services listing page: browse, detail, map hint.
type FeedHandler struct {
	FeedSvc feed.FeedService
	Logger  *zap.Logger
}

func NewFeedHandler(feedSvc feed.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{FeedSvc: feedSvc, Logger: logger}
}

// Browse handles GET /api/feed/listings. Filter, sort, search and page state arrive as
// query parameters; defaults mirror the listing page's initial sidebar.
func (h *FeedHandler) Browse(c *gin.Context) {
	criteria := feed.DefaultCriteria()
	if v := c.Query("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMin = f
		}
	}
	if v := c.Query("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMax = f
		}
	}
	if v := c.Query("distance"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.DistanceKm = f
		}
	}
	for _, v := range c.QueryArray("rating") {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Ratings = append(criteria.Ratings, n)
		}
	}
	criteria.Availability = c.QueryArray("availability")
	criteria.VerifiedOnly = c.Query("verified") == "true"

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	query := feed.BrowseQuery{
		Criteria: criteria,
		Sort:     models.SortKey(c.DefaultQuery("sort", string(models.SortRecommended))),
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.FeedSvc.Browse(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("Browse: failed to assemble feed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load services", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetListing handles GET /api/feed/listings/:id. The resolved display image
// and the provider's reviews ride along with the listing.
func (h *FeedHandler) GetListing(c *gin.Context) {
	id := c.Param("id")
	listing, reviews, err := h.FeedSvc.GetListing(c.Request.Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "service not found", "")
			return
		}
		h.Logger.Error("GetListing: upstream fetch failed", zap.String("listingID", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load service details", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
		"image":   feed.ResolveImage(*listing),
		"reviews": reviews,
	})
}

// MapCenter handles GET /api/feed/map-center: the geolocation hint for
// centering the map view, degraded to the default center when unknown.
func (h *FeedHandler) MapCenter(c *gin.Context) {
	center := feed.DefaultMapCenter()
	if geo, ok := middleware.GeoFromContext(c); ok && geo.Latitude != 0 {
		center.Name = geo.City
		center.Latitude = geo.Latitude
		center.Longitude = geo.Longitude
	}
	c.JSON(http.StatusOK, center)
}

// Refresh handles POST /api/feed/refresh.
func (h *FeedHandler) Refresh(c *gin.Context) {
	if err := h.FeedSvc.Refresh(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to refresh listings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refreshed"})
}
