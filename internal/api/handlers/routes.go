package handlers

import (
	"net/http"
	"time"

	"github.com/randytsao24/mrtroute/internal/cache"
	"github.com/randytsao24/mrtroute/internal/itinerary"
	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/routing"
)

const maxRouteLimit = 20

type searchKey struct {
	origin, destination models.Coordinate
}

type RouteHandler struct {
	finder       *routing.Finder
	builder      *itinerary.Builder
	results      *cache.Cache[searchKey, []models.Route]
	defaultLimit int
}

// NewRouteHandler creates the route search handler. Results are cached per
// coordinate pair for cacheTTL; a zero TTL disables caching. defaultLimit is
// how many routes are shown when the request doesn't say.
func NewRouteHandler(finder *routing.Finder, cacheTTL time.Duration, cacheSize, defaultLimit int) *RouteHandler {
	if defaultLimit <= 0 {
		defaultLimit = itinerary.DefaultLimit
	}

	h := &RouteHandler{
		finder:       finder,
		builder:      itinerary.NewBuilder(finder.Network()),
		defaultLimit: defaultLimit,
	}
	if cacheTTL > 0 {
		h.results = cache.New[searchKey, []models.Route](cacheTTL, cacheSize)
	}
	return h
}

// Close stops the result cache
func (h *RouteHandler) Close() {
	if h.results != nil {
		h.results.Close()
	}
}

// FindRoutes returns ranked routes between two coordinates
func (h *RouteHandler) FindRoutes(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r, "from_lat", "from_lng")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	destination, err := parseCoordinate(r, "to_lat", "to_lng")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	limit := parseIntParam(r, "limit", h.defaultLimit, 1, maxRouteLimit)

	routes := h.search(origin, destination)
	ep, _ := h.finder.Resolve(origin, destination)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"origin": map[string]any{
			"location": origin,
			"station":  h.stationSummary(ep.OriginStation),
			"walk_km":  ep.OriginWalkKm,
		},
		"destination": map[string]any{
			"location": destination,
			"station":  h.stationSummary(ep.DestStation),
			"walk_km":  ep.DestWalkKm,
		},
		"routes": h.builder.BuildAll(routes, limit, h.finder.TotalDistanceKm),
		"count":  min(limit, len(routes)),
		"found":  len(routes),
	})
}

func (h *RouteHandler) search(origin, destination models.Coordinate) []models.Route {
	if h.results == nil {
		return h.finder.FindRoutes(origin, destination)
	}

	key := searchKey{origin: origin, destination: destination}
	routes, _ := h.results.GetOrLoad(key, func() ([]models.Route, error) {
		return h.finder.FindRoutes(origin, destination), nil
	})
	return routes
}

func (h *RouteHandler) stationSummary(id string) any {
	s, ok := h.finder.Network().Station(id)
	if !ok {
		return nil
	}
	return s
}
