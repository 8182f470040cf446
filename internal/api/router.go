package api

import (
	"net/http"

	"github.com/randytsao24/mrtroute/internal/api/handlers"
	"github.com/randytsao24/mrtroute/internal/config"
	"github.com/randytsao24/mrtroute/internal/routing"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
// alerts may be nil when no service alert feed is configured.
func NewRouter(cfg *config.Config, finder *routing.Finder, alerts handlers.AlertProvider) http.Handler {
	mux := http.NewServeMux()

	net := finder.Network()

	healthHandler := handlers.NewHealthHandler(net)
	rootHandler := handlers.NewRootHandler(net)
	networkHandler := handlers.NewNetworkHandler(net, finder.Locator(), alerts)
	routeHandler := handlers.NewRouteHandler(finder, cfg.CacheTTL, cfg.CacheSize, cfg.RouteLimit)

	// Core routes
	mux.HandleFunc("GET /{$}", rootHandler.Index)
	mux.HandleFunc("GET /api", rootHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Route search
	mux.HandleFunc("GET /routes", routeHandler.FindRoutes)

	// Network lookups
	mux.HandleFunc("GET /stations", networkHandler.ListStations)
	mux.HandleFunc("GET /stations/nearest", networkHandler.NearestStations)
	mux.HandleFunc("GET /stations/{id}", networkHandler.GetStation)
	mux.HandleFunc("GET /lines", networkHandler.ListLines)
	mux.HandleFunc("GET /lines/{id}", networkHandler.GetLine)

	mux.HandleFunc("/", rootHandler.NotFound)

	return Chain(mux,
		Recovery,
		Logging,
		CORS,
		Timeout(cfg.RequestTimeout),
	)
}
