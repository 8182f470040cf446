package handlers

import (
	"net/http"

	"github.com/randytsao24/mrtroute/internal/network"
)

type RootHandler struct {
	net *network.Network
}

func NewRootHandler(net *network.Network) *RootHandler {
	return &RootHandler{net: net}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	bound := h.net.Bounds()

	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "mrtroute",
		"description": "Rail route finder: walk, ride and change between two points",
		"version":     version,
		"coverage": map[string]any{
			"stations": h.net.StationCount(),
			"lines":    h.net.LineCount(),
			"bounds": map[string]float64{
				"min_lat": bound.Min.Lat(),
				"min_lng": bound.Min.Lon(),
				"max_lat": bound.Max.Lat(),
				"max_lng": bound.Max.Lon(),
			},
		},
		"endpoints": map[string]string{
			"GET /api":              "API information",
			"GET /health":           "Health check",
			"GET /routes":           "Ranked routes between from_lat/from_lng and to_lat/to_lng",
			"GET /stations":         "All stations",
			"GET /stations/nearest": "Closest stations to lat/lng",
			"GET /stations/{id}":    "Station details and the lines serving it",
			"GET /lines":            "All lines",
			"GET /lines/{id}":       "Line details and active service alerts",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check /api for available endpoints",
	})
}
