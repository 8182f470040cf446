// Package handlers contains HTTP request handlers
package handlers

import (
	"net/http"
	"time"

	"github.com/randytsao24/mrtroute/internal/network"
)

const version = "1.0.0"

type HealthHandler struct {
	startTime time.Time
	net       *network.Network
}

func NewHealthHandler(net *network.Network) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), net: net}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
		"uptime":    time.Since(h.startTime).String(),
		"network": map[string]int{
			"stations": h.net.StationCount(),
			"lines":    h.net.LineCount(),
		},
	})
}
