package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/randytsao24/mrtroute/internal/advisory"
	"github.com/randytsao24/mrtroute/internal/location"
	"github.com/randytsao24/mrtroute/internal/network"
	"github.com/randytsao24/mrtroute/internal/routing"
)

const (
	defaultNearestLimit = 5
	maxNearestLimit     = 20
)

// NetworkHandler serves station and line lookups
type NetworkHandler struct {
	net     *network.Network
	locator *location.Locator
	alerts  AlertProvider
}

// NewNetworkHandler creates the lookup handler. alerts may be nil when no
// alert feed is configured.
func NewNetworkHandler(net *network.Network, locator *location.Locator, alerts AlertProvider) *NetworkHandler {
	return &NetworkHandler{
		net:     net,
		locator: locator,
		alerts:  alerts,
	}
}

// ListStations returns every station in network order
func (h *NetworkHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations := h.net.Stations()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"stations": stations,
		"count":    len(stations),
	})
}

// GetStation returns a station and the lines serving it
func (h *NetworkHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	station, ok := h.net.Station(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Station not found", "No station with id "+strconv.Quote(id))
		return
	}

	conns := routing.LinesThrough(h.net, id, "")
	lines := make([]map[string]any, 0, len(conns))
	for _, c := range conns {
		l, _ := h.net.Line(c.Line)
		lines = append(lines, map[string]any{
			"line":       l.ID,
			"color":      l.Color,
			"stop_index": c.StopIndex,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"station": station,
		"lines":   lines,
	})
}

// NearestStations returns the closest stations to a coordinate
func (h *NetworkHandler) NearestStations(w http.ResponseWriter, r *http.Request) {
	point, err := parseCoordinate(r, "lat", "lng")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	limit := parseIntParam(r, "limit", defaultNearestLimit, 1, maxNearestLimit)

	var stations []location.StationWithDistance
	if radius := r.URL.Query().Get("radius_km"); radius != "" {
		km, err := strconv.ParseFloat(radius, 64)
		if err != nil || km < 0 {
			writeError(w, http.StatusBadRequest, "invalid radius_km parameter", "")
			return
		}
		stations = h.locator.Within(point, km)
		if len(stations) > limit {
			stations = stations[:limit]
		}
	} else {
		stations = h.locator.Closest(point, limit)
	}

	if stations == nil {
		stations = []location.StationWithDistance{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"location": point,
		"stations": stations,
		"count":    len(stations),
	})
}

// ListLines returns every line in network order
func (h *NetworkHandler) ListLines(w http.ResponseWriter, r *http.Request) {
	lines := h.net.Lines()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lines":   lines,
		"count":   len(lines),
	})
}

// GetLine returns a line, its stations and any active service alerts
func (h *NetworkHandler) GetLine(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	line, ok := h.net.Line(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Line not found", "No line with id "+strconv.Quote(id))
		return
	}

	stations := make([]any, 0, len(line.Route))
	for _, sid := range line.Route {
		if s, ok := h.net.Station(sid); ok {
			stations = append(stations, s)
		}
	}

	body := map[string]any{
		"success":  true,
		"line":     line,
		"stations": stations,
	}

	if h.alerts != nil {
		alerts, err := h.alerts.ForLines(r.Context(), []string{line.ID})
		if err != nil {
			// alerts are best effort; the line itself is still useful
			slog.Warn("service alerts unavailable", "line", line.ID, "error", err)
			body["alerts_error"] = err.Error()
		}
		if alerts == nil {
			alerts = []advisory.Alert{}
		}
		body["alerts"] = alerts
	}

	writeJSON(w, http.StatusOK, body)
}
