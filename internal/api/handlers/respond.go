package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/randytsao24/mrtroute/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	body := map[string]any{"error": msg}
	if detail != "" {
		body["message"] = detail
	}
	writeJSON(w, status, body)
}

func parseIntParam(r *http.Request, name string, defaultVal, min, max int) int {
	str := r.URL.Query().Get(name)
	if str == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}

	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// parseCoordinate reads a lat/lng pair from the named query parameters
func parseCoordinate(r *http.Request, latName, lngName string) (models.Coordinate, error) {
	latStr := r.URL.Query().Get(latName)
	lngStr := r.URL.Query().Get(lngName)
	if latStr == "" || lngStr == "" {
		return models.Coordinate{}, errors.New(latName + " and " + lngName + " query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return models.Coordinate{}, errors.New("invalid " + latName + " parameter")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		return models.Coordinate{}, errors.New("invalid " + lngName + " parameter")
	}

	return models.Coordinate{Lat: lat, Lng: lng}, nil
}
