// Package location resolves coordinates to stations on the network
package location

import (
	"errors"
	"sort"

	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// ErrNoStations is returned when there is nothing to search
var ErrNoStations = errors.New("no stations to search")

// StationWithDistance is a station with its distance from a reference point
type StationWithDistance struct {
	models.Station
	DistanceKm    float64 `json:"distance_km"`
	DistanceMiles float64 `json:"distance_miles"`
}

// Locator finds stations near a point
type Locator struct {
	net *network.Network
}

// NewLocator creates a locator over a network
func NewLocator(net *network.Network) *Locator {
	return &Locator{net: net}
}

// Nearest returns the closest station to a point. Ties go to the station
// declared first in the network.
func (l *Locator) Nearest(point models.Coordinate) (StationWithDistance, error) {
	if l.net == nil || l.net.StationCount() == 0 {
		return StationWithDistance{}, ErrNoStations
	}

	var best StationWithDistance
	found := false

	l.net.EachStation(func(s models.Station) {
		dist := Distance(point, s.Location)
		if !found || dist < best.DistanceKm {
			best = withDistance(s, dist)
			found = true
		}
	})

	return best, nil
}

// Closest returns up to limit stations ordered by distance from a point.
// A limit of zero or less returns every station.
func (l *Locator) Closest(point models.Coordinate, limit int) []StationWithDistance {
	if l.net == nil {
		return nil
	}

	results := make([]StationWithDistance, 0, l.net.StationCount())
	l.net.EachStation(func(s models.Station) {
		results = append(results, withDistance(s, Distance(point, s.Location)))
	})

	// stable so equal distances keep network order, matching Nearest
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	return results
}

// Within returns stations no further than radiusKm from a point, closest first
func (l *Locator) Within(point models.Coordinate, radiusKm float64) []StationWithDistance {
	var results []StationWithDistance
	for _, s := range l.Closest(point, 0) {
		if s.DistanceKm > radiusKm {
			break
		}
		results = append(results, s)
	}
	return results
}

func withDistance(s models.Station, km float64) StationWithDistance {
	return StationWithDistance{
		Station:       s,
		DistanceKm:    km,
		DistanceMiles: RoundKm(KmToMiles(km)),
	}
}
