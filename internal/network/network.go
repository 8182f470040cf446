// Package network holds the static rail network: stations and the lines
// that connect them.
//
// A Network is built once at startup and never mutated afterwards, so it can
// be shared by concurrent searches without locking. Stations and lines keep
// the order they were declared in; lookups that scan the network (nearest
// station, lines through a station) follow that order, which makes tie
// breaking deterministic.
package network

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/randytsao24/mrtroute/internal/models"
)

// ErrEmpty is returned when a network has no stations or no lines
var ErrEmpty = errors.New("network has no stations or lines")

// Network is an immutable set of stations and lines
type Network struct {
	stations   []models.Station
	lines      []models.Line
	stationIdx map[string]int
	lineIdx    map[string]int
}

// New builds a network from stations and lines in enumeration order.
// It fails if either set is empty, IDs repeat, a line revisits a station
// or a line references an unknown station.
func New(stations []models.Station, lines []models.Line) (*Network, error) {
	if len(stations) == 0 || len(lines) == 0 {
		return nil, ErrEmpty
	}

	n := &Network{
		stations:   make([]models.Station, 0, len(stations)),
		lines:      make([]models.Line, 0, len(lines)),
		stationIdx: make(map[string]int, len(stations)),
		lineIdx:    make(map[string]int, len(lines)),
	}

	for _, s := range stations {
		if s.ID == "" {
			return nil, errors.New("station with empty id")
		}
		if _, dup := n.stationIdx[s.ID]; dup {
			return nil, fmt.Errorf("duplicate station %q", s.ID)
		}
		n.stationIdx[s.ID] = len(n.stations)
		n.stations = append(n.stations, s)
	}

	for _, l := range lines {
		if l.ID == "" {
			return nil, errors.New("line with empty id")
		}
		if _, dup := n.lineIdx[l.ID]; dup {
			return nil, fmt.Errorf("duplicate line %q", l.ID)
		}

		seen := make(map[string]bool, len(l.Route))
		for _, id := range l.Route {
			if _, ok := n.stationIdx[id]; !ok {
				return nil, fmt.Errorf("line %q references unknown station %q", l.ID, id)
			}
			if seen[id] {
				return nil, fmt.Errorf("line %q visits station %q twice", l.ID, id)
			}
			seen[id] = true
		}

		// copy so callers can't mutate the route behind our back
		l.Route = append([]string(nil), l.Route...)
		n.lineIdx[l.ID] = len(n.lines)
		n.lines = append(n.lines, l)
	}

	return n, nil
}

// Stations returns all stations in enumeration order
func (n *Network) Stations() []models.Station {
	return append([]models.Station(nil), n.stations...)
}

// Lines returns all lines in enumeration order
func (n *Network) Lines() []models.Line {
	out := make([]models.Line, len(n.lines))
	for i, l := range n.lines {
		l.Route = append([]string(nil), l.Route...)
		out[i] = l
	}
	return out
}

// EachStation calls fn for every station in enumeration order
func (n *Network) EachStation(fn func(models.Station)) {
	for _, s := range n.stations {
		fn(s)
	}
}

// EachLine calls fn for every line in enumeration order.
// fn must not modify the route slice.
func (n *Network) EachLine(fn func(models.Line)) {
	for _, l := range n.lines {
		fn(l)
	}
}

// Station returns a station by its ID
func (n *Network) Station(id string) (models.Station, bool) {
	i, ok := n.stationIdx[id]
	if !ok {
		return models.Station{}, false
	}
	return n.stations[i], true
}

// Line returns a line by its ID
func (n *Network) Line(id string) (models.Line, bool) {
	i, ok := n.lineIdx[id]
	if !ok {
		return models.Line{}, false
	}
	l := n.lines[i]
	l.Route = append([]string(nil), l.Route...)
	return l, true
}

// Route returns the ordered station IDs of a line without copying.
// The slice is shared and must be treated as read-only.
func (n *Network) Route(lineID string) []string {
	i, ok := n.lineIdx[lineID]
	if !ok {
		return nil
	}
	return n.lines[i].Route
}

// StationCount returns the number of stations
func (n *Network) StationCount() int {
	return len(n.stations)
}

// LineCount returns the number of lines
func (n *Network) LineCount() int {
	return len(n.lines)
}

// Bounds returns the bounding box of all station locations
func (n *Network) Bounds() orb.Bound {
	points := make(orb.MultiPoint, len(n.stations))
	for i, s := range n.stations {
		points[i] = orb.Point{s.Location.Lng, s.Location.Lat}
	}
	return points.Bound()
}
