// Package itinerary turns ranked routes into display-ready itineraries:
// line badges, formatted distances and step-by-step instructions.
//
// Nothing here feeds back into ranking; distances are formatted from the
// numeric values carried by the route.
package itinerary

import (
	"fmt"
	"strconv"

	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// DefaultLimit is how many routes are shown when the caller doesn't say
const DefaultLimit = 4

// LineBadge is a line's label and color as shown in a route summary
type LineBadge struct {
	Line  string `json:"line"`
	Color string `json:"color"`
}

// StepView is a step with names resolved and distances formatted
type StepView struct {
	models.Step
	FromName    string `json:"from_name,omitempty"`
	ToName      string `json:"to_name,omitempty"`
	StationName string `json:"station_name,omitempty"`
	Distance    string `json:"distance,omitempty"`
	Stops       int    `json:"intermediate_stops,omitempty"`
	Instruction string `json:"instruction"`
}

// Itinerary is one route prepared for display
type Itinerary struct {
	Rank    int         `json:"rank"`
	TotalKm float64     `json:"total_km"`
	Total   string      `json:"total"`
	Changes int         `json:"changes"`
	Lines   []LineBadge `json:"lines"`
	Summary string      `json:"summary,omitempty"`
	Steps   []StepView  `json:"steps"`
}

// FormatKm renders a distance the way it's shown to riders, e.g. "1.3km"
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64) + "km"
}

// Builder resolves station and line details against a network
type Builder struct {
	net *network.Network
}

// NewBuilder creates a builder over a network
func NewBuilder(net *network.Network) *Builder {
	return &Builder{net: net}
}

// Build prepares a route for display. rank is 1-based; totalKm is the
// route's ranking cost.
func (b *Builder) Build(rank int, route models.Route, totalKm float64) Itinerary {
	it := Itinerary{
		Rank:    rank,
		TotalKm: totalKm,
		Total:   FormatKm(totalKm),
		Changes: route.Changes(),
		Lines:   []LineBadge{},
		Steps:   make([]StepView, 0, len(route.Steps)),
	}

	for _, ride := range route.Rides() {
		badge := LineBadge{Line: ride.Line}
		if l, ok := b.net.Line(ride.Line); ok {
			badge.Color = l.Color
		}
		it.Lines = append(it.Lines, badge)
	}

	for _, s := range route.Steps {
		it.Steps = append(it.Steps, b.view(s))
	}

	if len(route.Steps) > 0 {
		first := route.Steps[0]
		if first.Type == models.StepWalk && first.From == models.Origin && first.DistanceKm > 0 {
			it.Summary = fmt.Sprintf("Start by walking %s towards %s", FormatKm(first.DistanceKm), b.stationName(first.To))
		}
	}

	return it
}

// BuildAll prepares up to limit routes. totalKm supplies each route's cost.
// A limit of zero or less keeps every route.
func (b *Builder) BuildAll(routes []models.Route, limit int, totalKm func(models.Route) float64) []Itinerary {
	if limit > 0 && limit < len(routes) {
		routes = routes[:limit]
	}

	out := make([]Itinerary, 0, len(routes))
	for i, r := range routes {
		out = append(out, b.Build(i+1, r, totalKm(r)))
	}
	return out
}

func (b *Builder) view(s models.Step) StepView {
	v := StepView{Step: s}

	switch s.Type {
	case models.StepWalk:
		v.Distance = FormatKm(s.DistanceKm)
		v.FromName = b.stationName(s.From)
		v.ToName = b.stationName(s.To)
		switch {
		case s.DistanceKm == 0:
			// already at the station; nothing to tell the rider
		case s.From == models.Origin:
			v.Instruction = fmt.Sprintf("Walk %s to %s", v.Distance, v.ToName)
		default:
			v.Instruction = fmt.Sprintf("Walk %s from %s to your destination", v.Distance, v.FromName)
		}

	case models.StepRide:
		v.FromName = b.stationName(s.From)
		v.ToName = b.stationName(s.To)
		v.Stops = b.StopsBetween(s.Line, s.From, s.To)
		if v.Stops > 0 {
			v.Instruction = fmt.Sprintf("Take %s from %s (after %d stops) to %s", s.Line, v.FromName, v.Stops, v.ToName)
		} else {
			v.Instruction = fmt.Sprintf("Take %s from %s to %s", s.Line, v.FromName, v.ToName)
		}

	case models.StepChange:
		v.StationName = b.stationName(s.Station)
		v.Instruction = fmt.Sprintf("Change at %s from %s to %s", v.StationName, s.From, s.To)
	}

	return v
}

// StopsBetween counts the stations passed without stopping on a ride,
// in either direction along the line
func (b *Builder) StopsBetween(lineID, from, to string) int {
	l, ok := b.net.Line(lineID)
	if !ok {
		return 0
	}
	i, j := l.StopIndex(from), l.StopIndex(to)
	if i < 0 || j < 0 {
		return 0
	}
	if j < i {
		i, j = j, i
	}
	if j-i <= 1 {
		return 0
	}
	return j - i - 1
}

func (b *Builder) stationName(id string) string {
	switch id {
	case models.Origin, models.Destination:
		return id
	}
	if s, ok := b.net.Station(id); ok {
		return s.Name
	}
	return id
}
