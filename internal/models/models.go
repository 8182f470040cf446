// Package models defines shared data types
package models

// Sentinels used by walk steps at the two ends of a route
const (
	Origin      = "origin"
	Destination = "destination"
)

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Station represents a named stop on the rail network
type Station struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

// Line is an ordered sequence of station IDs served by one service.
// Lines are usable in both directions.
type Line struct {
	ID    string   `json:"id"`
	Color string   `json:"color"`
	Route []string `json:"route"`
}

// StopIndex returns the zero-based position of a station on the line, or -1
func (l Line) StopIndex(stationID string) int {
	for i, id := range l.Route {
		if id == stationID {
			return i
		}
	}
	return -1
}

// Serves reports whether the line stops at the station
func (l Line) Serves(stationID string) bool {
	return l.StopIndex(stationID) >= 0
}

// StepType tags the variant held by a Step
type StepType string

const (
	StepWalk   StepType = "walk"
	StepRide   StepType = "ride"
	StepChange StepType = "change"
)

// Step is one leg of a journey.
//
// For walks From/To are station IDs or the Origin/Destination sentinels.
// For rides Line is set and From/To are station IDs.
// For changes Station is set and From/To are line IDs.
type Step struct {
	Type       StepType `json:"type"`
	Line       string   `json:"line,omitempty"`
	Station    string   `json:"station,omitempty"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	DistanceKm float64  `json:"distance_km,omitempty"`
}

// Walk builds a walk step
func Walk(from, to string, distanceKm float64) Step {
	return Step{Type: StepWalk, From: from, To: to, DistanceKm: distanceKm}
}

// Ride builds a ride step
func Ride(line, from, to string) Step {
	return Step{Type: StepRide, Line: line, From: from, To: to}
}

// Change builds a line change step
func Change(station, fromLine, toLine string) Step {
	return Step{Type: StepChange, Station: station, From: fromLine, To: toLine}
}

// Entry returns the point where the step begins
func (s Step) Entry() string {
	if s.Type == StepChange {
		return s.Station
	}
	return s.From
}

// Exit returns the point where the step ends
func (s Step) Exit() string {
	if s.Type == StepChange {
		return s.Station
	}
	return s.To
}

// Route is a complete journey from origin to destination
type Route struct {
	Steps []Step `json:"steps"`
}

// Rides returns the ride steps in order
func (r Route) Rides() []Step {
	var rides []Step
	for _, s := range r.Steps {
		if s.Type == StepRide {
			rides = append(rides, s)
		}
	}
	return rides
}

// Changes counts the change steps
func (r Route) Changes() int {
	n := 0
	for _, s := range r.Steps {
		if s.Type == StepChange {
			n++
		}
	}
	return n
}

// Connection records that a line passes through a station at a stop index.
// Produced by connectivity lookups and consumed by route assembly.
type Connection struct {
	Line      string
	Station   string
	StopIndex int
}
