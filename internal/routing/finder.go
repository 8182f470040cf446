// Package routing finds rail routes between two coordinates.
//
// A search resolves both coordinates to their nearest stations, then looks
// for routes in three tiers: a single line serving both stations, one
// change, and two changes. If a direct line exists the other tiers are
// skipped. Candidates are ranked by total distance (walking plus the
// straight-line length of each ride).
//
// The network is small and fixed, so routes are enumerated rather than found
// with a weighted shortest-path search.
package routing

import (
	"log/slog"

	"github.com/randytsao24/mrtroute/internal/location"
	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// Finder runs route searches over an immutable network. It holds no mutable
// state and is safe for concurrent use.
type Finder struct {
	net       *network.Network
	locator   *location.Locator
	assembler *Assembler
}

// NewFinder creates a finder over a network
func NewFinder(net *network.Network, opts Options) *Finder {
	return &Finder{
		net:       net,
		locator:   location.NewLocator(net),
		assembler: NewAssembler(net, opts),
	}
}

// FindRoutes returns every candidate route from origin to destination,
// cheapest first. The result is empty when no route exists.
func (f *Finder) FindRoutes(origin, destination models.Coordinate) []models.Route {
	ep, ok := f.Resolve(origin, destination)
	if !ok {
		return []models.Route{}
	}

	candidates := f.assembler.Assemble(ep)
	ranked := Rank(f.net, candidates)

	slog.Debug("route search",
		"origin_station", ep.OriginStation,
		"destination_station", ep.DestStation,
		"candidates", len(candidates),
		"routes", len(ranked),
	)

	return ranked
}

// Resolve finds the entry and exit stations for a search
func (f *Finder) Resolve(origin, destination models.Coordinate) (Endpoints, bool) {
	from, err := f.locator.Nearest(origin)
	if err != nil {
		return Endpoints{}, false
	}
	to, err := f.locator.Nearest(destination)
	if err != nil {
		return Endpoints{}, false
	}

	return Endpoints{
		OriginStation: from.ID,
		OriginWalkKm:  from.DistanceKm,
		DestStation:   to.ID,
		DestWalkKm:    to.DistanceKm,
	}, true
}

// TotalDistanceKm returns the ranking cost of a route on this finder's network
func (f *Finder) TotalDistanceKm(route models.Route) float64 {
	return TotalDistanceKm(f.net, route)
}

// Network returns the network searched by the finder
func (f *Finder) Network() *network.Network {
	return f.net
}

// Locator returns the station locator used by the finder
func (f *Finder) Locator() *location.Locator {
	return f.locator
}
