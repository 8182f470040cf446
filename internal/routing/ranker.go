package routing

import (
	"sort"
	"strings"

	"github.com/randytsao24/mrtroute/internal/location"
	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// TotalDistanceKm is the cost of a route: walking distance plus the
// straight-line distance of each ride. Changes are free. A ride naming an
// unknown station costs nothing.
func TotalDistanceKm(net *network.Network, route models.Route) float64 {
	total := 0.0
	for _, s := range route.Steps {
		switch s.Type {
		case models.StepWalk:
			total += s.DistanceKm
		case models.StepRide:
			total += rideKm(net, s)
		}
	}
	return location.RoundKm(total)
}

func rideKm(net *network.Network, s models.Step) float64 {
	from, ok := net.Station(s.From)
	if !ok {
		return 0
	}
	to, ok := net.Station(s.To)
	if !ok {
		return 0
	}
	return location.Distance(from.Location, to.Location)
}

// Rank sorts routes by ascending total distance, keeping discovery order
// among equal costs, and drops routes whose steps repeat an earlier route.
func Rank(net *network.Network, routes []models.Route) []models.Route {
	ranked := Dedupe(routes)

	costs := make([]float64, len(ranked))
	for i, r := range ranked {
		costs[i] = TotalDistanceKm(net, r)
	}

	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return costs[idx[i]] < costs[idx[j]]
	})

	out := make([]models.Route, len(ranked))
	for i, j := range idx {
		out[i] = ranked[j]
	}
	return out
}

// Dedupe removes routes with the same steps as an earlier route
func Dedupe(routes []models.Route) []models.Route {
	seen := make(map[string]bool, len(routes))
	out := make([]models.Route, 0, len(routes))
	for _, r := range routes {
		key := routeKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func routeKey(r models.Route) string {
	var b strings.Builder
	for _, s := range r.Steps {
		b.WriteString(string(s.Type))
		b.WriteByte('|')
		b.WriteString(s.Line)
		b.WriteByte('|')
		b.WriteString(s.Station)
		b.WriteByte('|')
		b.WriteString(s.From)
		b.WriteByte('|')
		b.WriteString(s.To)
		b.WriteByte(';')
	}
	return b.String()
}
