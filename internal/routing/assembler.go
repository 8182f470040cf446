package routing

import (
	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// Options switches on corrections to the default search behavior.
//
// By default the one-change search only rides forward along the origin line
// and two-change routes go straight from the middle ride into the final ride
// without a change step. Both are kept for compatibility with existing
// consumers.
type Options struct {
	// BidirectionalTransfers lets the one-change search consider transfer
	// stations behind the origin stop as well as ahead of it.
	BidirectionalTransfers bool

	// ExplicitChanges inserts the change step between the second and third
	// ride of two-change routes.
	ExplicitChanges bool
}

// Endpoints are the resolved entry and exit stations of a search with the
// walking distances to reach them
type Endpoints struct {
	OriginStation string
	OriginWalkKm  float64
	DestStation   string
	DestWalkKm    float64
}

// Assembler builds candidate routes between two stations with at most two
// line changes
type Assembler struct {
	net  *network.Network
	opts Options
}

// NewAssembler creates an assembler over a network
func NewAssembler(net *network.Network, opts Options) *Assembler {
	return &Assembler{net: net, opts: opts}
}

// Assemble returns every candidate route in discovery order. When the two
// stations share a line only the direct routes are returned.
func (a *Assembler) Assemble(ep Endpoints) []models.Route {
	originConns := LinesThrough(a.net, ep.OriginStation, "")
	destConns := LinesThrough(a.net, ep.DestStation, "")

	if direct := a.direct(ep, originConns, destConns); len(direct) > 0 {
		return a.wrapAll(ep, direct)
	}

	legs := a.oneChange(ep, originConns, destConns)
	legs = append(legs, a.twoChanges(ep, originConns, destConns)...)

	return a.wrapAll(ep, legs)
}

// direct rides every line serving both stations
func (a *Assembler) direct(ep Endpoints, originConns, destConns []models.Connection) [][]models.Step {
	destLines := make(map[string]bool, len(destConns))
	for _, c := range destConns {
		destLines[c.Line] = true
	}

	var legs [][]models.Step
	for _, c := range originConns {
		if !destLines[c.Line] {
			continue
		}
		legs = append(legs, []models.Step{
			models.Ride(c.Line, ep.OriginStation, ep.DestStation),
		})
	}
	return legs
}

// oneChange rides an origin line to a station shared with a destination line
func (a *Assembler) oneChange(ep Endpoints, originConns, destConns []models.Connection) [][]models.Step {
	var legs [][]models.Step

	for _, oc := range originConns {
		for _, transfer := range a.transferCandidates(oc) {
			for _, dc := range destConns {
				if !serves(a.net, dc.Line, transfer) {
					continue
				}
				legs = append(legs, []models.Step{
					models.Ride(oc.Line, ep.OriginStation, transfer),
					models.Change(transfer, oc.Line, dc.Line),
					models.Ride(dc.Line, transfer, ep.DestStation),
				})
			}
		}
	}
	return legs
}

// transferCandidates lists the stations considered for a single change on
// the origin line: those after the origin stop, then (if enabled) those
// before it, nearest first.
func (a *Assembler) transferCandidates(oc models.Connection) []string {
	route := a.net.Route(oc.Line)
	ahead := route[oc.StopIndex+1:]
	if !a.opts.BidirectionalTransfers {
		return ahead
	}

	candidates := make([]string, 0, len(route)-1)
	candidates = append(candidates, ahead...)
	for i := oc.StopIndex - 1; i >= 0; i-- {
		candidates = append(candidates, route[i])
	}
	return candidates
}

// destinationLeg is a final ride: board destLine at transfer, having arrived
// there on entryLine
type destinationLeg struct {
	entryLine   string
	transfer    string
	destLine    string
	destStation string
}

// originLeg is a first ride: originLine from the origin station to transfer,
// where otherLine can be boarded
type originLeg struct {
	originLine    string
	otherLine     string
	originStation string
	transfer      string
}

// twoChanges joins origin lines to destination lines through one middle line
func (a *Assembler) twoChanges(ep Endpoints, originConns, destConns []models.Connection) [][]models.Step {
	var toDest []destinationLeg
	for _, dc := range destConns {
		for _, station := range a.net.Route(dc.Line) {
			for _, link := range LinesThrough(a.net, station, dc.Line) {
				toDest = append(toDest, destinationLeg{
					entryLine:   link.Line,
					transfer:    link.Station,
					destLine:    dc.Line,
					destStation: dc.Station,
				})
			}
		}
	}

	var fromOrigin []originLeg
	seen := make(map[string]bool)
	for _, dl := range toDest {
		for _, station := range a.net.Route(dl.entryLine) {
			for _, oc := range originConns {
				if oc.Line == dl.entryLine || !serves(a.net, oc.Line, station) {
					continue
				}
				key := dl.entryLine + "-" + station + "-" + oc.Line
				if seen[key] {
					continue
				}
				seen[key] = true
				fromOrigin = append(fromOrigin, originLeg{
					originLine:    oc.Line,
					otherLine:     dl.entryLine,
					originStation: oc.Station,
					transfer:      station,
				})
			}
		}
	}

	var legs [][]models.Step
	for _, ol := range fromOrigin {
		for _, dl := range toDest {
			if dl.entryLine != ol.otherLine {
				continue
			}
			steps := []models.Step{
				models.Ride(ol.originLine, ol.originStation, ol.transfer),
				models.Change(ol.transfer, ol.originLine, ol.otherLine),
				models.Ride(ol.otherLine, ol.transfer, dl.transfer),
			}
			if a.opts.ExplicitChanges {
				steps = append(steps, models.Change(dl.transfer, dl.entryLine, dl.destLine))
			}
			steps = append(steps, models.Ride(dl.destLine, dl.transfer, dl.destStation))
			legs = append(legs, steps)
		}
	}
	return legs
}

// wrapAll adds the boundary walks to each set of legs
func (a *Assembler) wrapAll(ep Endpoints, legs [][]models.Step) []models.Route {
	routes := make([]models.Route, 0, len(legs))
	for _, l := range legs {
		steps := make([]models.Step, 0, len(l)+2)
		steps = append(steps, models.Walk(models.Origin, ep.OriginStation, ep.OriginWalkKm))
		steps = append(steps, l...)
		steps = append(steps, models.Walk(ep.DestStation, models.Destination, ep.DestWalkKm))
		routes = append(routes, models.Route{Steps: steps})
	}
	return routes
}
