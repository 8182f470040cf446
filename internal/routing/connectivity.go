package routing

import (
	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

// LinesThrough lists the lines stopping at a station with the station's
// position on each, in network order. A non-empty exclude skips that line.
func LinesThrough(net *network.Network, stationID, exclude string) []models.Connection {
	var conns []models.Connection

	net.EachLine(func(l models.Line) {
		if l.ID == exclude {
			return
		}
		if stop := l.StopIndex(stationID); stop >= 0 {
			conns = append(conns, models.Connection{
				Line:      l.ID,
				Station:   stationID,
				StopIndex: stop,
			})
		}
	})

	return conns
}

// serves reports whether a line stops at a station
func serves(net *network.Network, lineID, stationID string) bool {
	for _, id := range net.Route(lineID) {
		if id == stationID {
			return true
		}
	}
	return false
}
