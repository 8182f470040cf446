package routing

import (
	"testing"

	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

type stationSpec struct {
	id       string
	lat, lng float64
}

func buildNetwork(t *testing.T, stations []stationSpec, lines map[string][]string, lineOrder ...string) *network.Network {
	t.Helper()

	ss := make([]models.Station, len(stations))
	for i, s := range stations {
		ss[i] = models.Station{
			ID:       s.id,
			Name:     "Station " + s.id,
			Location: models.Coordinate{Lat: s.lat, Lng: s.lng},
		}
	}

	ls := make([]models.Line, 0, len(lineOrder))
	for _, id := range lineOrder {
		ls = append(ls, models.Line{ID: id, Color: "#123456", Route: lines[id]})
	}

	net, err := network.New(ss, ls)
	if err != nil {
		t.Fatalf("building network: %v", err)
	}
	return net
}

// toyNetwork has line A = [s1, s2, s3] and line B = [s4, s2, s5]
func toyNetwork(t *testing.T) *network.Network {
	return buildNetwork(t,
		[]stationSpec{
			{"s1", 1.30, 103.80},
			{"s2", 1.30, 103.82},
			{"s3", 1.30, 103.84},
			{"s4", 1.32, 103.82},
			{"s5", 1.28, 103.82},
		},
		map[string][]string{
			"A": {"s1", "s2", "s3"},
			"B": {"s4", "s2", "s5"},
		},
		"A", "B",
	)
}

// chainNetwork needs two changes: A = [o1, x1, x2], M = [x1, m1, y1],
// D = [y1, d1, d2]
func chainNetwork(t *testing.T) *network.Network {
	return buildNetwork(t,
		[]stationSpec{
			{"o1", 1.30, 103.80},
			{"x1", 1.30, 103.82},
			{"x2", 1.30, 103.84},
			{"m1", 1.32, 103.82},
			{"y1", 1.34, 103.82},
			{"d1", 1.34, 103.84},
			{"d2", 1.34, 103.86},
		},
		map[string][]string{
			"A": {"o1", "x1", "x2"},
			"M": {"x1", "m1", "y1"},
			"D": {"y1", "d1", "d2"},
		},
		"A", "M", "D",
	)
}

// behindNetwork only connects by riding the origin line backwards:
// A = [t, o], B = [t, d]
func behindNetwork(t *testing.T) *network.Network {
	return buildNetwork(t,
		[]stationSpec{
			{"t", 1.30, 103.80},
			{"o", 1.30, 103.82},
			{"d", 1.32, 103.80},
		},
		map[string][]string{
			"A": {"t", "o"},
			"B": {"t", "d"},
		},
		"A", "B",
	)
}

func at(t *testing.T, net *network.Network, stationID string) models.Coordinate {
	t.Helper()
	s, ok := net.Station(stationID)
	if !ok {
		t.Fatalf("unknown station %s", stationID)
	}
	return s.Location
}

func assertSteps(t *testing.T, got, want []models.Step) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d\n got: %+v\nwant: %+v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func assertContiguous(t *testing.T, r models.Route) {
	t.Helper()
	if len(r.Steps) == 0 {
		t.Fatal("route has no steps")
	}
	if first := r.Steps[0]; first.Entry() != models.Origin {
		t.Errorf("route starts at %q, want %q", first.Entry(), models.Origin)
	}
	if last := r.Steps[len(r.Steps)-1]; last.Exit() != models.Destination {
		t.Errorf("route ends at %q, want %q", last.Exit(), models.Destination)
	}
	for i := 1; i < len(r.Steps); i++ {
		if prev, cur := r.Steps[i-1], r.Steps[i]; cur.Entry() != prev.Exit() {
			t.Errorf("step %d enters at %q but step %d exits at %q: %+v", i, cur.Entry(), i-1, prev.Exit(), r.Steps)
		}
	}
}
