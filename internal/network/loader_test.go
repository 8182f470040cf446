package network

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlDescriptor = `
stations:
  zeta:  { name: Zeta,  lat: 1.30, lng: 103.80 }
  alpha: { name: Alpha, lat: 1.31, lng: 103.81 }
  mid:   { name: Mid,   lat: 1.32, lng: 103.82 }
lines:
  RED:
    color: "#ff0000"
    route: [zeta, alpha]
  BLUE:
    color: "#0000ff"
    route: [alpha, mid]
`

const jsonDescriptor = `{
  "stations": {
    "zeta":  {"name": "Zeta",  "lat": 1.30, "lng": 103.80},
    "alpha": {"name": "Alpha", "lat": 1.31, "lng": 103.81},
    "mid":   {"name": "Mid",   "lat": 1.32, "lng": 103.82}
  },
  "lines": {
    "RED":  {"color": "#ff0000", "route": ["zeta", "alpha"]},
    "BLUE": {"color": "#0000ff", "route": ["alpha", "mid"]}
  }
}`

func TestParsePreservesOrder(t *testing.T) {
	for name, src := range map[string]string{"yaml": yamlDescriptor, "json": jsonDescriptor} {
		t.Run(name, func(t *testing.T) {
			n, err := Parse([]byte(src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			ss := n.Stations()
			if len(ss) != 3 || ss[0].ID != "zeta" || ss[1].ID != "alpha" || ss[2].ID != "mid" {
				t.Errorf("stations = %+v, want zeta, alpha, mid", ss)
			}
			if ss[1].Name != "Alpha" || ss[1].Location.Lat != 1.31 || ss[1].Location.Lng != 103.81 {
				t.Errorf("alpha = %+v", ss[1])
			}

			ls := n.Lines()
			if len(ls) != 2 || ls[0].ID != "RED" || ls[1].ID != "BLUE" {
				t.Fatalf("lines = %+v, want RED, BLUE", ls)
			}
			if ls[0].Color != "#ff0000" || strings.Join(ls[0].Route, ",") != "zeta,alpha" {
				t.Errorf("RED = %+v", ls[0])
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"not yaml", "stations: [", "parsing network descriptor"},
		{"stations not a mapping", "stations: [a, b]\nlines: {}", "stations: expected a mapping"},
		{"missing name", "stations:\n  a: { lat: 1, lng: 2 }\nlines:\n  L: { route: [a] }", "stations.a"},
		{"latitude out of range", "stations:\n  a: { name: A, lat: 91, lng: 2 }\nlines:\n  L: { route: [a] }", "stations.a"},
		{"longitude out of range", "stations:\n  a: { name: A, lat: 1, lng: -181 }\nlines:\n  L: { route: [a] }", "stations.a"},
		{"empty route", "stations:\n  a: { name: A, lat: 1, lng: 2 }\nlines:\n  L: { route: [] }", "lines.L"},
		{"repeated stop", "stations:\n  a: { name: A, lat: 1, lng: 2 }\nlines:\n  L: { route: [a, a] }", "lines.L"},
		{"unknown stop", "stations:\n  a: { name: A, lat: 1, lng: 2 }\nlines:\n  L: { route: [a, b] }", `unknown station "b"`},
		{"no lines", "stations:\n  a: { name: A, lat: 1, lng: 2 }", ErrEmpty.Error()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "   \n\t"} {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrEmpty) {
			t.Errorf("Parse(%q) err = %v, want ErrEmpty", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	n, err := Load(strings.NewReader(yamlDescriptor))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n.StationCount() != 3 || n.LineCount() != 2 {
		t.Errorf("counts = %d/%d", n.StationCount(), n.LineCount())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.json")
	if err := os.WriteFile(path, []byte(jsonDescriptor), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n.StationCount() != 3 {
		t.Errorf("stations = %d, want 3", n.StationCount())
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadSampleNetwork(t *testing.T) {
	n, err := LoadFile(filepath.Join("..", "..", "data", "network.yaml"))
	if err != nil {
		t.Fatalf("sample network: %v", err)
	}
	if n.StationCount() != 33 || n.LineCount() != 5 {
		t.Errorf("counts = %d stations, %d lines", n.StationCount(), n.LineCount())
	}
	if first := n.Stations()[0]; first.ID != "jurong_east" {
		t.Errorf("first station = %s, want jurong_east", first.ID)
	}
}
