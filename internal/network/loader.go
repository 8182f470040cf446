package network

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/randytsao24/mrtroute/internal/models"
)

// stationEntry is one value of the descriptor's stations mapping
type stationEntry struct {
	Name string  `yaml:"name" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `yaml:"lng" validate:"gte=-180,lte=180"`
}

// lineEntry is one value of the descriptor's lines mapping
type lineEntry struct {
	Color string   `yaml:"color"`
	Route []string `yaml:"route" validate:"min=1,unique,dive,required"`
}

// descriptor mirrors the on-disk shape. Keys are kept as yaml nodes so the
// declaration order survives decoding; Go maps would lose it.
type descriptor struct {
	Stations yaml.Node `yaml:"stations"`
	Lines    yaml.Node `yaml:"lines"`
}

var validate = validator.New()

// LoadFile reads a network descriptor from a JSON or YAML file
func LoadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network file: %w", err)
	}

	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return n, nil
}

// Load reads a network descriptor from r
func Load(r io.Reader) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading network descriptor: %w", err)
	}
	return Parse(data)
}

// Parse decodes a descriptor of the form
//
//	stations: { <id>: { name, lat, lng } }
//	lines:    { <id>: { color, route: [<station id>...] } }
//
// JSON input is accepted as well since it is valid YAML.
func Parse(data []byte) (*Network, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing network descriptor: %w", err)
	}

	var stations []models.Station
	err := eachEntry(&d.Stations, "stations", func(id string, value *yaml.Node) error {
		var e stationEntry
		if err := value.Decode(&e); err != nil {
			return err
		}
		if err := validate.Struct(e); err != nil {
			return err
		}
		stations = append(stations, models.Station{
			ID:       id,
			Name:     e.Name,
			Location: models.Coordinate{Lat: e.Lat, Lng: e.Lng},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	var lines []models.Line
	err = eachEntry(&d.Lines, "lines", func(id string, value *yaml.Node) error {
		var e lineEntry
		if err := value.Decode(&e); err != nil {
			return err
		}
		if err := validate.Struct(e); err != nil {
			return err
		}
		lines = append(lines, models.Line{ID: id, Color: e.Color, Route: e.Route})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(stations, lines)
}

// eachEntry walks a mapping node in document order
func eachEntry(node *yaml.Node, section string, fn func(id string, value *yaml.Node) error) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping (line %d)", section, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if err := fn(key.Value, value); err != nil {
			return fmt.Errorf("%s.%s: %w", section, key.Value, err)
		}
	}
	return nil
}
