package routing

import (
	"testing"

	"github.com/randytsao24/mrtroute/internal/models"
)

func TestLinesThrough(t *testing.T) {
	net := toyNetwork(t)

	tests := []struct {
		name    string
		station string
		exclude string
		want    []models.Connection
	}{
		{
			name:    "interchange in line order",
			station: "s2",
			want: []models.Connection{
				{Line: "A", Station: "s2", StopIndex: 1},
				{Line: "B", Station: "s2", StopIndex: 1},
			},
		},
		{
			name:    "exclude a line",
			station: "s2",
			exclude: "A",
			want:    []models.Connection{{Line: "B", Station: "s2", StopIndex: 1}},
		},
		{
			name:    "end of line",
			station: "s5",
			want:    []models.Connection{{Line: "B", Station: "s5", StopIndex: 2}},
		},
		{
			name:    "unknown station",
			station: "nowhere",
			want:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LinesThrough(net, tc.station, tc.exclude)
			if len(got) != len(tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("connection %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}
