package location

import (
	"math"

	"github.com/randytsao24/mrtroute/internal/models"
)

const (
	earthDiameterKm = 12742
	degToRad        = math.Pi / 180
)

// Distance returns the great-circle distance in km between two points,
// rounded to one decimal place. Every cost in the router uses this value.
func Distance(a, b models.Coordinate) float64 {
	h := 0.5 - math.Cos((b.Lat-a.Lat)*degToRad)/2 +
		math.Cos(a.Lat*degToRad)*math.Cos(b.Lat*degToRad)*
			(1-math.Cos((b.Lng-a.Lng)*degToRad))/2

	// float error can push h a hair outside [0, 1]
	h = math.Min(math.Max(h, 0), 1)

	return RoundKm(earthDiameterKm * math.Asin(math.Sqrt(h)))
}

// RoundKm rounds a distance to one decimal place
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// KmToMiles converts kilometers to miles
func KmToMiles(km float64) float64 {
	return km / 1.609344
}
