package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type distanceTestCase struct {
	lat1, lon1, lat2, lon2 float64
	expected               float64
	delta                  float64
}

func TestDistanceKm(t *testing.T) {
	cases := []distanceTestCase{
		{43.8563, 18.4131, 43.8563, 18.4131, 0, 0},
		{0, 0, 0, 1, 111.195, 0.01},
		{0, 0, 1, 0, 111.195, 0.01},
		// Sarajevo - Belgrade
		{43.8563, 18.4131, 44.7866, 20.4489, 192.16, 0.01},
		{90, 0, -90, 0, 20015.09, 0.1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.expected, DistanceKm(c.lat1, c.lon1, c.lat2, c.lon2), c.delta)
	}
}

func TestDistanceKmIsSymmetric(t *testing.T) {
	points := [][2]float64{
		{43.8563, 18.4131},
		{44.7866, 20.4489},
		{-33.8688, 151.2093},
		{0, 0},
		{51.5074, -0.1278},
	}
	for _, a := range points {
		assert.Equal(t, float64(0), DistanceKm(a[0], a[1], a[0], a[1]))
		for _, b := range points {
			ab := DistanceKm(a[0], a[1], b[0], b[1])
			ba := DistanceKm(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-9)
			assert.True(t, ab >= 0)
		}
	}
}

func TestDistanceKmAntipodal(t *testing.T) {
	halfCircumference := EarthRadiusKm * math.Pi

	for lat := -89.0; lat <= 89; lat += 0.37 {
		for lon := -180.0; lon <= 180; lon += 7 {
			d := DistanceKm(lat, lon, -lat, lon+180)
			assert.False(t, math.IsNaN(d), "lat=%v lon=%v", lat, lon)
			assert.InDelta(t, halfCircumference, d, 0.5, "lat=%v lon=%v", lat, lon)
		}
	}

	assert.InDelta(t, halfCircumference, DistanceKm(-86.78, -179, 86.78, 1), 0.5)
}
