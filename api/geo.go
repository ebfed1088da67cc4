package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linkme/linkme-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// requestLocation reads the caller's position from the `lat` and `lng` query
// or the Geo-Position header. It returns nil when neither is present.
func requestLocation(c *gin.Context) (*schema.Location, error) {
	gp := c.GetHeader("Geo-Position")
	if lat, lng := c.Query("lat"), c.Query("lng"); lat != "" || lng != "" {
		gp = lat + ";" + lng
	}

	if gp != "" {
		lat, lng, err := parseGeoPosition(gp)
		if err != nil {
			return nil, err
		}
		return &schema.Location{Latitude: lat, Longitude: lng}, nil
	}

	return nil, nil
}
