package geo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/linkme/linkme-api/schema"
)

const (
	logPrefix      = "geo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrNoAddressFound         = fmt.Errorf("no address found for location")
	ErrResolverNotInitialized = fmt.Errorf("address resolver is not initialized")
)

// AddressResolver turns coordinates into a human readable address
type AddressResolver interface {
	ResolveAddress(ctx context.Context, loc schema.Location) (string, error)
}

// Geocoder is the part of the google maps client used for reverse geocoding
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GeocodingAddressResolver struct {
	client   Geocoder
	language string
}

func NewGeocodingAddressResolver(client Geocoder, language string) *GeocodingAddressResolver {
	return &GeocodingAddressResolver{
		client:   client,
		language: language,
	}
}

// NewGoogleMapsResolver builds a resolver backed by the google maps
// geocoding api
func NewGoogleMapsResolver(apiKey, language string) (*GeocodingAddressResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return NewGeocodingAddressResolver(client, language), nil
}

func (g *GeocodingAddressResolver) ResolveAddress(ctx context.Context, loc schema.Location) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrResolverNotInitialized
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("reverse geocode")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"street_address|route|locality"},
		Language:   g.language,
	})
	if err != nil {
		return "", err
	}

	for _, r := range geos {
		if r.FormattedAddress != "" {
			return r.FormattedAddress, nil
		}
	}

	return "", ErrNoAddressFound
}
