package tiles

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// Decoder converts a synthesized feature collection into the payload
// attached to a tile. The rendering side consumes the payload as-is.
type Decoder interface {
	Decode(fc *geojson.FeatureCollection) ([]byte, error)
}

// GeoJSONDecoder emits the collection as GeoJSON bytes.
type GeoJSONDecoder struct{}

// Decode marshals the feature collection.
func (GeoJSONDecoder) Decode(fc *geojson.FeatureCollection) ([]byte, error) {
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feature collection: %w", err)
	}
	return data, nil
}
