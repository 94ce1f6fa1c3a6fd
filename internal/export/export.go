// Package export renders solved tours and custom routes as GeoJSON, the
// rendering-neutral form handed to map front ends.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/tsp"
)

// ErrMismatch reports names or an order that do not line up with the points.
var ErrMismatch = errors.New("export: points, names and order do not match")

// Feature property keys.
const (
	PropKind     = "kind"
	PropName     = "name"
	PropStop     = "stop"
	PropLength   = "length"
	PropDistance = "distance"
	PropStops    = "stops"
)

// Feature kinds.
const (
	KindTour  = "tour"
	KindRoute = "route"
	KindStop  = "stop"
)

// TourFeatureCollection builds one closed LineString feature for the tour,
// followed by one Point feature per stop in visiting order.
//
// The tour feature carries "length" (res.Length, the penalised cost) and
// "distance" (plain planar length of the drawn line). Stop features carry
// "stop" (0-based position) and, when names is non-nil, "name".
func TourFeatureCollection(points []orb.Point, names []string, res tsp.Result) (*geojson.FeatureCollection, error) {
	if names != nil && len(names) != len(points) {
		return nil, fmt.Errorf("%w: %d names for %d points", ErrMismatch, len(names), len(points))
	}
	if err := tsp.ValidatePermutation(res.Order, len(points)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}

	fc := geojson.NewFeatureCollection()
	if len(points) == 0 {
		return fc, nil
	}

	closed := tsp.CloseTour(res.Order)
	line := make(orb.LineString, len(closed))
	for k, idx := range closed {
		line[k] = points[idx]
	}

	tour := geojson.NewFeature(line)
	tour.Properties[PropKind] = KindTour
	tour.Properties[PropLength] = res.Length
	tour.Properties[PropDistance] = planar.Length(line)
	tour.Properties[PropStops] = len(res.Order)
	fc.Append(tour)

	for k, idx := range res.Order {
		f := geojson.NewFeature(points[idx])
		f.Properties[PropKind] = KindStop
		f.Properties[PropStop] = k
		if names != nil {
			f.Properties[PropName] = names[idx]
		}
		fc.Append(f)
	}

	return fc, nil
}

// CustomRouteFeature draws points in the given order as an open LineString.
func CustomRouteFeature(points []orb.Point) *geojson.Feature {
	line := make(orb.LineString, len(points))
	copy(line, points)

	f := geojson.NewFeature(line)
	f.Properties[PropKind] = KindRoute
	f.Properties[PropStops] = len(points)
	f.Properties[PropDistance] = planar.Length(line)

	return f
}

// Write encodes fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling GeoJSON: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("writing GeoJSON: %w", err)
	}

	return nil
}
