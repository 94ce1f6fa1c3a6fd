package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/tsp"
)

func squareFixture() ([]orb.Point, []string, tsp.Result) {
	pts := []orb.Point{{0, 0}, {10, 10}, {0, 10}, {10, 0}}
	names := []string{"a", "b", "c", "d"}
	res := tsp.Result{Order: []int{0, 2, 1, 3}, Length: 40}

	return pts, names, res
}

func TestTourFeatureCollection(t *testing.T) {
	pts, names, res := squareFixture()

	fc, err := TourFeatureCollection(pts, names, res)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1+len(pts))

	tour := fc.Features[0]
	line, ok := tour.Geometry.(orb.LineString)
	require.True(t, ok, "tour geometry is %T", tour.Geometry)
	require.Equal(t, orb.LineString{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}, line)
	require.Equal(t, KindTour, tour.Properties[PropKind])
	require.Equal(t, 40.0, tour.Properties[PropLength])
	require.InDelta(t, 40.0, tour.Properties[PropDistance], 1e-9)

	wantNames := []string{"a", "c", "b", "d"}
	for k, f := range fc.Features[1:] {
		require.Equal(t, KindStop, f.Properties[PropKind])
		require.Equal(t, k, f.Properties[PropStop])
		require.Equal(t, wantNames[k], f.Properties[PropName])
		require.Equal(t, pts[res.Order[k]], f.Geometry)
	}
}

func TestTourFeatureCollection_NoNames(t *testing.T) {
	pts, _, res := squareFixture()
	fc, err := TourFeatureCollection(pts, nil, res)
	require.NoError(t, err)
	_, has := fc.Features[1].Properties[PropName]
	require.False(t, has)
}

func TestTourFeatureCollection_Empty(t *testing.T) {
	fc, err := TourFeatureCollection(nil, nil, tsp.Result{Order: []int{}})
	require.NoError(t, err)
	require.Empty(t, fc.Features)
}

func TestTourFeatureCollection_Mismatch(t *testing.T) {
	pts, names, res := squareFixture()

	_, err := TourFeatureCollection(pts, names[:2], res)
	require.True(t, errors.Is(err, ErrMismatch))

	res.Order = []int{0, 1, 1, 3}
	_, err = TourFeatureCollection(pts, names, res)
	require.True(t, errors.Is(err, ErrMismatch))
	require.True(t, errors.Is(err, tsp.ErrDimensionMismatch))
}

func TestCustomRouteFeature(t *testing.T) {
	pts := []orb.Point{{0, 0}, {3, 4}, {3, 0}}
	f := CustomRouteFeature(pts)

	require.Equal(t, orb.LineString{{0, 0}, {3, 4}, {3, 0}}, f.Geometry)
	require.Equal(t, KindRoute, f.Properties[PropKind])
	require.Equal(t, 3, f.Properties[PropStops])
	require.InDelta(t, 9.0, f.Properties[PropDistance], 1e-9)

	pts[0] = orb.Point{99, 99}
	require.Equal(t, orb.Point{0, 0}, f.Geometry.(orb.LineString)[0])
}

func TestWrite_RoundTrip(t *testing.T) {
	pts, names, res := squareFixture()
	fc, err := TourFeatureCollection(pts, names, res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fc))

	back, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, back.Features, len(fc.Features))
	require.Equal(t, "c", back.Features[2].Properties[PropName])
	require.Equal(t, 40.0, back.Features[0].Properties[PropLength])
}
