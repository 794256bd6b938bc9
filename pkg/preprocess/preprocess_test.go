package preprocess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/parking-service/pkg/ptr"
)

func dataset() []DataPoint {
	return []DataPoint{
		{ID: "a", Features: map[string]*float64{"x": ptr.Ptr(1.0), "y": ptr.Ptr(10.0)}},
		{ID: "b", Features: map[string]*float64{"x": ptr.Ptr(2.0), "y": nil}},
		{ID: "c", Features: map[string]*float64{"x": ptr.Ptr(3.0), "y": ptr.Ptr(30.0)}},
		{ID: "d", Features: map[string]*float64{"x": ptr.Ptr(2.0), "y": ptr.Ptr(20.0)}},
	}
}

func TestHandleMissingValuesMean(t *testing.T) {
	out, err := HandleMissingValues(dataset(), StrategyMean)
	require.NoError(t, err)
	require.Len(t, out, 4)

	// Mean of present y values: (10+30+20)/3 = 20
	require.NotNil(t, out[1].Features["y"])
	assert.InDelta(t, 20.0, *out[1].Features["y"], 1e-9)
}

func TestHandleMissingValuesMedian(t *testing.T) {
	out, err := HandleMissingValues(dataset(), StrategyMedian)
	require.NoError(t, err)

	// Present y values sorted: 10, 20, 30 -> middle element 20
	require.NotNil(t, out[1].Features["y"])
	assert.InDelta(t, 20.0, *out[1].Features["y"], 1e-9)
}

func TestHandleMissingValuesMode(t *testing.T) {
	out, err := HandleMissingValues(dataset(), StrategyMode)
	require.NoError(t, err)

	// x is untouched; y mode over {10,30,20} ties, smallest wins
	require.NotNil(t, out[1].Features["y"])
	assert.InDelta(t, 10.0, *out[1].Features["y"], 1e-9)
}

func TestHandleMissingValuesDrop(t *testing.T) {
	out, err := HandleMissingValues(dataset(), StrategyDrop)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, point := range out {
		assert.NotEqual(t, "b", point.ID)
	}
}

func TestHandleMissingValuesErrors(t *testing.T) {
	_, err := HandleMissingValues(nil, StrategyMean)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = HandleMissingValues(dataset(), Strategy("interpolate"))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestHandleMissingValuesDoesNotMutateInput(t *testing.T) {
	in := dataset()
	_, err := HandleMissingValues(in, StrategyMean)
	require.NoError(t, err)
	assert.Nil(t, in[1].Features["y"])
}

func TestHandleOutliers(t *testing.T) {
	points := []DataPoint{
		{ID: "a", Features: map[string]*float64{"x": ptr.Ptr(10.0)}},
		{ID: "b", Features: map[string]*float64{"x": ptr.Ptr(11.0)}},
		{ID: "c", Features: map[string]*float64{"x": ptr.Ptr(12.0)}},
		{ID: "d", Features: map[string]*float64{"x": ptr.Ptr(13.0)}},
		{ID: "e", Features: map[string]*float64{"x": ptr.Ptr(1000.0)}},
	}

	out, err := HandleOutliers(points, 1.5)
	require.NoError(t, err)

	// sorted: 10,11,12,13,1000 -> q1=11, q3=13, iqr=2, upper=16
	assert.InDelta(t, 16.0, *out[4].Features["x"], 1e-9)
	assert.InDelta(t, 10.0, *out[0].Features["x"], 1e-9)
}

func TestNormalizeFeatures(t *testing.T) {
	points := []DataPoint{
		{ID: "a", Features: map[string]*float64{"x": ptr.Ptr(0.0), "flat": ptr.Ptr(5.0)}},
		{ID: "b", Features: map[string]*float64{"x": ptr.Ptr(5.0), "flat": ptr.Ptr(5.0)}},
		{ID: "c", Features: map[string]*float64{"x": ptr.Ptr(10.0), "flat": ptr.Ptr(5.0)}},
	}

	out, err := NormalizeFeatures(points)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, *out[0].Features["x"], 1e-9)
	assert.InDelta(t, 0.5, *out[1].Features["x"], 1e-9)
	assert.InDelta(t, 1.0, *out[2].Features["x"], 1e-9)

	// Zero-range feature maps to 0 instead of dividing by zero
	assert.InDelta(t, 0.0, *out[1].Features["flat"], 1e-9)
}

func TestSplit(t *testing.T) {
	points := make([]DataPoint, 10)
	ids := make(map[string]bool)
	for i := range points {
		id := string(rune('a' + i))
		points[i] = DataPoint{ID: id, Features: map[string]*float64{"x": ptr.Ptr(float64(i))}}
		ids[id] = true
	}

	rng := rand.New(rand.NewSource(42))
	train, test := Split(points, 0.2, rng)

	assert.Len(t, train, 8)
	assert.Len(t, test, 2)

	// Every point lands in exactly one subset
	seen := make(map[string]bool)
	for _, p := range append(append([]DataPoint(nil), train...), test...) {
		assert.False(t, seen[p.ID], "duplicate point %s", p.ID)
		assert.True(t, ids[p.ID])
		seen[p.ID] = true
	}
	assert.Len(t, seen, 10)
}
