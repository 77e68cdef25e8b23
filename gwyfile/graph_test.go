package gwyfile

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurveObject(t *testing.T) *Object {
	t.Helper()
	c, err := NewGraphCurve([]float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	obj, err := c.ToObject()
	require.NoError(t, err)
	return obj
}

func TestNewGraphModelDefaults(t *testing.T) {
	m := NewGraphModel(nil)
	assert.True(t, m.LabelVisible)
	assert.True(t, m.LabelHasFrame)
	assert.False(t, m.LabelReverse)
	assert.Equal(t, int32(1), m.LabelFrameThickness)
	assert.Equal(t, int32(0), m.LabelPosition)
	assert.Equal(t, int32(1), m.GridType)
	assert.Nil(t, m.XMin)
}

func TestDecodeGraphModelMinimal(t *testing.T) {
	obj := NewObject(graphModelName,
		NewInt32Item("ncurves", 1),
		NewObjectArrayItem("curves", []*Object{testCurveObject(t)}),
	)
	m, err := DecodeGraphModel(obj)
	require.NoError(t, err)
	require.Len(t, m.Curves, 1)
	assert.Equal(t, "", m.Title)
	assert.True(t, m.LabelVisible)
	assert.True(t, m.LabelHasFrame)
	assert.Equal(t, int32(1), m.GridType)
	assert.Nil(t, m.XMin)
	assert.Nil(t, m.YMax)
	assert.False(t, m.XIsLogarithmic)
}

func TestDecodeGraphModelMissingNCurves(t *testing.T) {
	obj := NewObject(graphModelName,
		NewObjectArrayItem("curves", []*Object{testCurveObject(t)}),
	)
	_, err := DecodeGraphModel(obj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDecodeGraphModelCurveCountMismatch(t *testing.T) {
	obj := NewObject(graphModelName,
		NewInt32Item("ncurves", 2),
		NewObjectArrayItem("curves", []*Object{testCurveObject(t)}),
	)
	_, err := DecodeGraphModel(obj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDecodeGraphModelBadCurve(t *testing.T) {
	obj := NewObject(graphModelName,
		NewInt32Item("ncurves", 1),
		NewObjectArrayItem("curves", []*Object{NewObject(graphCurveName)}),
	)
	_, err := DecodeGraphModel(obj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.ErrorContains(t, err, "curve 0")
}

func TestGraphModelRangeFlags(t *testing.T) {
	// An unset flag hides any stray value under the paired key.
	obj := NewObject(graphModelName,
		NewInt32Item("ncurves", 0),
		NewDoubleItem("x_min", 42.0),
		NewBoolItem("x_min_set", false),
		NewDoubleItem("x_max", 7.5),
		NewBoolItem("x_max_set", true),
	)
	m, err := DecodeGraphModel(obj)
	require.NoError(t, err)
	assert.Nil(t, m.XMin)
	require.NotNil(t, m.XMax)
	assert.Equal(t, 7.5, *m.XMax)

	// A set flag with no value is a malformed store.
	broken := NewObject(graphModelName,
		NewInt32Item("ncurves", 0),
		NewBoolItem("y_min_set", true),
	)
	_, err = DecodeGraphModel(broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestGraphModelRoundTrip(t *testing.T) {
	c, err := NewGraphCurve([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)
	c.Description = "profile 1"

	m := NewGraphModel([]*GraphCurve{c})
	m.Title = "Profiles"
	m.BottomLabel = "x"
	m.LeftLabel = "z"
	m.XUnit = "m"
	m.YUnit = "m"
	xmin := -1.0
	ymax := 10.0
	m.XMin = &xmin
	m.YMax = &ymax
	m.XIsLogarithmic = true

	obj, err := m.ToObject()
	require.NoError(t, err)
	got, err := DecodeGraphModel(obj)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	// Unset bounds come back nil even though the placeholder slot is written.
	v, ok, err := obj.GetDouble("x_max")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	assert.Nil(t, got.XMax)
}

func TestGraphModelEncodeCountIsAuthoritative(t *testing.T) {
	c, err := NewGraphCurve([]float64{0}, []float64{0})
	require.NoError(t, err)
	m := NewGraphModel([]*GraphCurve{c, c})

	obj, err := m.ToObject()
	require.NoError(t, err)
	n, ok, err := obj.GetInt32("ncurves")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(2), n)
}
