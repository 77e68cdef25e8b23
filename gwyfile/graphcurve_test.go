package gwyfile

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphCurveDefaults(t *testing.T) {
	c, err := NewGraphCurve([]float64{0, 1}, []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, c.NData())
	assert.Equal(t, int32(defaultCurveType), c.Type)
	assert.Equal(t, int32(defaultPointType), c.PointType)
	assert.Equal(t, int32(defaultLineStyle), c.LineStyle)
	assert.Equal(t, int32(defaultPointSize), c.PointSize)
	assert.Equal(t, int32(defaultLineSize), c.LineSize)
	assert.Equal(t, 0.0, c.ColorRed)

	_, err = NewGraphCurve([]float64{0, 1}, []float64{2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDecodeGraphCurveMinimal(t *testing.T) {
	obj := NewObject(graphCurveName,
		NewInt32Item("ndata", 3),
		NewDoubleArrayItem("xdata", []float64{0, 1, 2}),
		NewDoubleArrayItem("ydata", []float64{5, 6, 7}),
	)
	c, err := DecodeGraphCurve(obj)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, c.XData)
	assert.Equal(t, []float64{5, 6, 7}, c.YData)
	assert.Equal(t, "", c.Description)
	assert.Equal(t, int32(defaultPointType), c.PointType)
	assert.Equal(t, int32(defaultLineSize), c.LineSize)
}

func TestDecodeGraphCurveErrors(t *testing.T) {
	noNData := NewObject(graphCurveName,
		NewDoubleArrayItem("xdata", []float64{0}),
		NewDoubleArrayItem("ydata", []float64{0}),
	)
	_, err := DecodeGraphCurve(noNData)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.ErrorContains(t, err, "ndata")

	mismatch := NewObject(graphCurveName,
		NewInt32Item("ndata", 2),
		NewDoubleArrayItem("xdata", []float64{0, 1}),
		NewDoubleArrayItem("ydata", []float64{0}),
	)
	_, err = DecodeGraphCurve(mismatch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = DecodeGraphCurve(NewObject("GwyDataField"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestGraphCurveRoundTrip(t *testing.T) {
	c, err := NewGraphCurve([]float64{0, 0.5, 1}, []float64{1, 4, 9})
	require.NoError(t, err)
	c.Description = "height profile"
	c.Type = 2
	c.LineStyle = 1
	c.ColorRed = 0.8
	c.ColorBlue = 0.2

	obj, err := c.ToObject()
	require.NoError(t, err)
	got, err := DecodeGraphCurve(obj)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestDecodeGraphCurveCopiesData(t *testing.T) {
	obj := NewObject(graphCurveName,
		NewInt32Item("ndata", 2),
		NewDoubleArrayItem("xdata", []float64{0, 1}),
		NewDoubleArrayItem("ydata", []float64{5, 6}),
	)

	first, err := DecodeGraphCurve(obj)
	require.NoError(t, err)
	first.XData[0] = 99
	first.YData[1] = -1

	second, err := DecodeGraphCurve(obj)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, second.XData)
	assert.Equal(t, []float64{5, 6}, second.YData)
}

func TestGraphCurveEncodeRevalidates(t *testing.T) {
	c := &GraphCurve{XData: []float64{1}, YData: []float64{1, 2}}
	_, err := c.ToObject()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
