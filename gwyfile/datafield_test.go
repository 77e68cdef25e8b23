package gwyfile

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataFieldValidation(t *testing.T) {
	_, err := NewDataField([]float64{1, 2, 3}, 2, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = NewDataField(nil, 0, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestNewDataFieldDefaults(t *testing.T) {
	d, err := NewDataField(make([]float64, 6), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.XReal)
	assert.Equal(t, 1.0, d.YReal)
	assert.Equal(t, 0.0, d.XOff)
	assert.Equal(t, 0.0, d.YOff)
	assert.Equal(t, "", d.SIUnitXY)
	assert.Equal(t, "", d.SIUnitZ)
}

func TestDataFieldAt(t *testing.T) {
	d, err := NewDataField([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.At(0, 2))
	assert.Equal(t, 4.0, d.At(1, 0))
	d.SetAt(1, 2, 9.5)
	assert.Equal(t, 9.5, d.At(1, 2))
}

func TestDecodeDataFieldMinimal(t *testing.T) {
	obj := NewObject(dataFieldName,
		NewInt32Item("xres", 2),
		NewInt32Item("yres", 2),
		NewDoubleArrayItem("data", []float64{1, 2, 3, 4}),
	)
	d, err := DecodeDataField(obj)
	require.NoError(t, err)
	assert.Equal(t, 2, d.XRes)
	assert.Equal(t, 2, d.YRes)
	assert.Equal(t, 1.0, d.XReal)
	assert.Equal(t, 1.0, d.YReal)
	assert.Equal(t, "", d.SIUnitZ)
	assert.Equal(t, []float64{1, 2, 3, 4}, d.Data)
}

func TestDecodeDataFieldErrors(t *testing.T) {
	_, err := DecodeDataField(NewObject("GwyGraphModel"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))

	missing := NewObject(dataFieldName, NewInt32Item("xres", 2))
	_, err = DecodeDataField(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.ErrorContains(t, err, "yres")

	short := NewObject(dataFieldName,
		NewInt32Item("xres", 2),
		NewInt32Item("yres", 2),
		NewDoubleArrayItem("data", []float64{1, 2, 3}),
	)
	_, err = DecodeDataField(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestDataFieldRoundTrip(t *testing.T) {
	d, err := NewDataField([]float64{0.5, -1.5, 2.25, 8}, 2, 2)
	require.NoError(t, err)
	d.XReal = 1e-6
	d.YReal = 2e-6
	d.XOff = -0.5e-6
	d.SIUnitXY = "m"
	d.SIUnitZ = "V"

	obj, err := d.ToObject()
	require.NoError(t, err)
	got, err := DecodeDataField(obj)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDecodeDataFieldCopiesBuffer(t *testing.T) {
	obj := NewObject(dataFieldName,
		NewInt32Item("xres", 2),
		NewInt32Item("yres", 2),
		NewDoubleArrayItem("data", []float64{1, 2, 3, 4}),
	)

	first, err := DecodeDataField(obj)
	require.NoError(t, err)
	first.SetAt(0, 0, 99)

	second, err := DecodeDataField(obj)
	require.NoError(t, err)
	assert.Equal(t, 1.0, second.At(0, 0))
	assert.Equal(t, []float64{1, 2, 3, 4}, second.Data)
}

func TestDataFieldEncodeRevalidates(t *testing.T) {
	d := &DataField{Data: []float64{1, 2}, XRes: 2, YRes: 2, XReal: 1, YReal: 1}
	_, err := d.ToObject()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
