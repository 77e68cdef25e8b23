package gwyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestGWY serializes root with the file magic into dir and returns the
// path.
func writeTestGWY(t *testing.T, dir, name string, root *Object) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, writeGWYFile(path, root))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gwy"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gwy")
	require.NoError(t, os.WriteFile(path, []byte("NOPE rest of file"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.ErrorContains(t, err, "magic")
}

func TestLoadWrongTopLevelObject(t *testing.T) {
	path := writeTestGWY(t, t.TempDir(), "wrong.gwy", NewObject("GwyDataField"))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.ErrorContains(t, err, "GwyContainer")
}

func TestLoadTruncated(t *testing.T) {
	root := NewObject(containerName, NewStringItem("/filename", "x.gwy"))
	full := append([]byte(magic), root.Encode()...)
	path := filepath.Join(t.TempDir(), "trunc.gwy")
	require.NoError(t, os.WriteFile(path, full[:len(full)-3], 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestLoadAndGetters(t *testing.T) {
	root := NewObject(containerName,
		NewStringItem("/filename", "scan.gwy"),
		NewBoolItem("/0/data/visible", true),
		NewInt32Item("/0/base/range-type", 1),
		NewDoubleItem("/0/base/min", -2.5),
		NewObjectItem("/0/data", NewObject(dataFieldName,
			NewInt32Item("xres", 1),
			NewInt32Item("yres", 1),
			NewDoubleArrayItem("data", []float64{0}),
		)),
	)
	path := writeTestGWY(t, t.TempDir(), "scan.gwy", root)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
	assert.Equal(t, containerName, f.Root().Name())

	assert.True(t, f.Check("/filename"))
	assert.False(t, f.Check("/1/data"))

	s, ok, err := f.GetString("/filename")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "scan.gwy", s)

	b, ok, err := f.GetBool("/0/data/visible")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b)

	i, ok, err := f.GetInt32("/0/base/range-type")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(1), i)

	d, ok, err := f.GetDouble("/0/base/min")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -2.5, d)

	obj, ok, err := f.GetObject("/0/data")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, dataFieldName, obj.Name())
}
