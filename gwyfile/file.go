package gwyfile

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-gwyfile/internal/binary"
)

// magic is the four-byte GWY file signature.
const magic = "GWYP"

// containerName is the required type name of the top-level object.
const containerName = "GwyContainer"

// File is a loaded GWY store handle: the parsed top-level container plus the
// path it came from. It is read-many from this layer; decoded entities are
// independent copies with no back-reference to the handle.
type File struct {
	path string
	root *Object
}

// Load reads and parses a GWY file. A missing file is an ErrNotFound; a bad
// magic, a truncated object graph, or a top-level object that is not a
// GwyContainer is an ErrFormat preserving the parser diagnostic.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "cannot find file %s", path), ErrNotFound)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return nil, formatf("%s: missing GWYP magic", path)
	}

	root, err := parseObject(binary.NewReader(data[len(magic):]))
	if err != nil {
		return nil, formatWrap(errors.Wrapf(err, "%s", path))
	}
	if root.Name() != containerName {
		return nil, formatf("%s: top-level object is %q, not %q", path, root.Name(), containerName)
	}

	return &File{path: path, root: root}, nil
}

// Path returns the file path the handle was loaded from.
func (f *File) Path() string {
	return f.path
}

// Root returns the top-level container object.
func (f *File) Root() *Object {
	return f.root
}

// Check reports whether the container holds an item under key.
func (f *File) Check(key string) bool {
	return f.root.Check(key)
}

// GetBool returns the boolean stored under a container key.
func (f *File) GetBool(key string) (bool, bool, error) {
	return f.root.GetBool(key)
}

// GetInt32 returns the 32-bit integer stored under a container key.
func (f *File) GetInt32(key string) (int32, bool, error) {
	return f.root.GetInt32(key)
}

// GetDouble returns the double stored under a container key.
func (f *File) GetDouble(key string) (float64, bool, error) {
	return f.root.GetDouble(key)
}

// GetString returns the string stored under a container key.
func (f *File) GetString(key string) (string, bool, error) {
	return f.root.GetString(key)
}

// GetObject returns the nested object stored under a container key.
func (f *File) GetObject(key string) (*Object, bool, error) {
	return f.root.GetObject(key)
}

// writeGWYFile serializes a container object to path, overwriting any
// existing file.
func writeGWYFile(path string, root *Object) error {
	w := binary.NewWriter()
	w.WriteBytes([]byte(magic))
	root.appendTo(w)
	if err := os.WriteFile(path, w.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
