package gwyfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// graphKey formats the container key of a graph model object. Graph
// enumeration starts at 1 in GWY files.
func graphKey(id int) string {
	return fmt.Sprintf("/0/graph/graph/%d", id)
}

// ChannelIDs returns the ids of all channels in the file, ascending. A
// channel is identified by a /N/data item holding a GwyDataField.
func (f *File) ChannelIDs() []int {
	var ids []int
	for _, it := range f.root.Items() {
		if it.Type != TypeObject {
			continue
		}
		parts := strings.Split(it.Key, "/")
		if len(parts) != 3 || parts[0] != "" || parts[2] != "data" {
			continue
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if obj := it.Value.(*Object); obj.Name() == dataFieldName {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// GraphIDs returns the ids of all graph models in the file, ascending. A
// graph is identified by a /0/graph/graph/N item holding a GwyGraphModel.
func (f *File) GraphIDs() []int {
	var ids []int
	for _, it := range f.root.Items() {
		if it.Type != TypeObject {
			continue
		}
		parts := strings.Split(it.Key, "/")
		if len(parts) != 5 || parts[0] != "" || parts[1] != "0" ||
			parts[2] != "graph" || parts[3] != "graph" {
			continue
		}
		id, err := strconv.Atoi(parts[4])
		if err != nil {
			continue
		}
		if obj := it.Value.(*Object); obj.Name() == graphModelName {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Graph decodes the graph model with the given id, including its
// container-level visibility flag. An absent graph is an ErrNotFound.
func (f *File) Graph(id int) (*GraphModel, error) {
	key := graphKey(id)
	obj, ok, err := f.root.GetObject(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundf("graph with id %d not found", id)
	}
	m, err := DecodeGraphModel(obj)
	if err != nil {
		return nil, err
	}
	if m.Visible, err = f.root.BoolOr(key+"/visible", false); err != nil {
		return nil, err
	}
	return m, nil
}

// Container is a whole decoded GWY file: every channel and graph it holds,
// in id order, plus the basename the file records about itself.
type Container struct {
	Filename string
	Channels []*Channel
	Graphs   []*GraphModel
}

// Container decodes every channel and graph in the file. The read is
// all-or-nothing: the first failing channel or graph aborts it.
func (f *File) Container() (*Container, error) {
	c := &Container{}

	pathname, _, err := f.root.GetString("/filename")
	if err != nil {
		return nil, err
	}
	if pathname != "" {
		c.Filename = filepath.Base(pathname)
	}

	for _, id := range f.ChannelIDs() {
		channel, err := f.Channel(id)
		if err != nil {
			return nil, err
		}
		c.Channels = append(c.Channels, channel)
	}
	for _, id := range f.GraphIDs() {
		graph, err := f.Graph(id)
		if err != nil {
			return nil, err
		}
		c.Graphs = append(c.Graphs, graph)
	}
	return c, nil
}

// ReadFile loads a GWY file and decodes it into a Container.
func ReadFile(path string) (*Container, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Container()
}

// ToObject builds a GwyContainer holding the container's channels and
// graphs. Channels are numbered from 0 in slice order; graphs from 1, with
// their visibility flag written next to each graph object.
func (c *Container) ToObject() (*Object, error) {
	root := NewObject(containerName)
	for id, channel := range c.Channels {
		if err := channel.AddTo(root, id); err != nil {
			return nil, err
		}
	}
	for i, graph := range c.Graphs {
		obj, err := graph.ToObject()
		if err != nil {
			return nil, err
		}
		key := graphKey(i + 1)
		root.Add(NewObjectItem(key, obj))
		root.Add(NewBoolItem(key+"/visible", graph.Visible))
	}
	return root, nil
}

// WriteFile encodes the container and writes it to path, overwriting any
// existing file. The absolute path is recorded under /filename, matching
// what Gwyddion itself stores.
func (c *Container) WriteFile(path string) error {
	root, err := c.ToObject()
	if err != nil {
		return err
	}
	abspath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	root.Add(NewStringItem("/filename", abspath))
	return writeGWYFile(path, root)
}
