package gwyfile

import "fmt"

// channelKey formats a channel-scoped container key: the decimal channel id
// followed by a fixed literal suffix, e.g. channelKey(0, "base/palette") ->
// "/0/base/palette". The spelling of the suffixes is part of the wire
// contract.
func channelKey(id int, leaf string) string {
	return fmt.Sprintf("/%d/%s", id, leaf)
}

// Channel is one image dataset with its display, mask, presentation and
// selection metadata. Data is the only required field; every pointer field
// is nil when the corresponding container key is absent.
type Channel struct {
	Title   *string
	Data    *DataField
	Visible bool

	Palette   *string
	RangeType *int32
	RangeMin  *float64
	RangeMax  *float64

	Mask      *DataField
	MaskRed   *float64
	MaskGreen *float64
	MaskBlue  *float64
	MaskAlpha *float64

	Show *DataField

	PointSelection     *PointSelection
	PointerSelection   *PointerSelection
	LineSelection      *LineSelection
	RectangleSelection *RectangleSelection
	EllipseSelection   *EllipseSelection
}

// NewChannel creates a channel around its primary data field. A channel
// without a data field is not a valid channel (ErrValidation).
func NewChannel(data *DataField) (*Channel, error) {
	if data == nil {
		return nil, validationf("channel without a data field")
	}
	return &Channel{Data: data}, nil
}

// optString reads an optional string item as a nullable value.
func optString(o *Object, key string) (*string, error) {
	v, ok, err := o.GetString(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// optInt32 reads an optional 32-bit integer item as a nullable value.
func optInt32(o *Object, key string) (*int32, error) {
	v, ok, err := o.GetInt32(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// optDouble reads an optional double item as a nullable value.
func optDouble(o *Object, key string) (*float64, error) {
	v, ok, err := o.GetDouble(key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// optDataField reads an optional nested data field.
func optDataField(o *Object, key string) (*DataField, error) {
	obj, ok, err := o.GetObject(key)
	if err != nil || !ok {
		return nil, err
	}
	return DecodeDataField(obj)
}

// Channel assembles the channel with the given id. The primary data field
// is required (ErrNotFound when absent); every other key is independently
// presence-checked, so one missing optional item never aborts the rest of
// the assembly.
func (f *File) Channel(id int) (*Channel, error) {
	root := f.root

	dataObj, ok, err := root.GetObject(channelKey(id, "data"))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundf("channel with id %d not found", id)
	}
	data, err := DecodeDataField(dataObj)
	if err != nil {
		return nil, err
	}

	c := &Channel{Data: data}
	if c.Title, err = optString(root, channelKey(id, "data/title")); err != nil {
		return nil, err
	}
	if c.Visible, err = root.BoolOr(channelKey(id, "data/visible"), false); err != nil {
		return nil, err
	}
	if c.Palette, err = optString(root, channelKey(id, "base/palette")); err != nil {
		return nil, err
	}
	if c.RangeType, err = optInt32(root, channelKey(id, "base/range-type")); err != nil {
		return nil, err
	}
	if c.RangeMin, err = optDouble(root, channelKey(id, "base/min")); err != nil {
		return nil, err
	}
	if c.RangeMax, err = optDouble(root, channelKey(id, "base/max")); err != nil {
		return nil, err
	}

	if c.Mask, err = optDataField(root, channelKey(id, "mask")); err != nil {
		return nil, err
	}
	if c.MaskRed, err = optDouble(root, channelKey(id, "mask/red")); err != nil {
		return nil, err
	}
	if c.MaskGreen, err = optDouble(root, channelKey(id, "mask/green")); err != nil {
		return nil, err
	}
	if c.MaskBlue, err = optDouble(root, channelKey(id, "mask/blue")); err != nil {
		return nil, err
	}
	if c.MaskAlpha, err = optDouble(root, channelKey(id, "mask/alpha")); err != nil {
		return nil, err
	}
	if c.Show, err = optDataField(root, channelKey(id, "show")); err != nil {
		return nil, err
	}

	if obj, ok, err := root.GetObject(channelKey(id, "select/point")); err != nil {
		return nil, err
	} else if ok {
		if c.PointSelection, err = DecodePointSelection(obj); err != nil {
			return nil, err
		}
	}
	if obj, ok, err := root.GetObject(channelKey(id, "select/pointer")); err != nil {
		return nil, err
	} else if ok {
		if c.PointerSelection, err = DecodePointerSelection(obj); err != nil {
			return nil, err
		}
	}
	if obj, ok, err := root.GetObject(channelKey(id, "select/line")); err != nil {
		return nil, err
	} else if ok {
		if c.LineSelection, err = DecodeLineSelection(obj); err != nil {
			return nil, err
		}
	}
	if obj, ok, err := root.GetObject(channelKey(id, "select/rectangle")); err != nil {
		return nil, err
	} else if ok {
		if c.RectangleSelection, err = DecodeRectangleSelection(obj); err != nil {
			return nil, err
		}
	}
	if obj, ok, err := root.GetObject(channelKey(id, "select/ellipse")); err != nil {
		return nil, err
	} else if ok {
		if c.EllipseSelection, err = DecodeEllipseSelection(obj); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AddTo writes the channel into a container object under the key templates
// for the given channel id: the structural inverse of Channel. Nil optional
// fields are not written; visible is always written.
func (c *Channel) AddTo(root *Object, id int) error {
	if root.Name() != containerName {
		return wrongTypef("cannot add channel to %q, want %q", root.Name(), containerName)
	}
	if c.Data == nil {
		return validationf("channel without a data field")
	}

	dataObj, err := c.Data.ToObject()
	if err != nil {
		return err
	}
	root.Add(NewObjectItem(channelKey(id, "data"), dataObj))

	if c.Title != nil {
		root.Add(NewStringItem(channelKey(id, "data/title"), *c.Title))
	}
	root.Add(NewBoolItem(channelKey(id, "data/visible"), c.Visible))
	if c.Palette != nil {
		root.Add(NewStringItem(channelKey(id, "base/palette"), *c.Palette))
	}
	if c.RangeType != nil {
		root.Add(NewInt32Item(channelKey(id, "base/range-type"), *c.RangeType))
	}
	if c.RangeMin != nil {
		root.Add(NewDoubleItem(channelKey(id, "base/min"), *c.RangeMin))
	}
	if c.RangeMax != nil {
		root.Add(NewDoubleItem(channelKey(id, "base/max"), *c.RangeMax))
	}

	if c.Mask != nil {
		maskObj, err := c.Mask.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "mask"), maskObj))
	}
	if c.MaskRed != nil {
		root.Add(NewDoubleItem(channelKey(id, "mask/red"), *c.MaskRed))
	}
	if c.MaskGreen != nil {
		root.Add(NewDoubleItem(channelKey(id, "mask/green"), *c.MaskGreen))
	}
	if c.MaskBlue != nil {
		root.Add(NewDoubleItem(channelKey(id, "mask/blue"), *c.MaskBlue))
	}
	if c.MaskAlpha != nil {
		root.Add(NewDoubleItem(channelKey(id, "mask/alpha"), *c.MaskAlpha))
	}
	if c.Show != nil {
		showObj, err := c.Show.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "show"), showObj))
	}

	if c.PointSelection != nil {
		obj, err := c.PointSelection.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "select/point"), obj))
	}
	if c.PointerSelection != nil {
		obj, err := c.PointerSelection.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "select/pointer"), obj))
	}
	if c.LineSelection != nil {
		obj, err := c.LineSelection.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "select/line"), obj))
	}
	if c.RectangleSelection != nil {
		obj, err := c.RectangleSelection.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "select/rectangle"), obj))
	}
	if c.EllipseSelection != nil {
		obj, err := c.EllipseSelection.ToObject()
		if err != nil {
			return err
		}
		root.Add(NewObjectItem(channelKey(id, "select/ellipse"), obj))
	}

	return nil
}
