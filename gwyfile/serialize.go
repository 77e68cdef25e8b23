package gwyfile

import (
	"fmt"

	"github.com/robert-malhotra/go-gwyfile/internal/binary"
)

// parseObject reads one serialized object: NUL-terminated type name, uint32
// payload size, then the items. Errors are plain diagnostics; callers mark
// them as ErrFormat at the store boundary.
func parseObject(r *binary.Reader) (*Object, error) {
	name, err := r.ReadCString()
	if err != nil {
		return nil, fmt.Errorf("object name: %w", err)
	}
	size, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("object %q size: %w", name, err)
	}
	sub, err := r.Sub(int(size))
	if err != nil {
		return nil, fmt.Errorf("object %q payload: %w", name, err)
	}

	o := NewObject(name)
	for sub.Remaining() > 0 {
		item, err := parseItem(sub)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		o.Add(item)
	}
	return o, nil
}

// parseItem reads one item: NUL-terminated key, type byte, value.
func parseItem(r *binary.Reader) (*Item, error) {
	key, err := r.ReadCString()
	if err != nil {
		return nil, fmt.Errorf("item key: %w", err)
	}
	tb, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("item %q type: %w", key, err)
	}

	switch t := ItemType(tb); t {
	case TypeBool:
		v, err := r.ReadBool()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewBoolItem(key, v), nil
	case TypeInt32:
		v, err := r.ReadInt32()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewInt32Item(key, v), nil
	case TypeInt64:
		v, err := r.ReadInt64()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewInt64Item(key, v), nil
	case TypeDouble:
		v, err := r.ReadDouble()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewDoubleItem(key, v), nil
	case TypeString:
		v, err := r.ReadCString()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewStringItem(key, v), nil
	case TypeObject:
		v, err := parseObject(r)
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewObjectItem(key, v), nil
	case TypeDoubleArray:
		n, err := r.ReadUint32()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		vs, err := r.ReadDoubles(int(n))
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		return NewDoubleArrayItem(key, vs), nil
	case TypeObjectArray:
		n, err := r.ReadUint32()
		if err != nil {
			return nil, itemErr(key, t, err)
		}
		// The count is untrusted input; never allocate from it up front.
		var objs []*Object
		for i := 0; i < int(n); i++ {
			obj, err := parseObject(r)
			if err != nil {
				return nil, itemErr(key, t, err)
			}
			objs = append(objs, obj)
		}
		return NewObjectArrayItem(key, objs), nil
	default:
		return nil, fmt.Errorf("item %q: unknown type byte 0x%02x", key, tb)
	}
}

func itemErr(key string, t ItemType, err error) error {
	return fmt.Errorf("item %q (type %q): %w", key, t, err)
}

// Encode serializes the object into GWY wire bytes.
func (o *Object) Encode() []byte {
	w := binary.NewWriter()
	o.appendTo(w)
	return w.Bytes()
}

// appendTo writes the object's name, payload size and items.
func (o *Object) appendTo(w *binary.Writer) {
	payload := binary.NewWriter()
	for _, it := range o.items {
		it.appendTo(payload)
	}
	w.WriteCString(o.name)
	w.WriteUint32(uint32(payload.Len()))
	w.WriteBytes(payload.Bytes())
}

// appendTo writes the item's key, type byte and value.
func (it *Item) appendTo(w *binary.Writer) {
	w.WriteCString(it.Key)
	w.WriteUint8(byte(it.Type))
	switch it.Type {
	case TypeBool:
		w.WriteBool(it.Value.(bool))
	case TypeInt32:
		w.WriteInt32(it.Value.(int32))
	case TypeInt64:
		w.WriteInt64(it.Value.(int64))
	case TypeDouble:
		w.WriteDouble(it.Value.(float64))
	case TypeString:
		w.WriteCString(it.Value.(string))
	case TypeObject:
		it.Value.(*Object).appendTo(w)
	case TypeDoubleArray:
		vs := it.Value.([]float64)
		w.WriteUint32(uint32(len(vs)))
		w.WriteDoubles(vs)
	case TypeObjectArray:
		objs := it.Value.([]*Object)
		w.WriteUint32(uint32(len(objs)))
		for _, obj := range objs {
			obj.appendTo(w)
		}
	}
}
