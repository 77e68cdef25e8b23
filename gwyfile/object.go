package gwyfile

// ItemType identifies the wire type of an item. The values are the type
// bytes of the GWY serialization.
type ItemType byte

// Wire type bytes. Uppercase variants are arrays.
const (
	TypeBool        ItemType = 'b'
	TypeInt32       ItemType = 'i'
	TypeInt64       ItemType = 'q'
	TypeDouble      ItemType = 'd'
	TypeString      ItemType = 's'
	TypeObject      ItemType = 'o'
	TypeDoubleArray ItemType = 'D'
	TypeObjectArray ItemType = 'O'
)

// String returns the type byte as a readable token.
func (t ItemType) String() string {
	return string(rune(t))
}

// Item is one key/value component of an Object. Value holds bool, int32,
// int64, float64, string, *Object, []float64 or []*Object according to Type.
type Item struct {
	Key   string
	Type  ItemType
	Value interface{}
}

// NewBoolItem creates a boolean item.
func NewBoolItem(key string, v bool) *Item {
	return &Item{Key: key, Type: TypeBool, Value: v}
}

// NewInt32Item creates a 32-bit integer item.
func NewInt32Item(key string, v int32) *Item {
	return &Item{Key: key, Type: TypeInt32, Value: v}
}

// NewInt64Item creates a 64-bit integer item.
func NewInt64Item(key string, v int64) *Item {
	return &Item{Key: key, Type: TypeInt64, Value: v}
}

// NewDoubleItem creates a double item.
func NewDoubleItem(key string, v float64) *Item {
	return &Item{Key: key, Type: TypeDouble, Value: v}
}

// NewStringItem creates a string item.
func NewStringItem(key string, v string) *Item {
	return &Item{Key: key, Type: TypeString, Value: v}
}

// NewObjectItem creates a nested object item.
func NewObjectItem(key string, v *Object) *Item {
	return &Item{Key: key, Type: TypeObject, Value: v}
}

// NewDoubleArrayItem creates a packed double array item.
func NewDoubleArrayItem(key string, v []float64) *Item {
	return &Item{Key: key, Type: TypeDoubleArray, Value: v}
}

// NewObjectArrayItem creates an ordered object array item.
func NewObjectArrayItem(key string, v []*Object) *Item {
	return &Item{Key: key, Type: TypeObjectArray, Value: v}
}

// Object is one node of the GWY object graph: a named, ordered collection of
// items with by-key lookup. The zero value is not usable; construct with
// NewObject or obtain one from a typed get.
type Object struct {
	name  string
	items []*Item
	index map[string]*Item
}

// NewObject creates an object with the given type name and initial items,
// in order. A nil item is ignored, so optional components can be built
// unconditionally.
func NewObject(name string, items ...*Item) *Object {
	o := &Object{
		name:  name,
		index: make(map[string]*Item, len(items)),
	}
	for _, it := range items {
		o.Add(it)
	}
	return o
}

// Name returns the object's type name, e.g. "GwyContainer".
func (o *Object) Name() string {
	return o.name
}

// Len returns the number of items.
func (o *Object) Len() int {
	return len(o.items)
}

// Items returns the items in insertion order. The slice is owned by the
// object and must not be modified.
func (o *Object) Items() []*Item {
	return o.items
}

// Add appends an item, or replaces in place if the key already exists.
// Nil items are ignored.
func (o *Object) Add(item *Item) {
	if item == nil {
		return
	}
	if prev, ok := o.index[item.Key]; ok {
		*prev = *item
		return
	}
	o.items = append(o.items, item)
	o.index[item.Key] = item
}

// Check reports whether an item with the given key exists, without
// materializing its value.
func (o *Object) Check(key string) bool {
	_, ok := o.index[key]
	return ok
}

// item returns the stored item for key, or nil.
func (o *Object) item(key string) *Item {
	return o.index[key]
}

// typedItem returns the item for key if present, enforcing its wire type.
func (o *Object) typedItem(key string, want ItemType) (*Item, bool, error) {
	it, ok := o.index[key]
	if !ok {
		return nil, false, nil
	}
	if it.Type != want {
		return nil, true, wrongTypeItem(key, want, it.Type)
	}
	return it, true, nil
}

// GetBool returns the boolean stored under key. ok is false if the key is
// absent; a present item of a different type is an ErrFormat.
func (o *Object) GetBool(key string) (v bool, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeBool)
	if it == nil {
		return false, ok, err
	}
	return it.Value.(bool), true, nil
}

// GetInt32 returns the 32-bit integer stored under key.
func (o *Object) GetInt32(key string) (v int32, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeInt32)
	if it == nil {
		return 0, ok, err
	}
	return it.Value.(int32), true, nil
}

// GetInt64 returns the 64-bit integer stored under key.
func (o *Object) GetInt64(key string) (v int64, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeInt64)
	if it == nil {
		return 0, ok, err
	}
	return it.Value.(int64), true, nil
}

// GetDouble returns the double stored under key.
func (o *Object) GetDouble(key string) (v float64, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeDouble)
	if it == nil {
		return 0, ok, err
	}
	return it.Value.(float64), true, nil
}

// GetString returns the string stored under key.
func (o *Object) GetString(key string) (v string, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeString)
	if it == nil {
		return "", ok, err
	}
	return it.Value.(string), true, nil
}

// GetObject returns the nested object stored under key.
func (o *Object) GetObject(key string) (v *Object, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeObject)
	if it == nil {
		return nil, ok, err
	}
	return it.Value.(*Object), true, nil
}

// GetDoubleArray returns the packed double array stored under key. The
// returned slice is owned by the object and must not be modified.
func (o *Object) GetDoubleArray(key string) (v []float64, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeDoubleArray)
	if it == nil {
		return nil, ok, err
	}
	return it.Value.([]float64), true, nil
}

// GetObjectArray returns the ordered object array stored under key.
func (o *Object) GetObjectArray(key string) (v []*Object, ok bool, err error) {
	it, ok, err := o.typedItem(key, TypeObjectArray)
	if it == nil {
		return nil, ok, err
	}
	return it.Value.([]*Object), true, nil
}

// BoolOr returns the boolean under key, or def when the key is absent.
func (o *Object) BoolOr(key string, def bool) (bool, error) {
	v, ok, err := o.GetBool(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Int32Or returns the 32-bit integer under key, or def when absent.
func (o *Object) Int32Or(key string, def int32) (int32, error) {
	v, ok, err := o.GetInt32(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// DoubleOr returns the double under key, or def when absent.
func (o *Object) DoubleOr(key string, def float64) (float64, error) {
	v, ok, err := o.GetDouble(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// StringOr returns the string under key, or def when absent.
func (o *Object) StringOr(key string, def string) (string, error) {
	v, ok, err := o.GetString(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// wrongTypeItem reports a typed get against an item of a different wire
// type. The error matches both ErrWrongType and ErrFormat.
func wrongTypeItem(key string, want, got ItemType) error {
	return formatWrap(wrongTypef("item %q holds type %q, requested %q", key, got, want))
}
