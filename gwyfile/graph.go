package gwyfile

// graphModelName is the wire type name of a graph model object.
const graphModelName = "GwyGraphModel"

// GraphModel is a 1D plot: an ordered list of curves plus display metadata.
// The wire format stores the curve count in its own ncurves item; decoding
// rejects a disagreement, encoding always writes the count from len(Curves).
//
// The four axis-range fields use the nullable value+flag convention: the
// pointer is nil unless the paired *_set flag was true in the store.
type GraphModel struct {
	Curves []*GraphCurve

	Title       string
	TopLabel    string
	LeftLabel   string
	RightLabel  string
	BottomLabel string
	XUnit       string
	YUnit       string

	XMin, XMax *float64
	YMin, YMax *float64

	XIsLogarithmic bool
	YIsLogarithmic bool

	LabelVisible        bool
	LabelHasFrame       bool
	LabelReverse        bool
	LabelFrameThickness int32
	LabelPosition       int32
	GridType            int32

	// Visible is the container-level display flag stored next to the graph
	// object, not inside it.
	Visible bool
}

// NewGraphModel creates a graph model over the given curves with default
// display metadata.
func NewGraphModel(curves []*GraphCurve) *GraphModel {
	return &GraphModel{
		Curves:              curves,
		LabelVisible:        true,
		LabelHasFrame:       true,
		LabelFrameThickness: 1,
		GridType:            1,
	}
}

// rangeFrom reads one nullable axis range bound: the flag first, then the
// value only when the flag is set. Stray numeric content under an unset
// flag is ignored.
func rangeFrom(obj *Object, valueKey, flagKey string) (*float64, error) {
	set, err := obj.BoolOr(flagKey, false)
	if err != nil {
		return nil, err
	}
	if !set {
		return nil, nil
	}
	v, ok, err := obj.GetDouble(valueKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: %s is set but %s is missing", graphModelName, flagKey, valueKey)
	}
	return &v, nil
}

// addRange writes one nullable axis range bound: the flag always, and a 0.0
// placeholder value when unset, since the store requires the value slot to
// accompany its flag.
func addRange(obj *Object, valueKey, flagKey string, v *float64) {
	if v == nil {
		obj.Add(NewDoubleItem(valueKey, 0.0))
		obj.Add(NewBoolItem(flagKey, false))
		return
	}
	obj.Add(NewDoubleItem(valueKey, *v))
	obj.Add(NewBoolItem(flagKey, true))
}

// DecodeGraphModel decodes a GwyGraphModel object. ncurves is required
// (ErrNotFound when absent); the curves array must match it exactly
// (ErrValidation otherwise); all other metadata falls back to the declared
// defaults.
func DecodeGraphModel(obj *Object) (*GraphModel, error) {
	if obj.Name() != graphModelName {
		return nil, formatf("object is %q, not %q", obj.Name(), graphModelName)
	}

	ncurves, ok, err := obj.GetInt32("ncurves")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundf("%s: missing ncurves", graphModelName)
	}
	if ncurves < 0 {
		return nil, formatf("%s: negative ncurves %d", graphModelName, ncurves)
	}

	curveObjs, _, err := obj.GetObjectArray("curves")
	if err != nil {
		return nil, err
	}
	if len(curveObjs) != int(ncurves) {
		return nil, validationf("%s: ncurves %d but %d curve objects stored",
			graphModelName, ncurves, len(curveObjs))
	}
	curves := make([]*GraphCurve, 0, len(curveObjs))
	for i, co := range curveObjs {
		curve, err := DecodeGraphCurve(co)
		if err != nil {
			return nil, wrapCurve(err, i)
		}
		curves = append(curves, curve)
	}

	m := &GraphModel{Curves: curves}
	if m.Title, err = obj.StringOr("title", ""); err != nil {
		return nil, err
	}
	if m.TopLabel, err = obj.StringOr("top_label", ""); err != nil {
		return nil, err
	}
	if m.LeftLabel, err = obj.StringOr("left_label", ""); err != nil {
		return nil, err
	}
	if m.RightLabel, err = obj.StringOr("right_label", ""); err != nil {
		return nil, err
	}
	if m.BottomLabel, err = obj.StringOr("bottom_label", ""); err != nil {
		return nil, err
	}
	if m.XUnit, err = obj.StringOr("x_unit", ""); err != nil {
		return nil, err
	}
	if m.YUnit, err = obj.StringOr("y_unit", ""); err != nil {
		return nil, err
	}

	if m.XMin, err = rangeFrom(obj, "x_min", "x_min_set"); err != nil {
		return nil, err
	}
	if m.XMax, err = rangeFrom(obj, "x_max", "x_max_set"); err != nil {
		return nil, err
	}
	if m.YMin, err = rangeFrom(obj, "y_min", "y_min_set"); err != nil {
		return nil, err
	}
	if m.YMax, err = rangeFrom(obj, "y_max", "y_max_set"); err != nil {
		return nil, err
	}

	if m.XIsLogarithmic, err = obj.BoolOr("x_is_logarithmic", false); err != nil {
		return nil, err
	}
	if m.YIsLogarithmic, err = obj.BoolOr("y_is_logarithmic", false); err != nil {
		return nil, err
	}
	if m.LabelVisible, err = obj.BoolOr("label.visible", true); err != nil {
		return nil, err
	}
	if m.LabelHasFrame, err = obj.BoolOr("label.has_frame", true); err != nil {
		return nil, err
	}
	if m.LabelReverse, err = obj.BoolOr("label.reverse", false); err != nil {
		return nil, err
	}
	if m.LabelFrameThickness, err = obj.Int32Or("label.frame_thickness", 1); err != nil {
		return nil, err
	}
	if m.LabelPosition, err = obj.Int32Or("label.position", 0); err != nil {
		return nil, err
	}
	if m.GridType, err = obj.Int32Or("grid-type", 1); err != nil {
		return nil, err
	}
	return m, nil
}

// ToObject encodes the graph model as a GwyGraphModel object. ncurves is
// authoritative from len(Curves); any ncurves a caller may have seen at
// decode time is never trusted. Every metadata key is written.
func (m *GraphModel) ToObject() (*Object, error) {
	curveObjs := make([]*Object, 0, len(m.Curves))
	for i, c := range m.Curves {
		co, err := c.ToObject()
		if err != nil {
			return nil, wrapCurve(err, i)
		}
		curveObjs = append(curveObjs, co)
	}

	obj := NewObject(graphModelName,
		NewInt32Item("ncurves", int32(len(m.Curves))),
		NewObjectArrayItem("curves", curveObjs),
		NewStringItem("title", m.Title),
		NewStringItem("top_label", m.TopLabel),
		NewStringItem("left_label", m.LeftLabel),
		NewStringItem("right_label", m.RightLabel),
		NewStringItem("bottom_label", m.BottomLabel),
		NewStringItem("x_unit", m.XUnit),
		NewStringItem("y_unit", m.YUnit),
	)
	addRange(obj, "x_min", "x_min_set", m.XMin)
	addRange(obj, "x_max", "x_max_set", m.XMax)
	addRange(obj, "y_min", "y_min_set", m.YMin)
	addRange(obj, "y_max", "y_max_set", m.YMax)
	obj.Add(NewBoolItem("x_is_logarithmic", m.XIsLogarithmic))
	obj.Add(NewBoolItem("y_is_logarithmic", m.YIsLogarithmic))
	obj.Add(NewBoolItem("label.visible", m.LabelVisible))
	obj.Add(NewBoolItem("label.has_frame", m.LabelHasFrame))
	obj.Add(NewBoolItem("label.reverse", m.LabelReverse))
	obj.Add(NewInt32Item("label.frame_thickness", m.LabelFrameThickness))
	obj.Add(NewInt32Item("label.position", m.LabelPosition))
	obj.Add(NewInt32Item("grid-type", m.GridType))
	return obj, nil
}
