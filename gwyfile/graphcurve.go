package gwyfile

// graphCurveName is the wire type name of a graph curve object.
const graphCurveName = "GwyGraphCurveModel"

// Default curve presentation, matching what Gwyddion assumes for curves
// stored without explicit styling.
const (
	defaultCurveType = 1 // points
	defaultPointType = 2 // circle
	defaultLineStyle = 0 // solid
	defaultPointSize = 1
	defaultLineSize  = 1
)

// GraphCurve is one 1D curve of a graph: abscissa and ordinate arrays of
// equal length plus presentation metadata.
type GraphCurve struct {
	XData, YData []float64

	Description string
	Type        int32
	PointType   int32
	LineStyle   int32
	PointSize   int32
	LineSize    int32
	ColorRed    float64
	ColorGreen  float64
	ColorBlue   float64
}

// NewGraphCurve creates a curve over the given data arrays with default
// presentation metadata. Arrays of different lengths are an ErrValidation.
func NewGraphCurve(xdata, ydata []float64) (*GraphCurve, error) {
	if len(xdata) != len(ydata) {
		return nil, validationf("curve data arrays differ in length: %d x values, %d y values",
			len(xdata), len(ydata))
	}
	return &GraphCurve{
		XData:     xdata,
		YData:     ydata,
		Type:      defaultCurveType,
		PointType: defaultPointType,
		LineStyle: defaultLineStyle,
		PointSize: defaultPointSize,
		LineSize:  defaultLineSize,
	}, nil
}

// NData returns the number of points in the curve.
func (c *GraphCurve) NData() int {
	return len(c.XData)
}

// DecodeGraphCurve decodes a GwyGraphCurveModel object. ndata and both data
// arrays are required and must agree in length (ErrFormat otherwise); the
// presentation metadata falls back to the declared defaults when absent.
// The data arrays are contiguous copies of the store's, so the decoded
// curve is freely mutable without touching the store object.
func DecodeGraphCurve(obj *Object) (*GraphCurve, error) {
	if obj.Name() != graphCurveName {
		return nil, formatf("object is %q, not %q", obj.Name(), graphCurveName)
	}

	ndata, ok, err := obj.GetInt32("ndata")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing ndata", graphCurveName)
	}
	if ndata < 0 {
		return nil, formatf("%s: negative ndata %d", graphCurveName, ndata)
	}

	xdata, ok, err := obj.GetDoubleArray("xdata")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing xdata", graphCurveName)
	}
	ydata, ok, err := obj.GetDoubleArray("ydata")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing ydata", graphCurveName)
	}
	if len(xdata) != int(ndata) || len(ydata) != int(ndata) {
		return nil, formatf("%s: ndata %d but %d x values, %d y values",
			graphCurveName, ndata, len(xdata), len(ydata))
	}

	xbuf := make([]float64, len(xdata))
	copy(xbuf, xdata)
	ybuf := make([]float64, len(ydata))
	copy(ybuf, ydata)

	c := &GraphCurve{XData: xbuf, YData: ybuf}
	if c.Description, err = obj.StringOr("description", ""); err != nil {
		return nil, err
	}
	if c.Type, err = obj.Int32Or("type", defaultCurveType); err != nil {
		return nil, err
	}
	if c.PointType, err = obj.Int32Or("point_type", defaultPointType); err != nil {
		return nil, err
	}
	if c.LineStyle, err = obj.Int32Or("line_style", defaultLineStyle); err != nil {
		return nil, err
	}
	if c.PointSize, err = obj.Int32Or("point_size", defaultPointSize); err != nil {
		return nil, err
	}
	if c.LineSize, err = obj.Int32Or("line_size", defaultLineSize); err != nil {
		return nil, err
	}
	if c.ColorRed, err = obj.DoubleOr("color.red", 0.0); err != nil {
		return nil, err
	}
	if c.ColorGreen, err = obj.DoubleOr("color.green", 0.0); err != nil {
		return nil, err
	}
	if c.ColorBlue, err = obj.DoubleOr("color.blue", 0.0); err != nil {
		return nil, err
	}
	return c, nil
}

// ToObject encodes the curve as a GwyGraphCurveModel object. ndata is
// written from the data array length; a length mismatch between the arrays
// is an ErrValidation.
func (c *GraphCurve) ToObject() (*Object, error) {
	if len(c.XData) != len(c.YData) {
		return nil, validationf("curve data arrays differ in length: %d x values, %d y values",
			len(c.XData), len(c.YData))
	}
	return NewObject(graphCurveName,
		NewInt32Item("ndata", int32(len(c.XData))),
		NewDoubleArrayItem("xdata", c.XData),
		NewDoubleArrayItem("ydata", c.YData),
		NewStringItem("description", c.Description),
		NewInt32Item("type", c.Type),
		NewInt32Item("point_type", c.PointType),
		NewInt32Item("line_style", c.LineStyle),
		NewInt32Item("point_size", c.PointSize),
		NewInt32Item("line_size", c.LineSize),
		NewDoubleItem("color.red", c.ColorRed),
		NewDoubleItem("color.green", c.ColorGreen),
		NewDoubleItem("color.blue", c.ColorBlue),
	), nil
}
