package gwyfile

// Point is one (x, y) coordinate pair in physical units.
type Point struct {
	X, Y float64
}

// PointPair is two points: the endpoints of a line, or the opposite corners
// of a rectangle or ellipse bounding box.
type PointPair struct {
	Start, End Point
}

// selectionKind parameterizes the generic selection codec: the wire object
// name and the number of coordinate pairs stored per entry.
type selectionKind struct {
	objectName    string
	pointsPerItem int
}

var (
	kindPoint     = selectionKind{"GwySelectionPoint", 1}
	kindPointer   = selectionKind{"GwySelectionPointer", 1}
	kindLine      = selectionKind{"GwySelectionLine", 2}
	kindRectangle = selectionKind{"GwySelectionRectangle", 2}
	kindEllipse   = selectionKind{"GwySelectionEllipse", 2}
)

// decodeSelectionPoints reads the entry count and the packed coordinate
// buffer of a selection object, returning nsel*pointsPerItem points in entry
// order. A selection with zero entries decodes to nil. Callers are expected
// to have presence-checked the container key already.
func decodeSelectionPoints(obj *Object, kind selectionKind) ([]Point, error) {
	if obj.Name() != kind.objectName {
		return nil, formatf("object is %q, not %q", obj.Name(), kind.objectName)
	}

	nsel, ok, err := obj.GetInt32("nsel")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing nsel", kind.objectName)
	}
	if nsel < 0 {
		return nil, formatf("%s: negative nsel %d", kind.objectName, nsel)
	}
	if nsel == 0 {
		return nil, nil
	}

	data, ok, err := obj.GetDoubleArray("data")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing data buffer", kind.objectName)
	}
	npoints := int(nsel) * kind.pointsPerItem
	if len(data) != 2*npoints {
		return nil, formatf("%s: data buffer holds %d values, %d selections need %d",
			kind.objectName, len(data), nsel, 2*npoints)
	}

	points := make([]Point, npoints)
	for i := range points {
		points[i] = Point{X: data[2*i], Y: data[2*i+1]}
	}
	return points, nil
}

// encodeSelectionPoints is the inverse: entry count, then the flattened
// coordinate buffer in the same grouping order.
func encodeSelectionPoints(points []Point, kind selectionKind) *Object {
	data := make([]float64, 2*len(points))
	for i, p := range points {
		data[2*i] = p.X
		data[2*i+1] = p.Y
	}
	return NewObject(kind.objectName,
		NewInt32Item("nsel", int32(len(points)/kind.pointsPerItem)),
		NewDoubleArrayItem("data", data),
	)
}

// pairUp groups a flat point sequence into consecutive pairs.
func pairUp(points []Point) []PointPair {
	pairs := make([]PointPair, len(points)/2)
	for i := range pairs {
		pairs[i] = PointPair{Start: points[2*i], End: points[2*i+1]}
	}
	return pairs
}

// flatten is the inverse of pairUp.
func flatten(pairs []PointPair) []Point {
	points := make([]Point, 0, 2*len(pairs))
	for _, p := range pairs {
		points = append(points, p.Start, p.End)
	}
	return points
}

// PointSelection is an ordered set of marked points. PointerSelection is
// structurally identical but kept as a distinct type: consumers dispatch on
// selection identity, not shape.
type PointSelection struct {
	Points []Point
}

// NewPointSelection creates a point selection; an empty point list is an
// ErrValidation, since absent selections are represented by nil.
func NewPointSelection(points []Point) (*PointSelection, error) {
	if len(points) == 0 {
		return nil, validationf("point selection without points")
	}
	return &PointSelection{Points: points}, nil
}

// DecodePointSelection decodes a GwySelectionPoint object, or returns nil
// when the stored selection has no entries.
func DecodePointSelection(obj *Object) (*PointSelection, error) {
	points, err := decodeSelectionPoints(obj, kindPoint)
	if err != nil || points == nil {
		return nil, err
	}
	return &PointSelection{Points: points}, nil
}

// ToObject encodes the selection as a GwySelectionPoint object.
func (s *PointSelection) ToObject() (*Object, error) {
	if len(s.Points) == 0 {
		return nil, validationf("point selection without points")
	}
	return encodeSelectionPoints(s.Points, kindPoint), nil
}

// PointerSelection is an ordered set of pointer marks.
type PointerSelection struct {
	Points []Point
}

// NewPointerSelection creates a pointer selection; empty is an ErrValidation.
func NewPointerSelection(points []Point) (*PointerSelection, error) {
	if len(points) == 0 {
		return nil, validationf("pointer selection without points")
	}
	return &PointerSelection{Points: points}, nil
}

// DecodePointerSelection decodes a GwySelectionPointer object, or returns
// nil when the stored selection has no entries.
func DecodePointerSelection(obj *Object) (*PointerSelection, error) {
	points, err := decodeSelectionPoints(obj, kindPointer)
	if err != nil || points == nil {
		return nil, err
	}
	return &PointerSelection{Points: points}, nil
}

// ToObject encodes the selection as a GwySelectionPointer object.
func (s *PointerSelection) ToObject() (*Object, error) {
	if len(s.Points) == 0 {
		return nil, validationf("pointer selection without points")
	}
	return encodeSelectionPoints(s.Points, kindPointer), nil
}

// LineSelection is an ordered set of line segments.
type LineSelection struct {
	Lines []PointPair
}

// NewLineSelection creates a line selection; empty is an ErrValidation.
func NewLineSelection(lines []PointPair) (*LineSelection, error) {
	if len(lines) == 0 {
		return nil, validationf("line selection without lines")
	}
	return &LineSelection{Lines: lines}, nil
}

// DecodeLineSelection decodes a GwySelectionLine object, or returns nil when
// the stored selection has no entries.
func DecodeLineSelection(obj *Object) (*LineSelection, error) {
	points, err := decodeSelectionPoints(obj, kindLine)
	if err != nil || points == nil {
		return nil, err
	}
	return &LineSelection{Lines: pairUp(points)}, nil
}

// ToObject encodes the selection as a GwySelectionLine object.
func (s *LineSelection) ToObject() (*Object, error) {
	if len(s.Lines) == 0 {
		return nil, validationf("line selection without lines")
	}
	return encodeSelectionPoints(flatten(s.Lines), kindLine), nil
}

// RectangleSelection is an ordered set of rectangles, each stored as two
// opposite corners.
type RectangleSelection struct {
	Rectangles []PointPair
}

// NewRectangleSelection creates a rectangle selection; empty is an
// ErrValidation.
func NewRectangleSelection(rectangles []PointPair) (*RectangleSelection, error) {
	if len(rectangles) == 0 {
		return nil, validationf("rectangle selection without rectangles")
	}
	return &RectangleSelection{Rectangles: rectangles}, nil
}

// DecodeRectangleSelection decodes a GwySelectionRectangle object, or
// returns nil when the stored selection has no entries.
func DecodeRectangleSelection(obj *Object) (*RectangleSelection, error) {
	points, err := decodeSelectionPoints(obj, kindRectangle)
	if err != nil || points == nil {
		return nil, err
	}
	return &RectangleSelection{Rectangles: pairUp(points)}, nil
}

// ToObject encodes the selection as a GwySelectionRectangle object.
func (s *RectangleSelection) ToObject() (*Object, error) {
	if len(s.Rectangles) == 0 {
		return nil, validationf("rectangle selection without rectangles")
	}
	return encodeSelectionPoints(flatten(s.Rectangles), kindRectangle), nil
}

// EllipseSelection is an ordered set of ellipses, each stored as the two
// opposite corners of its bounding box.
type EllipseSelection struct {
	Ellipses []PointPair
}

// NewEllipseSelection creates an ellipse selection; empty is an
// ErrValidation.
func NewEllipseSelection(ellipses []PointPair) (*EllipseSelection, error) {
	if len(ellipses) == 0 {
		return nil, validationf("ellipse selection without ellipses")
	}
	return &EllipseSelection{Ellipses: ellipses}, nil
}

// DecodeEllipseSelection decodes a GwySelectionEllipse object, or returns
// nil when the stored selection has no entries.
func DecodeEllipseSelection(obj *Object) (*EllipseSelection, error) {
	points, err := decodeSelectionPoints(obj, kindEllipse)
	if err != nil || points == nil {
		return nil, err
	}
	return &EllipseSelection{Ellipses: pairUp(points)}, nil
}

// ToObject encodes the selection as a GwySelectionEllipse object.
func (s *EllipseSelection) ToObject() (*Object, error) {
	if len(s.Ellipses) == 0 {
		return nil, validationf("ellipse selection without ellipses")
	}
	return encodeSelectionPoints(flatten(s.Ellipses), kindEllipse), nil
}
