package gwyfile

// dataFieldName is the wire type name of a data field object.
const dataFieldName = "GwyDataField"

// DataField is a 2D scalar matrix with physical scale metadata. Data is
// row-major with XRes columns and YRes rows; len(Data) == XRes*YRes is an
// invariant established at construction and revalidated on encode, never
// repaired by reshaping.
type DataField struct {
	Data []float64

	XRes, YRes   int
	XReal, YReal float64
	XOff, YOff   float64
	SIUnitXY     string
	SIUnitZ      string
}

// NewDataField creates a data field over the given row-major buffer. The
// physical extent defaults to 1.0 per axis, offsets to 0.0 and units to "".
// The buffer length must equal xres*yres, otherwise an ErrValidation is
// returned.
func NewDataField(data []float64, xres, yres int) (*DataField, error) {
	if xres <= 0 || yres <= 0 {
		return nil, validationf("data field resolution %dx%d is not positive", xres, yres)
	}
	if len(data) != xres*yres {
		return nil, validationf("data field buffer holds %d values, resolution %dx%d needs %d",
			len(data), xres, yres, xres*yres)
	}
	return &DataField{
		Data:  data,
		XRes:  xres,
		YRes:  yres,
		XReal: 1.0,
		YReal: 1.0,
	}, nil
}

// At returns the value at the given row (y index) and column (x index).
func (d *DataField) At(row, col int) float64 {
	return d.Data[row*d.XRes+col]
}

// SetAt stores a value at the given row and column.
func (d *DataField) SetAt(row, col int, v float64) {
	d.Data[row*d.XRes+col] = v
}

// DecodeDataField decodes a GwyDataField object. xres, yres and the bulk
// data buffer are required and must be structurally consistent (ErrFormat
// otherwise); the remaining metadata falls back to the declared defaults
// when absent. The buffer is one contiguous copy of the store's, so the
// decoded field is freely mutable without touching the store object.
func DecodeDataField(obj *Object) (*DataField, error) {
	if obj.Name() != dataFieldName {
		return nil, formatf("object is %q, not %q", obj.Name(), dataFieldName)
	}

	xres, ok, err := obj.GetInt32("xres")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing xres", dataFieldName)
	}
	yres, ok, err := obj.GetInt32("yres")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing yres", dataFieldName)
	}
	if xres <= 0 || yres <= 0 {
		return nil, formatf("%s: resolution %dx%d is not positive", dataFieldName, xres, yres)
	}

	data, ok, err := obj.GetDoubleArray("data")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatf("%s: missing data buffer", dataFieldName)
	}
	if len(data) != int(xres)*int(yres) {
		return nil, formatf("%s: data buffer holds %d values, resolution %dx%d needs %d",
			dataFieldName, len(data), xres, yres, int(xres)*int(yres))
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	d := &DataField{
		Data: buf,
		XRes: int(xres),
		YRes: int(yres),
	}
	if d.XReal, err = obj.DoubleOr("xreal", 1.0); err != nil {
		return nil, err
	}
	if d.YReal, err = obj.DoubleOr("yreal", 1.0); err != nil {
		return nil, err
	}
	if d.XOff, err = obj.DoubleOr("xoff", 0.0); err != nil {
		return nil, err
	}
	if d.YOff, err = obj.DoubleOr("yoff", 0.0); err != nil {
		return nil, err
	}
	if d.SIUnitXY, err = obj.StringOr("si_unit_xy", ""); err != nil {
		return nil, err
	}
	if d.SIUnitZ, err = obj.StringOr("si_unit_z", ""); err != nil {
		return nil, err
	}
	return d, nil
}

// ToObject encodes the data field as a GwyDataField object. The shape
// invariant is revalidated first; empty unit strings are not written, since
// absence decodes back to "".
func (d *DataField) ToObject() (*Object, error) {
	if d.XRes <= 0 || d.YRes <= 0 {
		return nil, validationf("data field resolution %dx%d is not positive", d.XRes, d.YRes)
	}
	if len(d.Data) != d.XRes*d.YRes {
		return nil, validationf("data field buffer holds %d values, resolution %dx%d needs %d",
			len(d.Data), d.XRes, d.YRes, d.XRes*d.YRes)
	}

	obj := NewObject(dataFieldName,
		NewInt32Item("xres", int32(d.XRes)),
		NewInt32Item("yres", int32(d.YRes)),
		NewDoubleItem("xreal", d.XReal),
		NewDoubleItem("yreal", d.YReal),
		NewDoubleItem("xoff", d.XOff),
		NewDoubleItem("yoff", d.YOff),
	)
	if d.SIUnitXY != "" {
		obj.Add(NewStringItem("si_unit_xy", d.SIUnitXY))
	}
	if d.SIUnitZ != "" {
		obj.Add(NewStringItem("si_unit_z", d.SIUnitZ))
	}
	obj.Add(NewDoubleArrayItem("data", d.Data))
	return obj, nil
}
