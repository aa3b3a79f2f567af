package rtp

// MLCShape is the outline of the aperture at one control point
// (MLC_SHAPE_DEF). X and Y are read as interleaved coordinate pairs.
type MLCShape struct {
	FieldID          string    `json:"field_id"`
	ControlPtNumber  uint32    `json:"control_pt_number"`
	TotalShapePoints uint32    `json:"total_shape_points"`
	X                []float64 `json:"x"`
	Y                []float64 `json:"y"`
	CRC              int32     `json:"crc"`
}

const shapePointCapacity = 160

var mlcShapeSchema = newSchema("MLC_SHAPE_DEF", 325,
	[]slot[MLCShape]{
		tag[MLCShape](),
		text(1, "field_id", func(r *MLCShape) *string { return &r.FieldID }),
		count(2, "control_pt_number", func(r *MLCShape) *uint32 { return &r.ControlPtNumber }),
		count(3, "total_shape_points", func(r *MLCShape) *uint32 { return &r.TotalShapePoints }),
		checksum(324, func(r *MLCShape) *int32 { return &r.CRC }),
	},
	leafRegion(LayoutPairs, "x", "y", "total_shape_points", shapePointCapacity, 4, 5, 2,
		func(r *MLCShape) uint32 { return r.TotalShapePoints },
		func(r *MLCShape) (*[]float64, *[]float64) { return &r.X, &r.Y }),
)

// DecodeMLCShape decodes an MLC_SHAPE_DEF field sequence. X and Y hold
// TotalShapePoints coordinates each.
func DecodeMLCShape(fields []string) (MLCShape, error) {
	return mlcShapeSchema.Decode(fields)
}
