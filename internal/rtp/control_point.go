package rtp

// ControlPoint is one control point of a dynamic field (CONTROL_PT_DEF).
// MLCA and MLCB hold exactly MLCLeaves positions each; the remaining
// reserved bank capacity is ignored.
type ControlPoint struct {
	FieldID            string    `json:"field_id"`
	MLCType            string    `json:"mlc_type"`
	MLCLeaves          uint32    `json:"mlc_leaves"`
	TotalControlPoints uint32    `json:"total_control_points"`
	ControlPtNumber    uint32    `json:"control_pt_number"`
	MUConvention       *uint32   `json:"mu_convention"`
	MonitorUnits       *float64  `json:"monitor_units"`
	WedgePosition      string    `json:"wedge_position"`
	Energy             *float64  `json:"energy"`
	DoseRate           *float64  `json:"dose_rate"`
	SSD                *float64  `json:"ssd"`
	ScaleConvention    *uint32   `json:"scale_convention"`
	GantryAngle        *float64  `json:"gantry_angle"`
	GantryDir          *Rotation `json:"gantry_dir"`
	CollimatorAngle    *float64  `json:"collimator_angle"`
	CollimatorDir      *Rotation `json:"collimator_dir"`
	FieldXMode         string    `json:"field_x_mode"`
	FieldX             *float64  `json:"field_x"`
	CollimatorX1       *float64  `json:"collimator_x1"`
	CollimatorX2       *float64  `json:"collimator_x2"`
	FieldYMode         string    `json:"field_y_mode"`
	FieldY             *float64  `json:"field_y"`
	CollimatorY1       *float64  `json:"collimator_y1"`
	CollimatorY2       *float64  `json:"collimator_y2"`
	CouchVertical      *float64  `json:"couch_vertical"`
	CouchLateral       *float64  `json:"couch_lateral"`
	CouchLongitudinal  *float64  `json:"couch_longitudinal"`
	CouchAngle         *float64  `json:"couch_angle"`
	CouchDir           *Rotation `json:"couch_dir"`
	CouchPedestal      *float64  `json:"couch_pedestal"`
	CouchPedestalDir   *Rotation `json:"couch_pedestal_dir"`
	IsocenterPositionX *float64  `json:"isocenter_position_x"`
	IsocenterPositionY *float64  `json:"isocenter_position_y"`
	IsocenterPositionZ *float64  `json:"isocenter_position_z"`
	MLCA               []float64 `json:"mlc_a"`
	MLCB               []float64 `json:"mlc_b"`
	CRC                int32     `json:"crc"`
}

const controlPointBankCapacity = 100

var controlPointSchema = newSchema("CONTROL_PT_DEF", 236,
	[]slot[ControlPoint]{
		tag[ControlPoint](),
		text(1, "field_id", func(r *ControlPoint) *string { return &r.FieldID }),
		text(2, "mlc_type", func(r *ControlPoint) *string { return &r.MLCType }),
		count(3, "mlc_leaves", func(r *ControlPoint) *uint32 { return &r.MLCLeaves }),
		count(4, "total_control_points", func(r *ControlPoint) *uint32 { return &r.TotalControlPoints }),
		count(5, "control_pt_number", func(r *ControlPoint) *uint32 { return &r.ControlPtNumber }),
		unsigned(6, "mu_convention", func(r *ControlPoint) **uint32 { return &r.MUConvention }),
		number(7, "monitor_units", func(r *ControlPoint) **float64 { return &r.MonitorUnits }),
		text(8, "wedge_position", func(r *ControlPoint) *string { return &r.WedgePosition }),
		number(9, "energy", func(r *ControlPoint) **float64 { return &r.Energy }),
		number(10, "dose_rate", func(r *ControlPoint) **float64 { return &r.DoseRate }),
		number(11, "ssd", func(r *ControlPoint) **float64 { return &r.SSD }),
		unsigned(12, "scale_convention", func(r *ControlPoint) **uint32 { return &r.ScaleConvention }),
		number(13, "gantry_angle", func(r *ControlPoint) **float64 { return &r.GantryAngle }),
		rotation(14, "gantry_dir", func(r *ControlPoint) **Rotation { return &r.GantryDir }),
		number(15, "collimator_angle", func(r *ControlPoint) **float64 { return &r.CollimatorAngle }),
		rotation(16, "collimator_dir", func(r *ControlPoint) **Rotation { return &r.CollimatorDir }),
		text(17, "field_x_mode", func(r *ControlPoint) *string { return &r.FieldXMode }),
		number(18, "field_x", func(r *ControlPoint) **float64 { return &r.FieldX }),
		number(19, "collimator_x1", func(r *ControlPoint) **float64 { return &r.CollimatorX1 }),
		number(20, "collimator_x2", func(r *ControlPoint) **float64 { return &r.CollimatorX2 }),
		text(21, "field_y_mode", func(r *ControlPoint) *string { return &r.FieldYMode }),
		number(22, "field_y", func(r *ControlPoint) **float64 { return &r.FieldY }),
		number(23, "collimator_y1", func(r *ControlPoint) **float64 { return &r.CollimatorY1 }),
		number(24, "collimator_y2", func(r *ControlPoint) **float64 { return &r.CollimatorY2 }),
		number(25, "couch_vertical", func(r *ControlPoint) **float64 { return &r.CouchVertical }),
		number(26, "couch_lateral", func(r *ControlPoint) **float64 { return &r.CouchLateral }),
		number(27, "couch_longitudinal", func(r *ControlPoint) **float64 { return &r.CouchLongitudinal }),
		number(28, "couch_angle", func(r *ControlPoint) **float64 { return &r.CouchAngle }),
		rotation(29, "couch_dir", func(r *ControlPoint) **Rotation { return &r.CouchDir }),
		number(30, "couch_pedestal", func(r *ControlPoint) **float64 { return &r.CouchPedestal }),
		rotation(31, "couch_pedestal_dir", func(r *ControlPoint) **Rotation { return &r.CouchPedestalDir }),
		number(32, "isocenter_position_x", func(r *ControlPoint) **float64 { return &r.IsocenterPositionX }),
		number(33, "isocenter_position_y", func(r *ControlPoint) **float64 { return &r.IsocenterPositionY }),
		number(34, "isocenter_position_z", func(r *ControlPoint) **float64 { return &r.IsocenterPositionZ }),
		checksum(235, func(r *ControlPoint) *int32 { return &r.CRC }),
	},
	leafRegion(LayoutBanks, "mlc_a", "mlc_b", "mlc_leaves", controlPointBankCapacity, 35, 35+controlPointBankCapacity, 1,
		func(r *ControlPoint) uint32 { return r.MLCLeaves },
		func(r *ControlPoint) (*[]float64, *[]float64) { return &r.MLCA, &r.MLCB }),
)

// DecodeControlPoint decodes a CONTROL_PT_DEF field sequence.
func DecodeControlPoint(fields []string) (ControlPoint, error) {
	return controlPointSchema.Decode(fields)
}
