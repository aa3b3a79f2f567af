package rtp

// Simulation is the simulation field record (SIM_DEF).
type Simulation struct {
	RxSiteName           string   `json:"rx_site_name"`
	FieldName            string   `json:"field_name"`
	FieldID              string   `json:"field_id"`
	FieldNote            string   `json:"field_note"`
	TreatmentMachine     string   `json:"treatment_machine"`
	GantryAngle          *float64 `json:"gantry_angle"`
	CollimatorAngle      *float64 `json:"collimator_angle"`
	FieldXMode           string   `json:"field_x_mode"`
	FieldX               *float64 `json:"field_x"`
	CollimatorX1         *float64 `json:"collimator_x1"`
	CollimatorX2         *float64 `json:"collimator_x2"`
	FieldYMode           string   `json:"field_y_mode"`
	FieldY               *float64 `json:"field_y"`
	CollimatorY1         *float64 `json:"collimator_y1"`
	CollimatorY2         *float64 `json:"collimator_y2"`
	CouchVertical        *float64 `json:"couch_vertical"`
	CouchLateral         *float64 `json:"couch_lateral"`
	CouchLongitudinal    *float64 `json:"couch_longitudinal"`
	CouchAngle           *float64 `json:"couch_angle"`
	CouchPedestal        *float64 `json:"couch_pedestal"`
	SAD                  *float64 `json:"sad"`
	APSeparation         *float64 `json:"ap_separation"`
	PASeparation         *float64 `json:"pa_separation"`
	LateralSeparation    *float64 `json:"lateral_separation"`
	TangentialSeparation *float64 `json:"tangential_separation"`
	OtherLabel1          string   `json:"other_label_1"`
	SSD1                 *float64 `json:"ssd_1"`
	SFD1                 *float64 `json:"sfd_1"`
	OtherLabel2          string   `json:"other_label_2"`
	OtherMeasurement1    string   `json:"other_measurement_1"`
	OtherMeasurement2    string   `json:"other_measurement_2"`
	OtherLabel3          string   `json:"other_label_3"`
	OtherMeasurement3    string   `json:"other_measurement_3"`
	OtherMeasurement4    string   `json:"other_measurement_4"`
	OtherLabel4          string   `json:"other_label_4"`
	OtherMeasurement5    string   `json:"other_measurement_5"`
	OtherMeasurement6    string   `json:"other_measurement_6"`
	BladeXMode           string   `json:"blade_x_mode"`
	BladeX               *float64 `json:"blade_x"`
	BladeX1              *float64 `json:"blade_x1"`
	BladeX2              *float64 `json:"blade_x2"`
	BladeYMode           string   `json:"blade_y_mode"`
	BladeY               *float64 `json:"blade_y"`
	BladeY1              *float64 `json:"blade_y1"`
	BladeY2              *float64 `json:"blade_y2"`
	IILateral            *float64 `json:"ii_lateral"`
	IILongitudinal       *float64 `json:"ii_longitudinal"`
	IIVertical           *float64 `json:"ii_vertical"`
	KVP                  *float64 `json:"kvp"`
	MA                   *float64 `json:"ma"`
	Seconds              *float64 `json:"seconds"`
	CRC                  int32    `json:"crc"`
}

var simulationSchema = newSchema("SIM_DEF", 53, []slot[Simulation]{
	tag[Simulation](),
	text(1, "rx_site_name", func(r *Simulation) *string { return &r.RxSiteName }),
	text(2, "field_name", func(r *Simulation) *string { return &r.FieldName }),
	text(3, "field_id", func(r *Simulation) *string { return &r.FieldID }),
	text(4, "field_note", func(r *Simulation) *string { return &r.FieldNote }),
	text(5, "treatment_machine", func(r *Simulation) *string { return &r.TreatmentMachine }),
	number(6, "gantry_angle", func(r *Simulation) **float64 { return &r.GantryAngle }),
	number(7, "collimator_angle", func(r *Simulation) **float64 { return &r.CollimatorAngle }),
	text(8, "field_x_mode", func(r *Simulation) *string { return &r.FieldXMode }),
	number(9, "field_x", func(r *Simulation) **float64 { return &r.FieldX }),
	number(10, "collimator_x1", func(r *Simulation) **float64 { return &r.CollimatorX1 }),
	number(11, "collimator_x2", func(r *Simulation) **float64 { return &r.CollimatorX2 }),
	text(12, "field_y_mode", func(r *Simulation) *string { return &r.FieldYMode }),
	number(13, "field_y", func(r *Simulation) **float64 { return &r.FieldY }),
	number(14, "collimator_y1", func(r *Simulation) **float64 { return &r.CollimatorY1 }),
	number(15, "collimator_y2", func(r *Simulation) **float64 { return &r.CollimatorY2 }),
	number(16, "couch_vertical", func(r *Simulation) **float64 { return &r.CouchVertical }),
	number(17, "couch_lateral", func(r *Simulation) **float64 { return &r.CouchLateral }),
	number(18, "couch_longitudinal", func(r *Simulation) **float64 { return &r.CouchLongitudinal }),
	number(19, "couch_angle", func(r *Simulation) **float64 { return &r.CouchAngle }),
	number(20, "couch_pedestal", func(r *Simulation) **float64 { return &r.CouchPedestal }),
	number(21, "sad", func(r *Simulation) **float64 { return &r.SAD }),
	number(22, "ap_separation", func(r *Simulation) **float64 { return &r.APSeparation }),
	number(23, "pa_separation", func(r *Simulation) **float64 { return &r.PASeparation }),
	number(24, "lateral_separation", func(r *Simulation) **float64 { return &r.LateralSeparation }),
	number(25, "tangential_separation", func(r *Simulation) **float64 { return &r.TangentialSeparation }),
	text(26, "other_label_1", func(r *Simulation) *string { return &r.OtherLabel1 }),
	number(27, "ssd_1", func(r *Simulation) **float64 { return &r.SSD1 }),
	number(28, "sfd_1", func(r *Simulation) **float64 { return &r.SFD1 }),
	text(29, "other_label_2", func(r *Simulation) *string { return &r.OtherLabel2 }),
	text(30, "other_measurement_1", func(r *Simulation) *string { return &r.OtherMeasurement1 }),
	text(31, "other_measurement_2", func(r *Simulation) *string { return &r.OtherMeasurement2 }),
	text(32, "other_label_3", func(r *Simulation) *string { return &r.OtherLabel3 }),
	text(33, "other_measurement_3", func(r *Simulation) *string { return &r.OtherMeasurement3 }),
	text(34, "other_measurement_4", func(r *Simulation) *string { return &r.OtherMeasurement4 }),
	text(35, "other_label_4", func(r *Simulation) *string { return &r.OtherLabel4 }),
	text(36, "other_measurement_5", func(r *Simulation) *string { return &r.OtherMeasurement5 }),
	text(37, "other_measurement_6", func(r *Simulation) *string { return &r.OtherMeasurement6 }),
	text(38, "blade_x_mode", func(r *Simulation) *string { return &r.BladeXMode }),
	number(39, "blade_x", func(r *Simulation) **float64 { return &r.BladeX }),
	number(40, "blade_x1", func(r *Simulation) **float64 { return &r.BladeX1 }),
	number(41, "blade_x2", func(r *Simulation) **float64 { return &r.BladeX2 }),
	text(42, "blade_y_mode", func(r *Simulation) *string { return &r.BladeYMode }),
	number(43, "blade_y", func(r *Simulation) **float64 { return &r.BladeY }),
	number(44, "blade_y1", func(r *Simulation) **float64 { return &r.BladeY1 }),
	number(45, "blade_y2", func(r *Simulation) **float64 { return &r.BladeY2 }),
	number(46, "ii_lateral", func(r *Simulation) **float64 { return &r.IILateral }),
	number(47, "ii_longitudinal", func(r *Simulation) **float64 { return &r.IILongitudinal }),
	number(48, "ii_vertical", func(r *Simulation) **float64 { return &r.IIVertical }),
	number(49, "kvp", func(r *Simulation) **float64 { return &r.KVP }),
	number(50, "ma", func(r *Simulation) **float64 { return &r.MA }),
	number(51, "seconds", func(r *Simulation) **float64 { return &r.Seconds }),
	checksum(52, func(r *Simulation) *int32 { return &r.CRC }),
})

func DecodeSimulation(fields []string) (Simulation, error) {
	return simulationSchema.Decode(fields)
}
