package rtp

// Field is the treatment field record (FIELD_DEF). A plan carries one per
// beam.
type Field struct {
	RxSiteName         string   `json:"rx_site_name"`
	FieldName          string   `json:"field_name"`
	FieldID            string   `json:"field_id"`
	FieldNote          string   `json:"field_note"`
	FieldDose          *float64 `json:"field_dose"`
	FieldMonitorUnits  *float64 `json:"field_monitor_units"`
	WedgeMonitorUnits  *float64 `json:"wedge_monitor_units"`
	TreatmentMachine   string   `json:"treatment_machine"`
	TreatmentType      string   `json:"treatment_type"`
	Modality           string   `json:"modality"`
	Energy             *float64 `json:"energy"`
	Time               *uint32  `json:"time"`
	DoseRate           *float64 `json:"dose_rate"`
	SAD                *float64 `json:"sad"`
	SSD                *float64 `json:"ssd"`
	GantryAngle        *float64 `json:"gantry_angle"`
	CollimatorAngle    *float64 `json:"collimator_angle"`
	FieldXMode         string   `json:"field_x_mode"`
	FieldX             *float64 `json:"field_x"`
	CollimatorX1       *float64 `json:"collimator_x1"`
	CollimatorX2       *float64 `json:"collimator_x2"`
	FieldYMode         string   `json:"field_y_mode"`
	FieldY             *float64 `json:"field_y"`
	CollimatorY1       *float64 `json:"collimator_y1"`
	CollimatorY2       *float64 `json:"collimator_y2"`
	CouchVertical      *float64 `json:"couch_vertical"`
	CouchLateral       *float64 `json:"couch_lateral"`
	CouchLongitudinal  *float64 `json:"couch_longitudinal"`
	CouchAngle         *float64 `json:"couch_angle"`
	CouchPedestal      *float64 `json:"couch_pedestal"`
	ToleranceTable     string   `json:"tolerance_table"`
	ArcDirection       string   `json:"arc_direction"`
	ArcStartAngle      *float64 `json:"arc_start_angle"`
	ArcStopAngle       *float64 `json:"arc_stop_angle"`
	ArcMUDegree        *float64 `json:"arc_mu_degree"`
	Wedge              string   `json:"wedge"`
	DynamicWedge       string   `json:"dynamic_wedge"`
	Block              string   `json:"block"`
	Compensator        string   `json:"compensator"`
	EApplicator        string   `json:"e_applicator"`
	EFieldDefAperture  string   `json:"e_field_def_aperture"`
	Bolus              string   `json:"bolus"`
	PortfilmMUOpen     *float64 `json:"portfilm_mu_open"`
	PortfilmCoeffOpen  *float64 `json:"portfilm_coeff_open"`
	PortfilmDeltaOpen  *float64 `json:"portfilm_delta_open"`
	PortfilmMUTreat    *float64 `json:"portfilm_mu_treat"`
	PortfilmCoeffTreat *float64 `json:"portfilm_coeff_treat"`
	IsocenterPositionX *float64 `json:"isocenter_position_x"`
	IsocenterPositionY *float64 `json:"isocenter_position_y"`
	IsocenterPositionZ *float64 `json:"isocenter_position_z"`
	CRC                int32    `json:"crc"`
}

var fieldSchema = newSchema("FIELD_DEF", 52, []slot[Field]{
	tag[Field](),
	text(1, "rx_site_name", func(r *Field) *string { return &r.RxSiteName }),
	text(2, "field_name", func(r *Field) *string { return &r.FieldName }),
	text(3, "field_id", func(r *Field) *string { return &r.FieldID }),
	text(4, "field_note", func(r *Field) *string { return &r.FieldNote }),
	number(5, "field_dose", func(r *Field) **float64 { return &r.FieldDose }),
	number(6, "field_monitor_units", func(r *Field) **float64 { return &r.FieldMonitorUnits }),
	number(7, "wedge_monitor_units", func(r *Field) **float64 { return &r.WedgeMonitorUnits }),
	text(8, "treatment_machine", func(r *Field) *string { return &r.TreatmentMachine }),
	text(9, "treatment_type", func(r *Field) *string { return &r.TreatmentType }),
	text(10, "modality", func(r *Field) *string { return &r.Modality }),
	number(11, "energy", func(r *Field) **float64 { return &r.Energy }),
	unsigned(12, "time", func(r *Field) **uint32 { return &r.Time }),
	number(13, "dose_rate", func(r *Field) **float64 { return &r.DoseRate }),
	number(14, "sad", func(r *Field) **float64 { return &r.SAD }),
	number(15, "ssd", func(r *Field) **float64 { return &r.SSD }),
	number(16, "gantry_angle", func(r *Field) **float64 { return &r.GantryAngle }),
	number(17, "collimator_angle", func(r *Field) **float64 { return &r.CollimatorAngle }),
	text(18, "field_x_mode", func(r *Field) *string { return &r.FieldXMode }),
	number(19, "field_x", func(r *Field) **float64 { return &r.FieldX }),
	number(20, "collimator_x1", func(r *Field) **float64 { return &r.CollimatorX1 }),
	number(21, "collimator_x2", func(r *Field) **float64 { return &r.CollimatorX2 }),
	text(22, "field_y_mode", func(r *Field) *string { return &r.FieldYMode }),
	number(23, "field_y", func(r *Field) **float64 { return &r.FieldY }),
	number(24, "collimator_y1", func(r *Field) **float64 { return &r.CollimatorY1 }),
	number(25, "collimator_y2", func(r *Field) **float64 { return &r.CollimatorY2 }),
	number(26, "couch_vertical", func(r *Field) **float64 { return &r.CouchVertical }),
	number(27, "couch_lateral", func(r *Field) **float64 { return &r.CouchLateral }),
	number(28, "couch_longitudinal", func(r *Field) **float64 { return &r.CouchLongitudinal }),
	number(29, "couch_angle", func(r *Field) **float64 { return &r.CouchAngle }),
	number(30, "couch_pedestal", func(r *Field) **float64 { return &r.CouchPedestal }),
	text(31, "tolerance_table", func(r *Field) *string { return &r.ToleranceTable }),
	text(32, "arc_direction", func(r *Field) *string { return &r.ArcDirection }),
	number(33, "arc_start_angle", func(r *Field) **float64 { return &r.ArcStartAngle }),
	number(34, "arc_stop_angle", func(r *Field) **float64 { return &r.ArcStopAngle }),
	number(35, "arc_mu_degree", func(r *Field) **float64 { return &r.ArcMUDegree }),
	text(36, "wedge", func(r *Field) *string { return &r.Wedge }),
	text(37, "dynamic_wedge", func(r *Field) *string { return &r.DynamicWedge }),
	text(38, "block", func(r *Field) *string { return &r.Block }),
	text(39, "compensator", func(r *Field) *string { return &r.Compensator }),
	text(40, "e_applicator", func(r *Field) *string { return &r.EApplicator }),
	text(41, "e_field_def_aperture", func(r *Field) *string { return &r.EFieldDefAperture }),
	text(42, "bolus", func(r *Field) *string { return &r.Bolus }),
	number(43, "portfilm_mu_open", func(r *Field) **float64 { return &r.PortfilmMUOpen }),
	number(44, "portfilm_coeff_open", func(r *Field) **float64 { return &r.PortfilmCoeffOpen }),
	number(45, "portfilm_delta_open", func(r *Field) **float64 { return &r.PortfilmDeltaOpen }),
	number(46, "portfilm_mu_treat", func(r *Field) **float64 { return &r.PortfilmMUTreat }),
	number(47, "portfilm_coeff_treat", func(r *Field) **float64 { return &r.PortfilmCoeffTreat }),
	number(48, "isocenter_position_x", func(r *Field) **float64 { return &r.IsocenterPositionX }),
	number(49, "isocenter_position_y", func(r *Field) **float64 { return &r.IsocenterPositionY }),
	number(50, "isocenter_position_z", func(r *Field) **float64 { return &r.IsocenterPositionZ }),
	checksum(51, func(r *Field) *int32 { return &r.CRC }),
})

// DecodeField decodes a FIELD_DEF field sequence.
func DecodeField(fields []string) (Field, error) {
	return fieldSchema.Decode(fields)
}
