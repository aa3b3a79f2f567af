package rtp

// SiteSetup is the site setup record (SITE_SETUP_DEF).
type SiteSetup struct {
	RxSiteName                             string   `json:"rx_site_name"`
	PatientOrientation                     string   `json:"patient_orientation"`
	TreatmentMachine                       string   `json:"treatment_machine"`
	ToleranceTable                         string   `json:"tolerance_table"`
	IsocenterPositionX                     *float64 `json:"isocenter_position_x"`
	IsocenterPositionY                     *float64 `json:"isocenter_position_y"`
	IsocenterPositionZ                     *float64 `json:"isocenter_position_z"`
	StructureSetUID                        string   `json:"structure_set_uid"`
	FrameOfReferenceUID                    string   `json:"frame_of_reference_uid"`
	CouchVertical                          *float64 `json:"couch_vertical"`
	CouchLateral                           *float64 `json:"couch_lateral"`
	CouchLongitudinal                      *float64 `json:"couch_longitudinal"`
	CouchAngle                             *float64 `json:"couch_angle"`
	CouchPedestal                          *float64 `json:"couch_pedestal"`
	TableTopVerticalDisplacement           *float64 `json:"table_top_vertical_displacement"`
	TableTopLongitudinalDisplacement       *float64 `json:"table_top_longitudinal_displacement"`
	TableTopLateralDisplacement            *float64 `json:"table_top_lateral_displacement"`
	MRLCoilName                            string   `json:"mrl_coil_name"`
	MRLCoilIndex                           *uint32  `json:"mrl_coil_index"`
	CouchReference                         string   `json:"couch_reference"`
	CouchReferenceIndex                    *uint32  `json:"couch_reference_index"`
	RespiratoryMotionCompensationTechnique string   `json:"respiratory_motion_compensation_technique"`
	RespiratorySignalSource                string   `json:"respiratory_signal_source"`
	CRC                                    int32    `json:"crc"`
}

var siteSetupSchema = newSchema("SITE_SETUP_DEF", 25, []slot[SiteSetup]{
	tag[SiteSetup](),
	text(1, "rx_site_name", func(r *SiteSetup) *string { return &r.RxSiteName }),
	text(2, "patient_orientation", func(r *SiteSetup) *string { return &r.PatientOrientation }),
	text(3, "treatment_machine", func(r *SiteSetup) *string { return &r.TreatmentMachine }),
	text(4, "tolerance_table", func(r *SiteSetup) *string { return &r.ToleranceTable }),
	number(5, "isocenter_position_x", func(r *SiteSetup) **float64 { return &r.IsocenterPositionX }),
	number(6, "isocenter_position_y", func(r *SiteSetup) **float64 { return &r.IsocenterPositionY }),
	number(7, "isocenter_position_z", func(r *SiteSetup) **float64 { return &r.IsocenterPositionZ }),
	text(8, "structure_set_uid", func(r *SiteSetup) *string { return &r.StructureSetUID }),
	text(9, "frame_of_reference_uid", func(r *SiteSetup) *string { return &r.FrameOfReferenceUID }),
	number(10, "couch_vertical", func(r *SiteSetup) **float64 { return &r.CouchVertical }),
	number(11, "couch_lateral", func(r *SiteSetup) **float64 { return &r.CouchLateral }),
	number(12, "couch_longitudinal", func(r *SiteSetup) **float64 { return &r.CouchLongitudinal }),
	number(13, "couch_angle", func(r *SiteSetup) **float64 { return &r.CouchAngle }),
	number(14, "couch_pedestal", func(r *SiteSetup) **float64 { return &r.CouchPedestal }),
	number(15, "table_top_vertical_displacement", func(r *SiteSetup) **float64 { return &r.TableTopVerticalDisplacement }),
	number(16, "table_top_longitudinal_displacement", func(r *SiteSetup) **float64 { return &r.TableTopLongitudinalDisplacement }),
	number(17, "table_top_lateral_displacement", func(r *SiteSetup) **float64 { return &r.TableTopLateralDisplacement }),
	text(18, "mrl_coil_name", func(r *SiteSetup) *string { return &r.MRLCoilName }),
	unsigned(19, "mrl_coil_index", func(r *SiteSetup) **uint32 { return &r.MRLCoilIndex }),
	text(20, "couch_reference", func(r *SiteSetup) *string { return &r.CouchReference }),
	unsigned(21, "couch_reference_index", func(r *SiteSetup) **uint32 { return &r.CouchReferenceIndex }),
	text(22, "respiratory_motion_compensation_technique", func(r *SiteSetup) *string { return &r.RespiratoryMotionCompensationTechnique }),
	text(23, "respiratory_signal_source", func(r *SiteSetup) *string { return &r.RespiratorySignalSource }),
	checksum(24, func(r *SiteSetup) *int32 { return &r.CRC }),
})

// DecodeSiteSetup decodes a SITE_SETUP_DEF field sequence.
func DecodeSiteSetup(fields []string) (SiteSetup, error) {
	return siteSetupSchema.Decode(fields)
}
