package rtp

// Plan is the plan definition record (PLAN_DEF): patient, plan, approval and
// export system identification.
type Plan struct {
	PatientID               string `json:"patient_id"`
	PatientLastName         string `json:"patient_last_name"`
	PatientFirstName        string `json:"patient_first_name"`
	PatientMiddleInitial    string `json:"patient_middle_initial"`
	PlanID                  string `json:"plan_id"`
	PlanDate                string `json:"plan_date"`
	PlanTime                string `json:"plan_time"`
	CourseID                string `json:"course_id"`
	Diagnosis               string `json:"diagnosis"`
	MDLastName              string `json:"md_last_name"`
	MDFirstName             string `json:"md_first_name"`
	MDMiddleInitial         string `json:"md_middle_initial"`
	MDApproveLastName       string `json:"md_approve_last_name"`
	MDApproveFirstName      string `json:"md_approve_first_name"`
	MDApproveMiddleInitial  string `json:"md_approve_middle_initial"`
	PhyApproveLastName      string `json:"phy_approve_last_name"`
	PhyApproveFirstName     string `json:"phy_approve_first_name"`
	PhyApproveMiddleInitial string `json:"phy_approve_middle_initial"`
	AuthorLastName          string `json:"author_last_name"`
	AuthorFirstName         string `json:"author_first_name"`
	AuthorMiddleInitial     string `json:"author_middle_initial"`
	RTPMfg                  string `json:"rtp_mfg"`
	RTPModel                string `json:"rtp_model"`
	RTPVersion              string `json:"rtp_version"`
	RTPIfProtocol           string `json:"rtp_if_protocol"`
	RTPIfVersion            string `json:"rtp_if_version"`
	CRC                     int32  `json:"crc"`
}

var planSchema = newSchema("PLAN_DEF", 28, []slot[Plan]{
	tag[Plan](),
	text(1, "patient_id", func(r *Plan) *string { return &r.PatientID }),
	text(2, "patient_last_name", func(r *Plan) *string { return &r.PatientLastName }),
	text(3, "patient_first_name", func(r *Plan) *string { return &r.PatientFirstName }),
	text(4, "patient_middle_initial", func(r *Plan) *string { return &r.PatientMiddleInitial }),
	text(5, "plan_id", func(r *Plan) *string { return &r.PlanID }),
	text(6, "plan_date", func(r *Plan) *string { return &r.PlanDate }),
	text(7, "plan_time", func(r *Plan) *string { return &r.PlanTime }),
	text(8, "course_id", func(r *Plan) *string { return &r.CourseID }),
	text(9, "diagnosis", func(r *Plan) *string { return &r.Diagnosis }),
	text(10, "md_last_name", func(r *Plan) *string { return &r.MDLastName }),
	text(11, "md_first_name", func(r *Plan) *string { return &r.MDFirstName }),
	text(12, "md_middle_initial", func(r *Plan) *string { return &r.MDMiddleInitial }),
	text(13, "md_approve_last_name", func(r *Plan) *string { return &r.MDApproveLastName }),
	text(14, "md_approve_first_name", func(r *Plan) *string { return &r.MDApproveFirstName }),
	text(15, "md_approve_middle_initial", func(r *Plan) *string { return &r.MDApproveMiddleInitial }),
	text(16, "phy_approve_last_name", func(r *Plan) *string { return &r.PhyApproveLastName }),
	text(17, "phy_approve_first_name", func(r *Plan) *string { return &r.PhyApproveFirstName }),
	text(18, "phy_approve_middle_initial", func(r *Plan) *string { return &r.PhyApproveMiddleInitial }),
	text(19, "author_last_name", func(r *Plan) *string { return &r.AuthorLastName }),
	text(20, "author_first_name", func(r *Plan) *string { return &r.AuthorFirstName }),
	text(21, "author_middle_initial", func(r *Plan) *string { return &r.AuthorMiddleInitial }),
	text(22, "rtp_mfg", func(r *Plan) *string { return &r.RTPMfg }),
	text(23, "rtp_model", func(r *Plan) *string { return &r.RTPModel }),
	text(24, "rtp_version", func(r *Plan) *string { return &r.RTPVersion }),
	text(25, "rtp_if_protocol", func(r *Plan) *string { return &r.RTPIfProtocol }),
	text(26, "rtp_if_version", func(r *Plan) *string { return &r.RTPIfVersion }),
	checksum(27, func(r *Plan) *int32 { return &r.CRC }),
})

// DecodePlan decodes a PLAN_DEF field sequence.
func DecodePlan(fields []string) (Plan, error) {
	return planSchema.Decode(fields)
}
