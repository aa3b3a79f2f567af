package rtp

// ExtendedPlan is the extended plan definition record (EXTENDED_PLAN_DEF).
type ExtendedPlan struct {
	Encoding        string `json:"encoding"`
	Fullname        string `json:"fullname"`
	PatientComments string `json:"patient_comments"`
	CRC             int32  `json:"crc"`
}

var extendedPlanSchema = newSchema("EXTENDED_PLAN_DEF", 5, []slot[ExtendedPlan]{
	tag[ExtendedPlan](),
	text(1, "encoding", func(r *ExtendedPlan) *string { return &r.Encoding }),
	text(2, "fullname", func(r *ExtendedPlan) *string { return &r.Fullname }),
	text(3, "patient_comments", func(r *ExtendedPlan) *string { return &r.PatientComments }),
	checksum(4, func(r *ExtendedPlan) *int32 { return &r.CRC }),
})

// DecodeExtendedPlan decodes an EXTENDED_PLAN_DEF field sequence.
func DecodeExtendedPlan(fields []string) (ExtendedPlan, error) {
	return extendedPlanSchema.Decode(fields)
}
