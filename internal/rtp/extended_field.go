package rtp

// ExtendedField is the extended field record (EXTENDED_FIELD_DEF).
type ExtendedField struct {
	FieldID               string `json:"field_id"`
	OriginalPlanUID       string `json:"original_plan_uid"`
	OriginalBeamNumber    string `json:"original_beam_number"`
	OriginalBeamName      string `json:"original_beam_name"`
	IsFFF                 string `json:"is_fff"`
	AccessoryCode         string `json:"accessory_code"`
	AccessoryType         string `json:"accessory_type"`
	HighDoseAuthorization string `json:"high_dose_authorization"`
	ReferencedRTPlanUID   string `json:"referenced_rt_plan_uid"`
	RTPlanRelationship    string `json:"rt_plan_relationship"`
	CRC                   int32  `json:"crc"`
}

var extendedFieldSchema = newSchema("EXTENDED_FIELD_DEF", 12, []slot[ExtendedField]{
	tag[ExtendedField](),
	text(1, "field_id", func(r *ExtendedField) *string { return &r.FieldID }),
	text(2, "original_plan_uid", func(r *ExtendedField) *string { return &r.OriginalPlanUID }),
	text(3, "original_beam_number", func(r *ExtendedField) *string { return &r.OriginalBeamNumber }),
	text(4, "original_beam_name", func(r *ExtendedField) *string { return &r.OriginalBeamName }),
	text(5, "is_fff", func(r *ExtendedField) *string { return &r.IsFFF }),
	text(6, "accessory_code", func(r *ExtendedField) *string { return &r.AccessoryCode }),
	text(7, "accessory_type", func(r *ExtendedField) *string { return &r.AccessoryType }),
	text(8, "high_dose_authorization", func(r *ExtendedField) *string { return &r.HighDoseAuthorization }),
	text(9, "referenced_rt_plan_uid", func(r *ExtendedField) *string { return &r.ReferencedRTPlanUID }),
	text(10, "rt_plan_relationship", func(r *ExtendedField) *string { return &r.RTPlanRelationship }),
	checksum(11, func(r *ExtendedField) *int32 { return &r.CRC }),
})

func DecodeExtendedField(fields []string) (ExtendedField, error) {
	return extendedFieldSchema.Decode(fields)
}
