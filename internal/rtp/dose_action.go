package rtp

// DoseAction is a dose action point (DOSE_ACTION).
type DoseAction struct {
	RegionName string   `json:"region_name"`
	ActionDose *float64 `json:"action_dose"`
	ActionNote string   `json:"action_note"`
	CRC        int32    `json:"crc"`
}

var doseActionSchema = newSchema("DOSE_ACTION", 5, []slot[DoseAction]{
	tag[DoseAction](),
	text(1, "region_name", func(r *DoseAction) *string { return &r.RegionName }),
	number(2, "action_dose", func(r *DoseAction) **float64 { return &r.ActionDose }),
	text(3, "action_note", func(r *DoseAction) *string { return &r.ActionNote }),
	checksum(4, func(r *DoseAction) *int32 { return &r.CRC }),
})

func DecodeDoseAction(fields []string) (DoseAction, error) {
	return doseActionSchema.Decode(fields)
}
