package rtp

// Prescription is the prescription site record (RX_DEF).
type Prescription struct {
	CourseID       string   `json:"course_id"`
	RxSiteName     string   `json:"rx_site_name"`
	Technique      string   `json:"technique"`
	Modality       string   `json:"modality"`
	DoseSpec       string   `json:"dose_spec"`
	RxDepth        *float64 `json:"rx_depth"`
	DoseTotal      *float64 `json:"dose_ttl"`
	DoseTreatment  *float64 `json:"dose_tx"`
	Pattern        string   `json:"pattern"`
	RxNote         string   `json:"rx_note"`
	NumberOfFields uint32   `json:"number_of_fields"`
	CRC            int32    `json:"crc"`
}

var prescriptionSchema = newSchema("RX_DEF", 13, []slot[Prescription]{
	tag[Prescription](),
	text(1, "course_id", func(r *Prescription) *string { return &r.CourseID }),
	text(2, "rx_site_name", func(r *Prescription) *string { return &r.RxSiteName }),
	text(3, "technique", func(r *Prescription) *string { return &r.Technique }),
	text(4, "modality", func(r *Prescription) *string { return &r.Modality }),
	text(5, "dose_spec", func(r *Prescription) *string { return &r.DoseSpec }),
	number(6, "rx_depth", func(r *Prescription) **float64 { return &r.RxDepth }),
	number(7, "dose_ttl", func(r *Prescription) **float64 { return &r.DoseTotal }),
	number(8, "dose_tx", func(r *Prescription) **float64 { return &r.DoseTreatment }),
	text(9, "pattern", func(r *Prescription) *string { return &r.Pattern }),
	text(10, "rx_note", func(r *Prescription) *string { return &r.RxNote }),
	count(11, "number_of_fields", func(r *Prescription) *uint32 { return &r.NumberOfFields }),
	checksum(12, func(r *Prescription) *int32 { return &r.CRC }),
})

// DecodePrescription decodes an RX_DEF field sequence. NumberOfFields is
// mandatory.
func DecodePrescription(fields []string) (Prescription, error) {
	return prescriptionSchema.Decode(fields)
}
