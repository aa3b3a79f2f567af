package rtp

// DocumentBasedTreatmentField is a treatment field whose delivery is described by an
// external document rather than machine parameters.
type DocumentBasedTreatmentField struct {
	FieldID          string   `json:"field_id"`
	RxSiteName       string   `json:"rx_site_name"`
	FieldName        string   `json:"field_name"`
	TreatmentMachine string   `json:"treatment_machine"`
	DocumentUID      string   `json:"document_uid"`
	DocumentName     string   `json:"document_name"`
	DocumentType     string   `json:"document_type"`
	DocumentDate     string   `json:"document_date"`
	TreatmentTime    *float64 `json:"treatment_time"`
	FieldDose        *float64 `json:"field_dose"`
	CRC              int32    `json:"crc"`
}

var documentBasedTreatmentFieldSchema = newSchema("DOCUMENT_BASED_TREATMENT_FIELD_DEF", 12, []slot[DocumentBasedTreatmentField]{
	tag[DocumentBasedTreatmentField](),
	text(1, "field_id", func(r *DocumentBasedTreatmentField) *string { return &r.FieldID }),
	text(2, "rx_site_name", func(r *DocumentBasedTreatmentField) *string { return &r.RxSiteName }),
	text(3, "field_name", func(r *DocumentBasedTreatmentField) *string { return &r.FieldName }),
	text(4, "treatment_machine", func(r *DocumentBasedTreatmentField) *string { return &r.TreatmentMachine }),
	text(5, "document_uid", func(r *DocumentBasedTreatmentField) *string { return &r.DocumentUID }),
	text(6, "document_name", func(r *DocumentBasedTreatmentField) *string { return &r.DocumentName }),
	text(7, "document_type", func(r *DocumentBasedTreatmentField) *string { return &r.DocumentType }),
	text(8, "document_date", func(r *DocumentBasedTreatmentField) *string { return &r.DocumentDate }),
	number(9, "treatment_time", func(r *DocumentBasedTreatmentField) **float64 { return &r.TreatmentTime }),
	number(10, "field_dose", func(r *DocumentBasedTreatmentField) **float64 { return &r.FieldDose }),
	checksum(11, func(r *DocumentBasedTreatmentField) *int32 { return &r.CRC }),
})

// DecodeDocumentBasedTreatmentField decodes a
// DOCUMENT_BASED_TREATMENT_FIELD_DEF field sequence.
func DecodeDocumentBasedTreatmentField(fields []string) (DocumentBasedTreatmentField, error) {
	return documentBasedTreatmentFieldSchema.Decode(fields)
}
