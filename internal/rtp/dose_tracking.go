package rtp

// DoseTracking is a dose tracking region (DOSE_DEF). The ten field
// id/coefficient pairs are always read in full; unused pairs hold blank ids
// and nil coefficients.
type DoseTracking struct {
	RegionName      string     `json:"region_name"`
	RegionPriorDose *float64   `json:"region_prior_dose"`
	FieldIDs        []string   `json:"field_ids"`
	RegCoeffs       []*float64 `json:"reg_coeffs"`
	ActualDose      *float64   `json:"actual_dose"`
	ActualFractions *uint32    `json:"actual_fractions"`
	CRC             int32      `json:"crc"`
}

const doseFieldGroups = 10

var doseTrackingSchema = newSchema("DOSE_DEF", 26,
	[]slot[DoseTracking]{
		tag[DoseTracking](),
		text(1, "region_name", func(r *DoseTracking) *string { return &r.RegionName }),
		number(2, "region_prior_dose", func(r *DoseTracking) **float64 { return &r.RegionPriorDose }),
		number(23, "actual_dose", func(r *DoseTracking) **float64 { return &r.ActualDose }),
		unsigned(24, "actual_fractions", func(r *DoseTracking) **uint32 { return &r.ActualFractions }),
		checksum(25, func(r *DoseTracking) *int32 { return &r.CRC }),
	},
	groupRegion("field_ids", "reg_coeffs", doseFieldGroups, 3,
		func(r *DoseTracking) (*[]string, *[]*float64) { return &r.FieldIDs, &r.RegCoeffs }),
)

// DecodeDoseTracking decodes a DOSE_DEF field sequence.
func DecodeDoseTracking(fields []string) (DoseTracking, error) {
	return doseTrackingSchema.Decode(fields)
}
