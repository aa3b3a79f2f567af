package rtp

// MultiLeafCollimator is the static leaf layout of a field (MLC_DEF). MLCA
// and MLCB hold exactly MLCLeaves positions each.
type MultiLeafCollimator struct {
	FieldID   string    `json:"field_id"`
	MLCType   string    `json:"mlc_type"`
	MLCLeaves uint32    `json:"mlc_leaves"`
	MLCA      []float64 `json:"mlc_a"`
	MLCB      []float64 `json:"mlc_b"`
	CRC       int32     `json:"crc"`
}

const mlcBankCapacity = 50

var multiLeafCollimatorSchema = newSchema("MLC_DEF", 105,
	[]slot[MultiLeafCollimator]{
		tag[MultiLeafCollimator](),
		text(1, "field_id", func(r *MultiLeafCollimator) *string { return &r.FieldID }),
		text(2, "mlc_type", func(r *MultiLeafCollimator) *string { return &r.MLCType }),
		count(3, "mlc_leaves", func(r *MultiLeafCollimator) *uint32 { return &r.MLCLeaves }),
		checksum(104, func(r *MultiLeafCollimator) *int32 { return &r.CRC }),
	},
	leafRegion(LayoutBanks, "mlc_a", "mlc_b", "mlc_leaves", mlcBankCapacity, 4, 4+mlcBankCapacity, 1,
		func(r *MultiLeafCollimator) uint32 { return r.MLCLeaves },
		func(r *MultiLeafCollimator) (*[]float64, *[]float64) { return &r.MLCA, &r.MLCB }),
)

// DecodeMultiLeafCollimator decodes an MLC_DEF field sequence.
func DecodeMultiLeafCollimator(fields []string) (MultiLeafCollimator, error) {
	return multiLeafCollimatorSchema.Decode(fields)
}
