package rtp

import "slices"

// SlotInfo describes one scalar position of a schema.
type SlotInfo struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Kind     string `json:"kind"`
}

// RegionInfo describes a reserved pair of parallel arrays.
type RegionInfo struct {
	NameA      string `json:"name_a"`
	NameB      string `json:"name_b"`
	Layout     string `json:"layout"`
	CountField string `json:"count_field,omitempty"`
	Capacity   int    `json:"capacity"`
	BaseA      int    `json:"base_a"`
	BaseB      int    `json:"base_b"`
	Stride     int    `json:"stride"`
}

// SchemaInfo is the printable form of a record schema.
type SchemaInfo struct {
	Keyword  string       `json:"keyword"`
	Length   int          `json:"length"`
	Singular bool         `json:"singular"`
	Slots    []SlotInfo   `json:"slots"`
	Regions  []RegionInfo `json:"regions,omitempty"`
}

type describer interface {
	describe() SchemaInfo
}

func (s *Schema[R]) describe() SchemaInfo {
	info := SchemaInfo{Keyword: s.keyword, Length: s.length}
	for _, sl := range s.slots {
		info.Slots = append(info.Slots, SlotInfo{Name: sl.name, Position: sl.pos, Kind: sl.kind.String()})
	}
	slices.SortFunc(info.Slots, func(a, b SlotInfo) int { return a.Position - b.Position })
	for _, rg := range s.regions {
		info.Regions = append(info.Regions, RegionInfo{
			NameA:      rg.nameA,
			NameB:      rg.nameB,
			Layout:     rg.layout.String(),
			CountField: rg.countField,
			Capacity:   rg.capacity,
			BaseA:      rg.baseA,
			BaseB:      rg.baseB,
			Stride:     rg.stride,
		})
	}
	return info
}

var singularKeywords = map[string]bool{
	planSchema.keyword:         true,
	extendedPlanSchema.keyword: true,
	prescriptionSchema.keyword: true,
	siteSetupSchema.keyword:    true,
	simulationSchema.keyword:   true,
}

// schemas lists every record kind in the order a plan file usually carries
// them.
var schemas = []describer{
	planSchema,
	extendedPlanSchema,
	prescriptionSchema,
	siteSetupSchema,
	simulationSchema,
	fieldSchema,
	extendedFieldSchema,
	documentBasedTreatmentFieldSchema,
	multiLeafCollimatorSchema,
	controlPointSchema,
	mlcShapeSchema,
	doseTrackingSchema,
	doseActionSchema,
}

// Schemas returns the description of every known record kind.
func Schemas() []SchemaInfo {
	out := make([]SchemaInfo, 0, len(schemas))
	for _, s := range schemas {
		info := s.describe()
		info.Singular = singularKeywords[info.Keyword]
		out = append(out, info)
	}
	return out
}

// Describe returns the schema for keyword.
func Describe(keyword string) (SchemaInfo, bool) {
	for _, info := range Schemas() {
		if info.Keyword == keyword {
			return info, true
		}
	}
	return SchemaInfo{}, false
}
