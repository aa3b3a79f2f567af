package rtp

// TreatmentPlan is the decoded content of one RTP file. Singular records keep
// their zero value when the file does not carry them; repeated records keep
// file order.
type TreatmentPlan struct {
	Plan         Plan         `json:"plan"`
	ExtendedPlan ExtendedPlan `json:"extended_plan"`
	Prescription Prescription `json:"prescription"`
	SiteSetup    SiteSetup    `json:"site_setup"`
	Simulation   Simulation   `json:"simulation"`

	Fields              []Field                       `json:"fields"`
	ExtendedFields      []ExtendedField               `json:"extended_fields"`
	DocumentBasedFields []DocumentBasedTreatmentField `json:"document_based_fields"`
	MLCs                []MultiLeafCollimator         `json:"mlcs"`
	ControlPoints       []ControlPoint                `json:"control_points"`
	MLCShapes           []MLCShape                    `json:"mlc_shapes"`
	DoseTrackings       []DoseTracking                `json:"dose_trackings"`
	DoseActions         []DoseAction                  `json:"dose_actions"`
}

// ControlPointsFor returns the control points that belong to fieldID in file
// order.
func (p *TreatmentPlan) ControlPointsFor(fieldID string) []ControlPoint {
	var out []ControlPoint
	for _, cp := range p.ControlPoints {
		if cp.FieldID == fieldID {
			out = append(out, cp)
		}
	}
	return out
}

// FieldByID returns the first FIELD_DEF record with the given id.
func (p *TreatmentPlan) FieldByID(fieldID string) (Field, bool) {
	for _, f := range p.Fields {
		if f.FieldID == fieldID {
			return f, true
		}
	}
	return Field{}, false
}
