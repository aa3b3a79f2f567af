package rtp

import (
	"log/slog"
	"maps"
	"slices"
)

// Options controls plan decoding.
type Options struct {
	// Strict turns a repeated singular record into a DuplicateRecordError
	// instead of letting the later record replace the earlier one.
	Strict bool
	// Logger receives debug events for skipped lines and unknown keywords.
	// Nil discards them.
	Logger *slog.Logger
}

// Stats summarises one decode run.
type Stats struct {
	Lines   int            `json:"lines"`
	Records map[string]int `json:"records"`
	Skipped int            `json:"skipped"`
	Unknown map[string]int `json:"unknown"`
}

// RecordCount returns the total number of records decoded.
func (s Stats) RecordCount() int {
	total := 0
	for _, n := range s.Records {
		total += n
	}
	return total
}

type handler func(d *Decoder, fields []string) error

var handlers = map[string]handler{
	planSchema.Keyword():                        singular(planSchema, func(p *TreatmentPlan) *Plan { return &p.Plan }),
	extendedPlanSchema.Keyword():                singular(extendedPlanSchema, func(p *TreatmentPlan) *ExtendedPlan { return &p.ExtendedPlan }),
	prescriptionSchema.Keyword():                singular(prescriptionSchema, func(p *TreatmentPlan) *Prescription { return &p.Prescription }),
	siteSetupSchema.Keyword():                   singular(siteSetupSchema, func(p *TreatmentPlan) *SiteSetup { return &p.SiteSetup }),
	simulationSchema.Keyword():                  singular(simulationSchema, func(p *TreatmentPlan) *Simulation { return &p.Simulation }),
	fieldSchema.Keyword():                       repeated(fieldSchema, func(p *TreatmentPlan) *[]Field { return &p.Fields }),
	extendedFieldSchema.Keyword():               repeated(extendedFieldSchema, func(p *TreatmentPlan) *[]ExtendedField { return &p.ExtendedFields }),
	documentBasedTreatmentFieldSchema.Keyword(): repeated(documentBasedTreatmentFieldSchema, func(p *TreatmentPlan) *[]DocumentBasedTreatmentField { return &p.DocumentBasedFields }),
	multiLeafCollimatorSchema.Keyword():         repeated(multiLeafCollimatorSchema, func(p *TreatmentPlan) *[]MultiLeafCollimator { return &p.MLCs }),
	controlPointSchema.Keyword():                repeated(controlPointSchema, func(p *TreatmentPlan) *[]ControlPoint { return &p.ControlPoints }),
	mlcShapeSchema.Keyword():                    repeated(mlcShapeSchema, func(p *TreatmentPlan) *[]MLCShape { return &p.MLCShapes }),
	doseTrackingSchema.Keyword():                repeated(doseTrackingSchema, func(p *TreatmentPlan) *[]DoseTracking { return &p.DoseTrackings }),
	doseActionSchema.Keyword():                  repeated(doseActionSchema, func(p *TreatmentPlan) *[]DoseAction { return &p.DoseActions }),
}

func singular[R any](s *Schema[R], dst func(*TreatmentPlan) *R) handler {
	return func(d *Decoder, fields []string) error {
		if first, ok := d.seen[s.keyword]; ok && d.opts.Strict {
			return &DuplicateRecordError{Keyword: s.keyword, FirstLine: first}
		}
		rec, err := s.Decode(fields)
		if err != nil {
			return err
		}
		if _, ok := d.seen[s.keyword]; ok {
			d.logger.Debug("singular record replaced", "keyword", s.keyword, "line", d.stats.Lines)
		} else {
			d.seen[s.keyword] = d.stats.Lines
		}
		*dst(d.plan) = rec
		return nil
	}
}

func repeated[R any](s *Schema[R], dst func(*TreatmentPlan) *[]R) handler {
	return func(d *Decoder, fields []string) error {
		rec, err := s.Decode(fields)
		if err != nil {
			return err
		}
		list := dst(d.plan)
		*list = append(*list, rec)
		return nil
	}
}

// Keywords lists the record keywords the decoder understands, sorted.
func Keywords() []string {
	return slices.Sorted(maps.Keys(handlers))
}

// Decoder builds a TreatmentPlan one line at a time. After the first error
// every further call returns that error.
type Decoder struct {
	opts   Options
	logger *slog.Logger
	plan   *TreatmentPlan
	stats  Stats
	seen   map[string]int
	err    error
}

// NewDecoder returns a Decoder holding an empty plan.
func NewDecoder(opts Options) *Decoder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{
		opts:   opts,
		logger: logger,
		plan:   &TreatmentPlan{},
		stats:  Stats{Records: map[string]int{}, Unknown: map[string]int{}},
		seen:   map[string]int{},
	}
}

// DecodeLine tokenizes one raw line and merges the resulting record into the
// plan. Non-conforming lines and unknown keywords are skipped. Decode
// failures are returned as *LineError.
func (d *Decoder) DecodeLine(line string) error {
	if d.err != nil {
		return d.err
	}
	d.stats.Lines++
	fields := SplitLine(line)
	if len(fields) == 0 {
		d.stats.Skipped++
		return nil
	}
	keyword := fields[0]
	h, ok := handlers[keyword]
	if !ok {
		d.stats.Unknown[keyword]++
		d.logger.Debug("unknown keyword skipped", "keyword", keyword, "line", d.stats.Lines)
		return nil
	}
	if err := h(d, fields); err != nil {
		d.err = &LineError{Line: d.stats.Lines, Keyword: keyword, Err: err}
		d.plan = nil
		return d.err
	}
	d.stats.Records[keyword]++
	return nil
}

// Finish returns the completed plan, or the first decode error.
func (d *Decoder) Finish() (*TreatmentPlan, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.plan, nil
}

// Stats returns counters for the lines seen so far.
func (d *Decoder) Stats() Stats {
	out := d.stats
	out.Records = maps.Clone(d.stats.Records)
	out.Unknown = maps.Clone(d.stats.Unknown)
	return out
}

// Decode runs a fresh Decoder over lines.
func Decode(lines []string, opts Options) (*TreatmentPlan, error) {
	d := NewDecoder(opts)
	for _, line := range lines {
		if err := d.DecodeLine(line); err != nil {
			return nil, err
		}
	}
	return d.Finish()
}
