package rtp

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// decodeAny runs the schema registered for the record's keyword.
func decodeAny(t *testing.T, fields []string) error {
	t.Helper()
	d := NewDecoder(Options{})
	h, ok := handlers[fields[0]]
	if !ok {
		t.Fatalf("no handler for %s", fields[0])
	}
	return h(d, fields)
}

func TestSchemasCoverEveryKeyword(t *testing.T) {
	want := []string{
		"CONTROL_PT_DEF", "DOCUMENT_BASED_TREATMENT_FIELD_DEF", "DOSE_ACTION", "DOSE_DEF",
		"EXTENDED_FIELD_DEF", "EXTENDED_PLAN_DEF", "FIELD_DEF", "MLC_DEF", "MLC_SHAPE_DEF",
		"PLAN_DEF", "RX_DEF", "SIM_DEF", "SITE_SETUP_DEF",
	}
	if got := Keywords(); !slices.Equal(got, want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	if len(Schemas()) != len(want) {
		t.Fatalf("Schemas() returned %d entries, want %d", len(Schemas()), len(want))
	}
}

func TestSchemaLengths(t *testing.T) {
	want := map[string]int{
		"PLAN_DEF":                           28,
		"EXTENDED_PLAN_DEF":                  5,
		"RX_DEF":                             13,
		"SITE_SETUP_DEF":                     25,
		"SIM_DEF":                            53,
		"FIELD_DEF":                          52,
		"EXTENDED_FIELD_DEF":                 12,
		"DOCUMENT_BASED_TREATMENT_FIELD_DEF": 12,
		"MLC_DEF":                            105,
		"CONTROL_PT_DEF":                     236,
		"MLC_SHAPE_DEF":                      325,
		"DOSE_DEF":                           26,
		"DOSE_ACTION":                        5,
	}
	for _, info := range Schemas() {
		if info.Length != want[info.Keyword] {
			t.Errorf("%s length = %d, want %d", info.Keyword, info.Length, want[info.Keyword])
		}
		first, last := info.Slots[0], info.Slots[len(info.Slots)-1]
		if first.Kind != "keyword" || first.Position != 0 {
			t.Errorf("%s first slot = %+v", info.Keyword, first)
		}
		if last.Kind != "checksum" || last.Position != info.Length-1 {
			t.Errorf("%s last slot = %+v", info.Keyword, last)
		}
	}
}

func TestEverySchemaDecodesMinimalRecord(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(info.Keyword, func(t *testing.T) {
			if err := decodeAny(t, validRecord(info)); err != nil {
				t.Fatalf("decode minimal record: %v", err)
			}
		})
	}
}

func TestEverySchemaRejectsWrongArity(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(info.Keyword, func(t *testing.T) {
			short := validRecord(info)[:info.Length-1]
			long := append(validRecord(info), "0")
			for _, fields := range [][]string{short, long} {
				err := decodeAny(t, fields)
				var arity *ArityError
				if !errors.As(err, &arity) {
					t.Fatalf("expected ArityError, got %v", err)
				}
				if arity.Expected != info.Length || arity.Actual != len(fields) {
					t.Fatalf("arity = %+v, want expected %d actual %d", arity, info.Length, len(fields))
				}
			}
		})
	}
}

func TestEverySchemaRejectsBadChecksum(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(info.Keyword, func(t *testing.T) {
			fields := validRecord(info)
			fields[len(fields)-1] = "abc"
			err := decodeAny(t, fields)
			if !errors.Is(err, ErrChecksum) {
				t.Fatalf("expected ErrChecksum, got %v", err)
			}
			fields[len(fields)-1] = ""
			if err := decodeAny(t, fields); !errors.Is(err, ErrChecksum) {
				t.Fatalf("blank checksum: expected ErrChecksum, got %v", err)
			}
		})
	}
}

func TestEverySchemaRejectsWrongKeyword(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(info.Keyword, func(t *testing.T) {
			fields := validRecord(info)
			fields[0] = "OTHER_DEF"
			err := handlers[info.Keyword](NewDecoder(Options{}), fields)
			var kw *KeywordError
			if !errors.As(err, &kw) {
				t.Fatalf("expected KeywordError, got %v", err)
			}
			if kw.Expected != info.Keyword || kw.Actual != "OTHER_DEF" {
				t.Fatalf("keyword error = %+v, want expected %s actual OTHER_DEF", kw, info.Keyword)
			}
		})
	}
}

func TestEverySchemaRejectsPaddedChecksum(t *testing.T) {
	for _, info := range Schemas() {
		t.Run(info.Keyword, func(t *testing.T) {
			fields := validRecord(info)
			fields[len(fields)-1] = " 12 "
			if err := decodeAny(t, fields); !errors.Is(err, ErrChecksum) {
				t.Fatalf("expected ErrChecksum, got %v", err)
			}
		})
	}
}

func TestDecodeKeywordMismatch(t *testing.T) {
	fields := blankRecord("FIELD_DEF", 28)
	_, err := DecodePlan(fields)
	var kw *KeywordError
	if !errors.As(err, &kw) {
		t.Fatalf("expected KeywordError, got %v", err)
	}
	if kw.Expected != "PLAN_DEF" || kw.Actual != "FIELD_DEF" {
		t.Fatalf("unexpected keyword error %+v", kw)
	}
}

func TestArityCheckedBeforeKeyword(t *testing.T) {
	_, err := DecodePlan(blankRecord("FIELD_DEF", 52))
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestDecodePlanFields(t *testing.T) {
	fields := blankRecord("PLAN_DEF", 28)
	fields[1] = "12345"
	fields[2] = "Doe"
	fields[5] = "PLAN1"
	fields[26] = "2.20"
	fields[27] = "-4711"
	plan, err := DecodePlan(fields)
	if err != nil {
		t.Fatalf("DecodePlan: %v", err)
	}
	if plan.PatientID != "12345" || plan.PatientLastName != "Doe" || plan.PlanID != "PLAN1" {
		t.Fatalf("unexpected plan %+v", plan)
	}
	if plan.RTPIfVersion != "2.20" {
		t.Fatalf("RTPIfVersion = %q", plan.RTPIfVersion)
	}
	if plan.CRC != -4711 {
		t.Fatalf("CRC = %d", plan.CRC)
	}
}

func TestDecodeFieldOptionalNumbers(t *testing.T) {
	fields := blankRecord("FIELD_DEF", 52)
	fields[3] = "F1"
	fields[5] = "200.5"
	fields[6] = "not a number"
	fields[11] = "6"
	fields[12] = "-3"
	field, err := DecodeField(fields)
	if err != nil {
		t.Fatalf("DecodeField: %v", err)
	}
	if field.FieldDose == nil || *field.FieldDose != 200.5 {
		t.Fatalf("FieldDose = %v", field.FieldDose)
	}
	if field.FieldMonitorUnits != nil {
		t.Fatalf("FieldMonitorUnits should be absent, got %v", *field.FieldMonitorUnits)
	}
	if field.Energy == nil || *field.Energy != 6 {
		t.Fatalf("Energy = %v", field.Energy)
	}
	if field.Time != nil {
		t.Fatalf("negative Time should be absent, got %d", *field.Time)
	}
	if field.WedgeMonitorUnits != nil {
		t.Fatalf("blank WedgeMonitorUnits should be absent")
	}
}

func TestDecodePrescriptionRequiresFieldCount(t *testing.T) {
	fields := blankRecord("RX_DEF", 13)
	_, err := DecodePrescription(fields)
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValueError, got %v", err)
	}
	if ve.Field != "number_of_fields" || ve.Position != 11 {
		t.Fatalf("unexpected value error %+v", ve)
	}

	fields[11] = "4"
	rx, err := DecodePrescription(fields)
	if err != nil {
		t.Fatalf("DecodePrescription: %v", err)
	}
	if rx.NumberOfFields != 4 {
		t.Fatalf("NumberOfFields = %d", rx.NumberOfFields)
	}
}

func controlPointFields(leaves int) []string {
	fields := blankRecord("CONTROL_PT_DEF", 236)
	for i := 1; i < 235; i++ {
		fields[i] = itoa(i)
	}
	fields[1] = "FieldId"
	fields[2] = "MlcType"
	fields[3] = itoa(leaves)
	fields[8] = "WedgePosition"
	fields[14] = "CW"
	fields[16] = "cc"
	fields[17] = "SYM"
	fields[21] = "ASYM"
	fields[29] = "NONE"
	fields[31] = "CounterClockwise"
	return fields
}

func TestDecodeControlPoint(t *testing.T) {
	cp, err := DecodeControlPoint(controlPointFields(30))
	if err != nil {
		t.Fatalf("DecodeControlPoint: %v", err)
	}
	if cp.FieldID != "FieldId" || cp.MLCType != "MlcType" || cp.WedgePosition != "WedgePosition" {
		t.Fatalf("unexpected text fields %+v", cp)
	}
	if cp.MLCLeaves != 30 || cp.TotalControlPoints != 4 || cp.ControlPtNumber != 5 {
		t.Fatalf("counts = %d %d %d", cp.MLCLeaves, cp.TotalControlPoints, cp.ControlPtNumber)
	}
	if cp.MUConvention == nil || *cp.MUConvention != 6 {
		t.Fatalf("MUConvention = %v", cp.MUConvention)
	}
	if cp.GantryDir == nil || *cp.GantryDir != Clockwise {
		t.Fatalf("GantryDir = %v", cp.GantryDir)
	}
	if cp.CollimatorDir == nil || *cp.CollimatorDir != CounterClockwise {
		t.Fatalf("CollimatorDir = %v", cp.CollimatorDir)
	}
	if cp.CouchDir != nil {
		t.Fatalf("CouchDir should be absent, got %v", *cp.CouchDir)
	}
	if cp.CouchPedestalDir == nil || *cp.CouchPedestalDir != CounterClockwise {
		t.Fatalf("CouchPedestalDir = %v", cp.CouchPedestalDir)
	}
	if cp.IsocenterPositionZ == nil || *cp.IsocenterPositionZ != 34 {
		t.Fatalf("IsocenterPositionZ = %v", cp.IsocenterPositionZ)
	}
	if len(cp.MLCA) != 30 || len(cp.MLCB) != 30 {
		t.Fatalf("bank sizes = %d, %d; want 30", len(cp.MLCA), len(cp.MLCB))
	}
	for i := range 30 {
		if cp.MLCA[i] != float64(35+i) {
			t.Fatalf("MLCA[%d] = %v, want %d", i, cp.MLCA[i], 35+i)
		}
		if cp.MLCB[i] != float64(135+i) {
			t.Fatalf("MLCB[%d] = %v, want %d", i, cp.MLCB[i], 135+i)
		}
	}
}

func TestControlPointIgnoresContentPastCount(t *testing.T) {
	fields := controlPointFields(2)
	for i := 37; i < 135; i++ {
		fields[i] = "stale"
	}
	for i := 137; i < 235; i++ {
		fields[i] = ""
	}
	cp, err := DecodeControlPoint(fields)
	if err != nil {
		t.Fatalf("DecodeControlPoint: %v", err)
	}
	if !slices.Equal(cp.MLCA, []float64{35, 36}) || !slices.Equal(cp.MLCB, []float64{135, 136}) {
		t.Fatalf("banks = %v / %v", cp.MLCA, cp.MLCB)
	}
}

func TestControlPointZeroLeaves(t *testing.T) {
	cp, err := DecodeControlPoint(controlPointFields(0))
	if err != nil {
		t.Fatalf("DecodeControlPoint: %v", err)
	}
	if len(cp.MLCA) != 0 || len(cp.MLCB) != 0 {
		t.Fatalf("expected empty banks, got %d/%d", len(cp.MLCA), len(cp.MLCB))
	}
}

func TestControlPointCountErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]string)
		want   error
		field  string
	}{
		{name: "leaf count over capacity", mutate: func(f []string) { f[3] = "101" }, want: ErrCapacity, field: "mlc_leaves"},
		{name: "blank leaf count", mutate: func(f []string) { f[3] = "" }, want: ErrValue, field: "mlc_leaves"},
		{name: "negative control point number", mutate: func(f []string) { f[5] = "-1" }, want: ErrValue, field: "control_pt_number"},
		{name: "blank leaf inside count", mutate: func(f []string) { f[40] = "" }, want: ErrValue, field: "mlc_a[5]"},
		{name: "bad leaf in bank b", mutate: func(f []string) { f[150] = "x" }, want: ErrValue, field: "mlc_b[15]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := controlPointFields(30)
			tt.mutate(fields)
			_, err := DecodeControlPoint(fields)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestDecodeMultiLeafCollimator(t *testing.T) {
	fields := blankRecord("MLC_DEF", 105)
	fields[1] = "F1"
	fields[2] = "MLC-120"
	fields[3] = "3"
	for i := range 50 {
		fields[4+i] = itoa(-i)
		fields[54+i] = itoa(i)
	}
	mlc, err := DecodeMultiLeafCollimator(fields)
	if err != nil {
		t.Fatalf("DecodeMultiLeafCollimator: %v", err)
	}
	if !slices.Equal(mlc.MLCA, []float64{0, -1, -2}) || !slices.Equal(mlc.MLCB, []float64{0, 1, 2}) {
		t.Fatalf("banks = %v / %v", mlc.MLCA, mlc.MLCB)
	}

	fields[3] = "51"
	_, err = DecodeMultiLeafCollimator(fields)
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if ce.Count != 51 || ce.Capacity != 50 {
		t.Fatalf("unexpected capacity error %+v", ce)
	}
}

func TestDecodeMLCShapeInterleaved(t *testing.T) {
	fields := blankRecord("MLC_SHAPE_DEF", 325)
	fields[1] = "F1"
	fields[2] = "0"
	fields[3] = "3"
	for i := range 160 {
		fields[4+2*i] = itoa(i)
		fields[5+2*i] = itoa(1000 + i)
	}
	shape, err := DecodeMLCShape(fields)
	if err != nil {
		t.Fatalf("DecodeMLCShape: %v", err)
	}
	if !slices.Equal(shape.X, []float64{0, 1, 2}) || !slices.Equal(shape.Y, []float64{1000, 1001, 1002}) {
		t.Fatalf("shape = %v / %v", shape.X, shape.Y)
	}

	fields[3] = "160"
	shape, err = DecodeMLCShape(fields)
	if err != nil {
		t.Fatalf("full shape: %v", err)
	}
	if len(shape.X) != 160 || shape.Y[159] != 1159 {
		t.Fatalf("full shape decoded %d points, last y %v", len(shape.X), shape.Y[159])
	}

	fields[3] = "161"
	if _, err := DecodeMLCShape(fields); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestDecodeDoseTracking(t *testing.T) {
	fields := blankRecord("DOSE_DEF", 26)
	fields[1] = "PTV"
	fields[2] = "10"
	fields[3] = "F1"
	fields[4] = "0.5"
	fields[5] = "F2"
	fields[6] = ""
	fields[23] = "180"
	fields[24] = "-2"
	dt, err := DecodeDoseTracking(fields)
	if err != nil {
		t.Fatalf("DecodeDoseTracking: %v", err)
	}
	if len(dt.FieldIDs) != 10 || len(dt.RegCoeffs) != 10 {
		t.Fatalf("groups = %d/%d, want 10", len(dt.FieldIDs), len(dt.RegCoeffs))
	}
	if dt.FieldIDs[0] != "F1" || dt.FieldIDs[1] != "F2" || dt.FieldIDs[9] != "" {
		t.Fatalf("field ids = %q", dt.FieldIDs)
	}
	if dt.RegCoeffs[0] == nil || *dt.RegCoeffs[0] != 0.5 || dt.RegCoeffs[1] != nil {
		t.Fatalf("unexpected coefficients")
	}
	if dt.ActualDose == nil || *dt.ActualDose != 180 {
		t.Fatalf("ActualDose = %v", dt.ActualDose)
	}
	if dt.ActualFractions != nil {
		t.Fatalf("negative ActualFractions should be absent")
	}
}

func TestDescribeControlPoint(t *testing.T) {
	info, ok := Describe("CONTROL_PT_DEF")
	if !ok {
		t.Fatal("CONTROL_PT_DEF not described")
	}
	if info.Singular {
		t.Fatal("CONTROL_PT_DEF should be repeatable")
	}
	if len(info.Regions) != 1 {
		t.Fatalf("regions = %d", len(info.Regions))
	}
	rg := info.Regions[0]
	if rg.Layout != "banks" || rg.BaseA != 35 || rg.BaseB != 135 || rg.Capacity != 100 || rg.CountField != "mlc_leaves" {
		t.Fatalf("unexpected region %+v", rg)
	}
	if len(info.Slots) != 36 {
		t.Fatalf("slots = %d, want 36", len(info.Slots))
	}
	if _, ok := Describe("NOPE"); ok {
		t.Fatal("unknown keyword described")
	}
	plan, _ := Describe("PLAN_DEF")
	if !plan.Singular {
		t.Fatal("PLAN_DEF should be singular")
	}
}

func TestNewSchemaPanicsOnGap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undeclared position")
		}
	}()
	type rec struct{ CRC int32 }
	newSchema("GAP", 3, []slot[rec]{
		tag[rec](),
		checksum(2, func(r *rec) *int32 { return &r.CRC }),
	})
}

func TestNewSchemaPanicsOnOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for overlapping positions")
		}
	}()
	type rec struct {
		A   string
		CRC int32
	}
	newSchema("OVERLAP", 2, []slot[rec]{
		tag[rec](),
		text(0, "a", func(r *rec) *string { return &r.A }),
		checksum(1, func(r *rec) *int32 { return &r.CRC }),
	})
}
