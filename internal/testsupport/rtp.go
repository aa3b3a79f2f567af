package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Fields returns n fields with keyword at position 0, a zero checksum in the
// last position and blanks elsewhere. set assigns position/value pairs on
// top.
func Fields(keyword string, n int, set map[int]string) []string {
	fields := make([]string, n)
	fields[0] = keyword
	fields[n-1] = "0"
	for pos, value := range set {
		fields[pos] = value
	}
	return fields
}

// Line joins fields into one quoted RTP line.
func Line(fields []string) string {
	return `"` + strings.Join(fields, `","`) + `"`
}

// PlanLine returns a PLAN_DEF line for the given patient and plan.
func PlanLine(patientID, lastName, planID string) string {
	return Line(Fields("PLAN_DEF", 28, map[int]string{1: patientID, 2: lastName, 5: planID, 6: "20240102", 8: "C1"}))
}

// PrescriptionLine returns an RX_DEF line announcing fieldCount fields.
func PrescriptionLine(site string, fieldCount int) string {
	return Line(Fields("RX_DEF", 13, map[int]string{1: "C1", 2: site, 7: "60", 8: "2", 11: itoa(fieldCount)}))
}

// FieldLine returns a FIELD_DEF line.
func FieldLine(site, fieldID, name string) string {
	return Line(Fields("FIELD_DEF", 52, map[int]string{1: site, 2: name, 3: fieldID, 5: "2", 6: "120.5", 8: "TB1", 10: "Xrays", 11: "6"}))
}

// ControlPointLine returns a CONTROL_PT_DEF line with leaves populated leaf
// pairs; bank A holds -i and bank B holds i.
func ControlPointLine(fieldID string, number, total, leaves int) string {
	set := map[int]string{1: fieldID, 2: "NDS-120", 3: itoa(leaves), 4: itoa(total), 5: itoa(number), 7: "0.5", 13: "180", 14: "CW"}
	for i := range leaves {
		set[35+i] = itoa(-i)
		set[135+i] = itoa(i)
	}
	return Line(Fields("CONTROL_PT_DEF", 236, set))
}

// SamplePlan returns a small but complete plan file as lines.
func SamplePlan() []string {
	return []string{
		PlanLine("PAT001", "DOE", "BREAST_L"),
		PrescriptionLine("Breast", 2),
		FieldLine("Breast", "1", "LAO"),
		ControlPointLine("1", 0, 2, 4),
		ControlPointLine("1", 1, 2, 4),
		FieldLine("Breast", "2", "RPO"),
		ControlPointLine("2", 0, 1, 4),
	}
}

// WriteRTP writes lines joined by sep to a new file under t.TempDir.
func WriteRTP(t testing.TB, lines []string, sep string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.rtp")
	if err := os.WriteFile(path, []byte(strings.Join(lines, sep)+sep), 0o644); err != nil {
		t.Fatalf("write rtp fixture: %v", err)
	}
	return path
}

func itoa(i int) string { return strconv.Itoa(i) }
