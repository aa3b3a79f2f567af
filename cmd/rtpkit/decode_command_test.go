package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"rtpkit/internal/rtp"
	"rtpkit/internal/testsupport"
)

func TestDecodeSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"decode", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	requireContains(t, out, "PAT001")
	requireContains(t, out, "BREAST_L")
	requireContains(t, out, "Doe")
	requireContains(t, out, "CONTROL_PT_DEF")
}

func TestDecodeJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"decode", "--json", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("decode --json: %v", err)
	}
	var payload decodeOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if payload.Plan == nil || payload.Plan.Plan.PatientID != "PAT001" {
		t.Fatalf("unexpected plan: %+v", payload.Plan)
	}
	if len(payload.Plan.ControlPoints) != 3 {
		t.Fatalf("control points = %d, want 3", len(payload.Plan.ControlPoints))
	}
	if payload.Source.SHA256 == "" || payload.Source.Records["FIELD_DEF"] != 2 {
		t.Fatalf("unexpected source info: %+v", payload.Source)
	}
}

func TestDecodeStrictFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	lines := append(testsupport.SamplePlan(), testsupport.PlanLine("PAT002", "ROE", "OTHER"))
	path := testsupport.WriteRTP(t, lines, "\n")

	if _, _, err := runCLI(t, []string{"decode", path}, env.configPath); err != nil {
		t.Fatalf("non-strict decode: %v", err)
	}

	_, _, err := runCLI(t, []string{"decode", "--strict", path}, env.configPath)
	if !errors.Is(err, rtp.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	msg := describeError(err)
	requireContains(t, msg, "line 8")
	requireContains(t, msg, "duplicate error")
}

func TestDecodeReportsLineAndKind(t *testing.T) {
	env := setupCLITestEnv(t)
	lines := testsupport.SamplePlan()
	lines[2] = testsupport.Line(testsupport.Fields("FIELD_DEF", 10, nil))
	path := testsupport.WriteRTP(t, lines, "\n")

	_, _, err := runCLI(t, []string{"decode", path}, env.configPath)
	if err == nil {
		t.Fatal("expected arity error")
	}
	msg := describeError(err)
	if !strings.HasPrefix(msg, "error: line 3: arity error") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestFieldsAndControlPoints(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"fields", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	requireContains(t, out, "Fields (2)")
	requireContains(t, out, "LAO")
	requireContains(t, out, "RPO")

	out, _, err = runCLI(t, []string{"control-points", "--field", "1", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("control-points: %v", err)
	}
	requireContains(t, out, "Control points (2)")
	requireContains(t, out, "-3..0 (4)")

	if _, _, err := runCLI(t, []string{"control-points", "--field", "9", env.planPath}, env.configPath); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"schema"}, "")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	requireContains(t, out, "MLC_SHAPE_DEF")

	out, _, err = runCLI(t, []string{"schema", "control_pt_def"}, "")
	if err != nil {
		t.Fatalf("schema CONTROL_PT_DEF: %v", err)
	}
	requireContains(t, out, "CONTROL_PT_DEF (236 fields)")
	requireContains(t, out, "mlc_leaves")

	if _, _, err := runCLI(t, []string{"schema", "NOPE"}, ""); err == nil {
		t.Fatal("expected unknown keyword error")
	}
}
