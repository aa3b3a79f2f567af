package main

import (
	"encoding/json"
	"testing"

	"rtpkit/internal/planstore"
	"rtpkit/internal/testsupport"
)

func TestImportListShowRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"import", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "[OK] imported as")

	out, _, err = runCLI(t, []string{"import", env.planPath}, env.configPath)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	requireContains(t, out, "[WARN] already archived")

	out, _, err = runCLI(t, []string{"plans", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("plans list: %v", err)
	}
	var entries []planstore.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("unmarshal list: %v\n%s", err, out)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	id := entries[0].ID

	out, _, err = runCLI(t, []string{"plans", "show", id[:8]}, env.configPath)
	if err != nil {
		t.Fatalf("plans show: %v", err)
	}
	requireContains(t, out, id)
	requireContains(t, out, "BREAST_L")

	out, _, err = runCLI(t, []string{"plans", "remove", id}, env.configPath)
	if err != nil {
		t.Fatalf("plans remove: %v", err)
	}
	requireContains(t, out, "[OK] removed")

	out, _, err = runCLI(t, []string{"plans", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("plans list after remove: %v", err)
	}
	requireContains(t, out, "No archived plans")
}

func TestImportReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := testsupport.WriteRTP(t, []string{testsupport.Line(testsupport.Fields("PLAN_DEF", 3, nil))}, "\n")

	out, _, err := runCLI(t, []string{"import", env.planPath, bad}, env.configPath)
	if err == nil {
		t.Fatal("expected import failure")
	}
	requireContains(t, out, "[OK]")
	requireContains(t, out, "[ERROR]")
}

func TestPlansRequireEnabledStore(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Store.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	if _, _, err := runCLI(t, []string{"plans", "list"}, env.configPath); err == nil {
		t.Fatal("expected error when store disabled")
	}
}
