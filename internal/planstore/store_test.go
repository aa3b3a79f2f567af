package planstore_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"rtpkit/internal/logging"
	"rtpkit/internal/planstore"
	"rtpkit/internal/rtp"
	"rtpkit/internal/rtpfile"
	"rtpkit/internal/testsupport"
)

func decodeSample(t *testing.T, lines []string) (*rtp.TreatmentPlan, rtpfile.Info) {
	t.Helper()
	path := testsupport.WriteRTP(t, lines, "\r\n")
	plan, info, err := rtpfile.Open(context.Background(), path, rtpfile.Options{})
	if err != nil {
		t.Fatalf("rtpfile.Open: %v", err)
	}
	return plan, info
}

func TestImportAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan, info := decodeSample(t, testsupport.SamplePlan())
	entry, err := store.Import(ctx, plan, info)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if entry.FieldCount != 2 || entry.ControlPointCount != 3 {
		t.Fatalf("unexpected counts: fields=%d cps=%d", entry.FieldCount, entry.ControlPointCount)
	}
	if entry.PatientID != plan.Plan.PatientID {
		t.Fatalf("patient id = %q, want %q", entry.PatientID, plan.Plan.PatientID)
	}
	if entry.SHA256 != info.SHA256 {
		t.Fatalf("sha mismatch")
	}

	got, stored, err := store.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || stored == nil {
		t.Fatal("expected stored plan")
	}
	if got.ID != entry.ID {
		t.Fatalf("got id %q, want %q", got.ID, entry.ID)
	}
	if len(stored.ControlPoints) != len(plan.ControlPoints) {
		t.Fatalf("stored control points = %d, want %d", len(stored.ControlPoints), len(plan.ControlPoints))
	}
	if len(stored.ControlPointsFor("1")) != 2 {
		t.Fatalf("expected 2 control points for field 1")
	}
	if got.ImportedAt.IsZero() {
		t.Fatal("imported_at not round-tripped")
	}
}

func TestImportDuplicateContent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan, info := decodeSample(t, testsupport.SamplePlan())
	first, err := store.Import(ctx, plan, info)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	second, err := store.Import(ctx, plan, info)
	if !errors.Is(err, planstore.ErrAlreadyImported) {
		t.Fatalf("expected ErrAlreadyImported, got %v", err)
	}
	if second == nil || second.ID != first.ID {
		t.Fatalf("expected existing entry %q, got %+v", first.ID, second)
	}
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestImportRejectsMissingInput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.Import(context.Background(), nil, rtpfile.Info{SHA256: "x"}); err == nil {
		t.Fatal("expected error for nil plan")
	}
	if _, err := store.Import(context.Background(), &rtp.TreatmentPlan{}, rtpfile.Info{}); err == nil {
		t.Fatal("expected error for missing hash")
	}
}

func TestListFiltersAndLimits(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	imports := []struct{ patient, planID string }{
		{"P1", "PLAN-A"},
		{"P2", "PLAN-B"},
		{"P1", "PLAN-C"},
	}
	for _, imp := range imports {
		lines := []string{
			testsupport.PlanLine(imp.patient, "Doe", imp.planID),
			testsupport.PrescriptionLine("Site", 1),
			testsupport.FieldLine("Site", "F1", "Field 1"),
		}
		plan, info := decodeSample(t, lines)
		if _, err := store.Import(ctx, plan, info); err != nil {
			t.Fatalf("Import %s: %v", imp.planID, err)
		}
	}

	all, err := store.List(ctx, planstore.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ImportedAt.After(all[i-1].ImportedAt) {
			t.Fatalf("entries not sorted newest first: %v", all)
		}
	}

	p2, err := store.List(ctx, planstore.ListOptions{PatientID: "P2"})
	if err != nil {
		t.Fatalf("List P2: %v", err)
	}
	if len(p2) != 1 || p2[0].PatientID != "P2" {
		t.Fatalf("unexpected P2 entries: %+v", p2)
	}

	limited, err := store.List(ctx, planstore.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %d entries", len(limited))
	}
}

func TestGetByPrefixAndMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan, info := decodeSample(t, testsupport.SamplePlan())
	entry, err := store.Import(ctx, plan, info)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, _, err := store.Get(ctx, strings.ToUpper(entry.ID[:8]))
	if err != nil {
		t.Fatalf("Get prefix: %v", err)
	}
	if got == nil || got.ID != entry.ID {
		t.Fatalf("prefix lookup returned %+v", got)
	}

	missing, missingPlan, err := store.Get(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil || missingPlan != nil {
		t.Fatal("expected nil for missing plan")
	}

	empty, _, err := store.Get(ctx, "  ")
	if err != nil || empty != nil {
		t.Fatalf("blank id: entry=%v err=%v", empty, err)
	}
}

func TestPrefixIsMatchedLiterally(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan, info := decodeSample(t, testsupport.SamplePlan())
	if _, err := store.Import(ctx, plan, info); err != nil {
		t.Fatalf("Import: %v", err)
	}

	for _, prefix := range []string{"%", "_", "%%", "____"} {
		entry, _, err := store.Get(ctx, prefix)
		if err != nil {
			t.Fatalf("Get(%q): %v", prefix, err)
		}
		if entry != nil {
			t.Fatalf("Get(%q) matched %s", prefix, entry.ID)
		}
		removed, err := store.Remove(ctx, prefix)
		if err != nil {
			t.Fatalf("Remove(%q): %v", prefix, err)
		}
		if removed {
			t.Fatalf("Remove(%q) deleted a plan", prefix)
		}
	}
	if count, _ := store.Count(ctx); count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan, info := decodeSample(t, testsupport.SamplePlan())
	entry, err := store.Import(ctx, plan, info)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	removed, err := store.Remove(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Fatal("expected plan to be removed")
	}
	removed, err = store.Remove(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Remove again: %v", err)
	}
	if removed {
		t.Fatal("second remove should report nothing removed")
	}
	if count, _ := store.Count(ctx); count != 0 {
		t.Fatalf("count = %d after remove", count)
	}
}

func TestReopenKeepsPlans(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := planstore.Open(ctx, cfg.Store.Path, logging.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	plan, info := decodeSample(t, testsupport.SamplePlan())
	if _, err := store.Import(ctx, plan, info); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	if reopened.Path() != cfg.Store.Path {
		t.Fatalf("path = %q", reopened.Path())
	}
	count, err := reopened.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d after reopen", count)
	}
}

func TestSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := planstore.Open(ctx, cfg.Store.Path, logging.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = store.Close()

	db, err := sql.Open("sqlite", cfg.Store.Path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("update version: %v", err)
	}
	_ = db.Close()

	if _, err := planstore.Open(ctx, cfg.Store.Path, logging.NewNop()); !errors.Is(err, planstore.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := planstore.Open(context.Background(), " ", logging.NewNop()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
