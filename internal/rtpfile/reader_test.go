package rtpfile_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"rtpkit/internal/rtp"
	"rtpkit/internal/rtpfile"
	"rtpkit/internal/testsupport"
)

func TestOpenSamplePlan(t *testing.T) {
	for _, sep := range []string{"\n", "\r\n", "\r"} {
		t.Run(strings.ReplaceAll(strings.ReplaceAll(sep, "\r", "CR"), "\n", "LF"), func(t *testing.T) {
			path := testsupport.WriteRTP(t, testsupport.SamplePlan(), sep)

			plan, info, err := rtpfile.Open(context.Background(), path, rtpfile.Options{})
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if plan.Plan.PatientID != "PAT001" || plan.Prescription.NumberOfFields != 2 {
				t.Fatalf("unexpected plan header %+v / %+v", plan.Plan, plan.Prescription)
			}
			if len(plan.Fields) != 2 || len(plan.ControlPoints) != 3 {
				t.Fatalf("fields=%d control points=%d", len(plan.Fields), len(plan.ControlPoints))
			}
			if info.Lines != 7 || info.RecordCount() != 7 {
				t.Fatalf("info lines=%d records=%d", info.Lines, info.RecordCount())
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read fixture: %v", err)
			}
			sum := sha256.Sum256(raw)
			if info.SHA256 != hex.EncodeToString(sum[:]) || info.Bytes != int64(len(raw)) {
				t.Fatalf("hash/size mismatch: %s %d", info.SHA256, info.Bytes)
			}
			if info.Path != path {
				t.Fatalf("path = %q, want %q", info.Path, path)
			}
		})
	}
}

func TestReadStripsBOM(t *testing.T) {
	input := "\ufeff" + testsupport.PlanLine("P1", "X", "PL") + "\n"
	plan, _, err := rtpfile.Read(context.Background(), strings.NewReader(input), rtpfile.Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if plan.Plan.PatientID != "P1" {
		t.Fatalf("BOM not stripped; PatientID = %q", plan.Plan.PatientID)
	}
}

func TestReadLatin1(t *testing.T) {
	line := testsupport.PlanLine("P1", "Müller", "PL")
	encoded, err := charmap.ISO8859_1.NewEncoder().String(line + "\r\n")
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	plan, info, err := rtpfile.Read(context.Background(), strings.NewReader(encoded), rtpfile.Options{Encoding: "latin1"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if plan.Plan.PatientLastName != "Müller" {
		t.Fatalf("PatientLastName = %q", plan.Plan.PatientLastName)
	}
	if info.Encoding != "latin1" {
		t.Fatalf("encoding = %q", info.Encoding)
	}
}

func TestReadRejectsUnknownEncoding(t *testing.T) {
	_, _, err := rtpfile.Read(context.Background(), strings.NewReader(""), rtpfile.Options{Encoding: "ebcdic"})
	if err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestReadReportsDecodeLine(t *testing.T) {
	lines := testsupport.SamplePlan()
	lines[2] = testsupport.Line(testsupport.Fields("FIELD_DEF", 51, nil))
	_, info, err := rtpfile.Read(context.Background(), strings.NewReader(strings.Join(lines, "\n")), rtpfile.Options{})

	var lineErr *rtp.LineError
	if !errors.As(err, &lineErr) || lineErr.Line != 3 {
		t.Fatalf("expected LineError on line 3, got %v", err)
	}
	if !errors.Is(err, rtp.ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
	if info.Lines != 3 {
		t.Fatalf("info.Lines = %d", info.Lines)
	}
}

func TestReadStrictDuplicate(t *testing.T) {
	plan := testsupport.PlanLine("P1", "X", "PL")
	input := plan + "\n" + plan + "\n"
	if _, _, err := rtpfile.Read(context.Background(), strings.NewReader(input), rtpfile.Options{}); err != nil {
		t.Fatalf("lenient read failed: %v", err)
	}
	_, _, err := rtpfile.Read(context.Background(), strings.NewReader(input), rtpfile.Options{Strict: true})
	if !errors.Is(err, rtp.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	long := `"` + strings.Repeat("x", 8192) + `"`
	_, _, err := rtpfile.Read(context.Background(), strings.NewReader(long+"\n"), rtpfile.Options{MaxLineBytes: 4096})
	if !errors.Is(err, rtpfile.ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
}

func TestReadHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := rtpfile.Read(ctx, bytes.NewBufferString(strings.Join(testsupport.SamplePlan(), "\n")), rtpfile.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := rtpfile.Open(context.Background(), "/nonexistent/plan.rtp", rtpfile.Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStrict(), testsupport.WithEncoding("cp1252"))
	opts := rtpfile.OptionsFromConfig(cfg, nil)
	if !opts.Strict || opts.Encoding != "windows-1252" || opts.MaxLineBytes != cfg.Decode.MaxLineBytes {
		t.Fatalf("unexpected options %+v", opts)
	}
}
