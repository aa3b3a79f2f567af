package planstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rtpkit/internal/logging"
	"rtpkit/internal/rtp"
	"rtpkit/internal/rtpfile"
)

var (
	// ErrAlreadyImported is returned with the existing entry when a file with
	// the same content hash is imported again.
	ErrAlreadyImported = errors.New("plan already imported")
	// ErrAmbiguousID is returned when an ID prefix matches more than one plan.
	ErrAmbiguousID = errors.New("plan id prefix is ambiguous")
)

// Entry is the summary row of an archived plan.
type Entry struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patient_id"`
	PatientName       string    `json:"patient_name"`
	PlanID            string    `json:"plan_id"`
	PlanDate          string    `json:"plan_date"`
	CourseID          string    `json:"course_id"`
	FieldCount        int       `json:"field_count"`
	ControlPointCount int       `json:"control_point_count"`
	RecordCount       int       `json:"record_count"`
	SourcePath        string    `json:"source_path,omitempty"`
	SHA256            string    `json:"sha256"`
	Bytes             int64     `json:"bytes"`
	Encoding          string    `json:"encoding"`
	ImportedAt        time.Time `json:"imported_at"`
}

// ListOptions filters List results.
type ListOptions struct {
	PatientID string
	Limit     int
}

const entryColumns = "id, patient_id, patient_name, plan_id, plan_date, course_id, field_count, control_point_count, record_count, source_path, content_sha256, content_bytes, encoding, imported_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry       Entry
		sourcePath  sql.NullString
		importedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.PatientID,
		&entry.PatientName,
		&entry.PlanID,
		&entry.PlanDate,
		&entry.CourseID,
		&entry.FieldCount,
		&entry.ControlPointCount,
		&entry.RecordCount,
		&sourcePath,
		&entry.SHA256,
		&entry.Bytes,
		&entry.Encoding,
		&importedRaw,
	); err != nil {
		return nil, err
	}
	entry.SourcePath = sourcePath.String
	if ts, err := time.Parse(time.RFC3339Nano, importedRaw); err == nil {
		entry.ImportedAt = ts
	}
	return &entry, nil
}

func patientName(p rtp.Plan) string {
	parts := make([]string, 0, 2)
	if last := strings.TrimSpace(p.PatientLastName); last != "" {
		parts = append(parts, last)
	}
	if first := strings.TrimSpace(p.PatientFirstName); first != "" {
		parts = append(parts, first)
	}
	return strings.Join(parts, ", ")
}

// Import archives plan. When the same content was imported before, the
// existing entry is returned together with ErrAlreadyImported.
func (s *Store) Import(ctx context.Context, plan *rtp.TreatmentPlan, info rtpfile.Info) (*Entry, error) {
	if plan == nil {
		return nil, errors.New("import: plan is nil")
	}
	if info.SHA256 == "" {
		return nil, errors.New("import: source hash is missing")
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}

	var entry *Entry
	err = s.withLock(ctx, func() error {
		existing, err := s.findByHash(ctx, info.SHA256)
		if err != nil {
			return err
		}
		if existing != nil {
			entry = existing
			return ErrAlreadyImported
		}

		entry = &Entry{
			ID:                uuid.NewString(),
			PatientID:         plan.Plan.PatientID,
			PatientName:       patientName(plan.Plan),
			PlanID:            plan.Plan.PlanID,
			PlanDate:          plan.Plan.PlanDate,
			CourseID:          plan.Plan.CourseID,
			FieldCount:        len(plan.Fields),
			ControlPointCount: len(plan.ControlPoints),
			RecordCount:       info.RecordCount(),
			SourcePath:        info.Path,
			SHA256:            info.SHA256,
			Bytes:             info.Bytes,
			Encoding:          info.Encoding,
			ImportedAt:        time.Now().UTC(),
		}
		_, err = s.execWithRetry(ctx,
			`INSERT INTO plans (`+entryColumns+`, plan_json) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID,
			entry.PatientID,
			entry.PatientName,
			entry.PlanID,
			entry.PlanDate,
			entry.CourseID,
			entry.FieldCount,
			entry.ControlPointCount,
			entry.RecordCount,
			nullableString(entry.SourcePath),
			entry.SHA256,
			entry.Bytes,
			entry.Encoding,
			entry.ImportedAt.Format(time.RFC3339Nano),
			string(payload),
		)
		if err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}
		return nil
	})
	if errors.Is(err, ErrAlreadyImported) {
		return entry, err
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("plan imported",
		logging.String(logging.FieldPlanID, entry.ID),
		logging.String("patient_id", entry.PatientID),
		logging.Int("fields", entry.FieldCount),
		logging.Int("control_points", entry.ControlPointCount),
		logging.String(logging.FieldEventType, "plan_imported"),
	)
	return entry, nil
}

func (s *Store) findByHash(ctx context.Context, sum string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM plans WHERE content_sha256 = ?`, sum)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by hash: %w", err)
	}
	return entry, nil
}

// resolveID expands a unique ID prefix to the full ID. It returns "" when
// nothing matches.
func (s *Store) resolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM plans WHERE substr(id, 1, length(?)) = ? LIMIT 2`, prefix, prefix)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolve id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	switch len(ids) {
	case 0:
		return "", nil
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// Get returns the entry and decoded plan for id or a unique prefix of it.
// A missing plan yields nil, nil, nil.
func (s *Store) Get(ctx context.Context, id string) (*Entry, *rtp.TreatmentPlan, error) {
	full, err := s.resolveID(ctx, id)
	if err != nil || full == "" {
		return nil, nil, err
	}
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+`, plan_json FROM plans WHERE id = ?`, full)

	var payload string
	entry, err := scanEntry(rowWithPayload{row: row, payload: &payload})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get plan: %w", err)
	}
	var plan rtp.TreatmentPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, nil, fmt.Errorf("decode stored plan %s: %w", entry.ID, err)
	}
	return entry, &plan, nil
}

// rowWithPayload appends the plan_json column to a scanEntry scan.
type rowWithPayload struct {
	row     *sql.Row
	payload *string
}

func (r rowWithPayload) Scan(dest ...any) error {
	return r.row.Scan(append(dest, r.payload)...)
}

// List returns archived plans, most recent first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM plans`
	var args []any
	if opts.PatientID != "" {
		query += ` WHERE patient_id = ?`
		args = append(args, opts.PatientID)
	}
	query += ` ORDER BY imported_at DESC, id`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return entries, nil
}

// Remove deletes the plan with id or a unique prefix of it and reports
// whether anything was removed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.withLock(ctx, func() error {
		full, err := s.resolveID(ctx, id)
		if err != nil || full == "" {
			return err
		}
		res, err := s.execWithRetry(ctx, `DELETE FROM plans WHERE id = ?`, full)
		if err != nil {
			return fmt.Errorf("remove plan: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("remove plan: %w", err)
		}
		removed = n > 0
		if removed {
			s.logger.Info("plan removed",
				logging.String(logging.FieldPlanID, full),
				logging.String(logging.FieldEventType, "plan_removed"),
			)
		}
		return nil
	})
	return removed, err
}

// Count returns the number of archived plans.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM plans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plans: %w", err)
	}
	return n, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
