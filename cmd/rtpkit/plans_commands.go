package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rtpkit/internal/logging"
	"rtpkit/internal/planstore"
	"rtpkit/internal/rtp"
)

// importResult is the --json shape of one import outcome.
type importResult struct {
	Path    string           `json:"path"`
	Outcome string           `json:"outcome"`
	Entry   *planstore.Entry `json:"entry,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var flags decodeFlags

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Decode RTP files and archive them in the plan store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			colorize := !flags.json && shouldColorize(cmd.OutOrStdout())

			var results []importResult
			failed := 0
			err = ctx.withStore(runCtx, logger, func(store *planstore.Store) error {
				for _, path := range args {
					result := importResult{Path: path}
					plan, info, err := ctx.decodeFile(runCtx, logger, path, flags.overrides())
					if err == nil {
						result.Entry, err = store.Import(runCtx, plan, info)
					}
					kind := statusOK
					switch {
					case errors.Is(err, planstore.ErrAlreadyImported):
						result.Outcome = "duplicate"
						kind = statusWarn
					case err != nil:
						result.Outcome = "failed"
						result.Error = strings.TrimPrefix(describeError(err), "error: ")
						kind = statusError
						failed++
					default:
						result.Outcome = "imported"
					}
					results = append(results, result)
					if !flags.json {
						fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(filepath.Base(path), kind, importMessage(result), colorize))
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if flags.json {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to import", failed, len(args))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func importMessage(result importResult) string {
	switch result.Outcome {
	case "imported":
		return "imported as " + shortID(result.Entry.ID)
	case "duplicate":
		return "already archived as " + shortID(result.Entry.ID)
	default:
		return result.Error
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newPlansCommand(ctx *commandContext) *cobra.Command {
	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Inspect and manage archived plans",
	}
	plansCmd.AddCommand(newPlansListCommand(ctx))
	plansCmd.AddCommand(newPlansShowCommand(ctx))
	plansCmd.AddCommand(newPlansRemoveCommand(ctx))
	return plansCmd
}

func newPlansListCommand(ctx *commandContext) *cobra.Command {
	var opts planstore.ListOptions
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			return ctx.withStore(runCtx, logger, func(store *planstore.Store) error {
				entries, err := store.List(runCtx, opts)
				if err != nil {
					return err
				}
				if jsonOut {
					if entries == nil {
						entries = []planstore.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No archived plans")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderEntries(entries))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&opts.PatientID, "patient", "", "Only list plans of this patient ID")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of plans to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderEntries(entries []planstore.Entry) string {
	headers := []string{"ID", "Patient ID", "Patient", "Plan", "Course", "Fields", "CPs", "Imported"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			shortID(e.ID),
			formatText(e.PatientID),
			formatText(e.PatientName),
			formatText(e.PlanID),
			formatText(e.CourseID),
			strconv.Itoa(e.FieldCount),
			strconv.Itoa(e.ControlPointCount),
			e.ImportedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return renderTable("", headers, rows, aligns)
}

func newPlansShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an archived plan (ID or unique prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			return ctx.withStore(runCtx, logger, func(store *planstore.Store) error {
				entry, plan, err := store.Get(runCtx, args[0])
				if err != nil {
					return err
				}
				if entry == nil {
					return fmt.Errorf("plan %s not found", args[0])
				}
				if jsonOut {
					return writeJSON(cmd, struct {
						Entry *planstore.Entry   `json:"entry"`
						Plan  *rtp.TreatmentPlan `json:"plan"`
					}{entry, plan})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:       %s\n", entry.ID)
				fmt.Fprintf(out, "Source:   %s\n", formatText(entry.SourcePath))
				fmt.Fprintf(out, "SHA-256:  %s\n", entry.SHA256)
				fmt.Fprintf(out, "Imported: %s\n", entry.ImportedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Fprintln(out, renderPlanSummary(plan))
				fmt.Fprintln(out, renderFields(plan))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newPlansRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>...",
		Aliases: []string{"rm"},
		Short:   "Remove archived plans (ID or unique prefix)",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			colorize := shouldColorize(cmd.OutOrStdout())
			return ctx.withStore(runCtx, logger, func(store *planstore.Store) error {
				for _, id := range args {
					removed, err := store.Remove(runCtx, id)
					switch {
					case err != nil:
						logging.WarnWithContext(logging.WithContext(runCtx, logger), "plan removal failed", "plan_remove_failed",
							logging.String(logging.FieldPlanID, id),
							logging.Error(err),
						)
						fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(id, statusError, err.Error(), colorize))
					case removed:
						fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(id, statusOK, "removed", colorize))
					default:
						fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(id, statusWarn, "not found", colorize))
					}
				}
				return nil
			})
		},
	}
}
