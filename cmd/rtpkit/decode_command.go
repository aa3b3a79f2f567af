package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"rtpkit/internal/rtp"
	"rtpkit/internal/rtpfile"
)

type decodeFlags struct {
	json     bool
	strict   bool
	encoding string
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject repeated singular records such as PLAN_DEF")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Input character set (utf-8, latin1, windows-1252)")
}

func (f *decodeFlags) overrides() decodeOverrides {
	return decodeOverrides{strict: f.strict, encoding: f.encoding}
}

// decodeOutput is the --json shape of decode.
type decodeOutput struct {
	Source rtpfile.Info      `json:"source"`
	Plan   *rtp.TreatmentPlan `json:"plan"`
}

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var flags decodeFlags

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode an RTP file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			plan, info, err := ctx.decodeFile(runCtx, logger, args[0], flags.overrides())
			if err != nil {
				return err
			}
			if flags.json {
				return writeJSON(cmd, decodeOutput{Source: info, Plan: plan})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderPlanSummary(plan))
			fmt.Fprintln(out, renderRecordCounts(info))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func renderPlanSummary(plan *rtp.TreatmentPlan) string {
	rx := plan.Prescription
	rows := [][]string{
		{"Patient", patientDisplayName(plan.Plan)},
		{"Patient ID", formatText(plan.Plan.PatientID)},
		{"Plan", formatText(plan.Plan.PlanID)},
		{"Course", formatText(plan.Plan.CourseID)},
		{"Plan date", formatText(plan.Plan.PlanDate)},
		{"Exported by", formatText(joinNonEmpty(plan.Plan.RTPMfg, plan.Plan.RTPModel, plan.Plan.RTPVersion))},
		{"Rx site", formatText(rx.RxSiteName)},
		{"Rx dose", fmt.Sprintf("%s total / %s per fraction", formatFloat(rx.DoseTotal), formatFloat(rx.DoseTreatment))},
		{"Rx fields", strconv.FormatUint(uint64(rx.NumberOfFields), 10)},
		{"Fields", strconv.Itoa(len(plan.Fields))},
		{"Control points", strconv.Itoa(len(plan.ControlPoints))},
		{"MLC definitions", strconv.Itoa(len(plan.MLCs))},
		{"MLC shapes", strconv.Itoa(len(plan.MLCShapes))},
		{"Dose tracking", strconv.Itoa(len(plan.DoseTrackings))},
	}
	return renderTable("Plan", []string{"Item", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func renderRecordCounts(info rtpfile.Info) string {
	var rows [][]string
	for _, keyword := range slices.Sorted(maps.Keys(info.Records)) {
		rows = append(rows, []string{keyword, strconv.Itoa(info.Records[keyword]), ""})
	}
	for _, keyword := range slices.Sorted(maps.Keys(info.Unknown)) {
		rows = append(rows, []string{keyword, strconv.Itoa(info.Unknown[keyword]), "unknown, ignored"})
	}
	if info.Skipped > 0 {
		rows = append(rows, []string{"(blank or unquoted)", strconv.Itoa(info.Skipped), "skipped"})
	}
	title := fmt.Sprintf("Records (%d lines, %s)", info.Lines, info.Encoding)
	return renderTable(title, []string{"Keyword", "Count", "Note"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft})
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
