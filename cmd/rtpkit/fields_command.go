package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rtpkit/internal/rtp"
)

func newFieldsCommand(ctx *commandContext) *cobra.Command {
	var flags decodeFlags

	cmd := &cobra.Command{
		Use:   "fields <file>",
		Short: "List the treatment fields of an RTP file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			plan, _, err := ctx.decodeFile(runCtx, logger, args[0], flags.overrides())
			if err != nil {
				return err
			}
			if flags.json {
				return writeJSON(cmd, plan.Fields)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields(plan))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func renderFields(plan *rtp.TreatmentPlan) string {
	headers := []string{"ID", "Name", "Machine", "Modality", "Energy", "MU", "Gantry", "Collimator", "Couch", "CPs"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(plan.Fields))
	for _, f := range plan.Fields {
		rows = append(rows, []string{
			formatText(f.FieldID),
			formatText(f.FieldName),
			formatText(f.TreatmentMachine),
			formatText(f.Modality),
			formatFloat(f.Energy),
			formatFloat(f.FieldMonitorUnits),
			formatFloat(f.GantryAngle),
			formatFloat(f.CollimatorAngle),
			formatFloat(f.CouchAngle),
			strconv.Itoa(len(plan.ControlPointsFor(f.FieldID))),
		})
	}
	return renderTable(fmt.Sprintf("Fields (%d)", len(rows)), headers, rows, aligns)
}

func newControlPointsCommand(ctx *commandContext) *cobra.Command {
	var flags decodeFlags
	var fieldID string

	cmd := &cobra.Command{
		Use:     "control-points <file>",
		Aliases: []string{"cps"},
		Short:   "List control points, optionally for one field",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runContext(cmd)
			if err != nil {
				return err
			}
			plan, _, err := ctx.decodeFile(runCtx, logger, args[0], flags.overrides())
			if err != nil {
				return err
			}
			points := plan.ControlPoints
			if fieldID != "" {
				if _, ok := plan.FieldByID(fieldID); !ok {
					return fmt.Errorf("field %q not found in %s", fieldID, args[0])
				}
				points = plan.ControlPointsFor(fieldID)
			}
			if flags.json {
				return writeJSON(cmd, points)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderControlPoints(points))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&fieldID, "field", "", "Only show control points of this field ID")
	return cmd
}

func renderControlPoints(points []rtp.ControlPoint) string {
	headers := []string{"Field", "CP", "MU", "Gantry", "Dir", "Collimator", "Couch", "Leaves", "Bank A", "Bank B"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(points))
	for _, cp := range points {
		rows = append(rows, []string{
			formatText(cp.FieldID),
			fmt.Sprintf("%d/%d", cp.ControlPtNumber, cp.TotalControlPoints),
			formatFloat(cp.MonitorUnits),
			formatFloat(cp.GantryAngle),
			formatRotation(cp.GantryDir),
			formatFloat(cp.CollimatorAngle),
			formatFloat(cp.CouchAngle),
			strconv.FormatUint(uint64(cp.MLCLeaves), 10),
			leafRange(cp.MLCA),
			leafRange(cp.MLCB),
		})
	}
	return renderTable(fmt.Sprintf("Control points (%d)", len(rows)), headers, rows, aligns)
}
