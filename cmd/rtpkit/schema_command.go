package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rtpkit/internal/rtp"
)

func newSchemaCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "schema [KEYWORD]",
		Short:       "Show the record layouts the decoder understands",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				infos := rtp.Schemas()
				if jsonOut {
					return writeJSON(cmd, infos)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderSchemaIndex(infos))
				return nil
			}

			keyword := strings.ToUpper(strings.TrimSpace(args[0]))
			info, ok := rtp.Describe(keyword)
			if !ok {
				return fmt.Errorf("unknown record keyword %q (known: %s)", keyword, strings.Join(rtp.Keywords(), ", "))
			}
			if jsonOut {
				return writeJSON(cmd, info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSchemaSlots(info))
			if len(info.Regions) > 0 {
				fmt.Fprintln(out, renderSchemaRegions(info))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderSchemaIndex(infos []rtp.SchemaInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Keyword,
			strconv.Itoa(info.Length),
			strconv.Itoa(len(info.Slots)),
			strconv.Itoa(len(info.Regions)),
			yesNo(info.Singular),
		})
	}
	return renderTable("Record kinds", []string{"Keyword", "Fields", "Slots", "Regions", "Singular"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft})
}

func renderSchemaSlots(info rtp.SchemaInfo) string {
	rows := make([][]string, 0, len(info.Slots))
	for _, s := range info.Slots {
		rows = append(rows, []string{strconv.Itoa(s.Position), s.Name, s.Kind})
	}
	title := fmt.Sprintf("%s (%d fields)", info.Keyword, info.Length)
	return renderTable(title, []string{"Pos", "Name", "Kind"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func renderSchemaRegions(info rtp.SchemaInfo) string {
	rows := make([][]string, 0, len(info.Regions))
	for _, r := range info.Regions {
		count := r.CountField
		if count == "" {
			count = "all"
		}
		rows = append(rows, []string{
			r.NameA + " / " + r.NameB,
			r.Layout,
			count,
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.BaseA),
			strconv.Itoa(r.BaseB),
			strconv.Itoa(r.Stride),
		})
	}
	return renderTable("Regions", []string{"Arrays", "Layout", "Count", "Capacity", "Base A", "Base B", "Stride"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight})
}
