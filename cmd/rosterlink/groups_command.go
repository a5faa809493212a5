package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rosterlink/internal/config"
	"rosterlink/internal/logging"
	"rosterlink/internal/match"
	"rosterlink/internal/report"
	"rosterlink/internal/roster"
)

type groupsSummary struct {
	SourceRecords int    `json:"source_records"`
	TargetRecords int    `json:"target_records"`
	Groups        int    `json:"common_groups"`
	CrossDataset  int    `json:"cross_dataset_groups"`
	GroupsPath    string `json:"groups_report"`
}

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "groups <source.json> <target.json>",
		Short: "Report identity groups shared by key across both datasets",
		Long: `Groups clusters every record from both datasets by its linking keys
(shared identifier or normalized name) and reports each co-reference
group that covers more than one record, writing common_players.json
to the output directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			outputDir := cfg.Paths.OutputDir
			if cmd.Flags().Changed("output") {
				if outputDir, err = config.ExpandPath(outputFlag); err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
			}

			source, err := roster.Load(args[0])
			if err != nil {
				return fmt.Errorf("load source dataset: %w", err)
			}
			target, err := roster.Load(args[1])
			if err != nil {
				return fmt.Errorf("load target dataset: %w", err)
			}

			logger.Info("datasets loaded",
				logging.String("component", "groups"),
				logging.Int("source_records", len(source.Records)),
				logging.Int("target_records", len(target.Records)))

			groups := match.FindCommonGroups(source.Records, target.Records)

			crossDataset := 0
			for _, group := range groups {
				if len(group.PresentIn) > 1 {
					crossDataset++
				}
			}
			logger.Info("common groups built",
				logging.String("component", "groups"),
				logging.Int("groups", len(groups)),
				logging.Int("cross_dataset", crossDataset))

			writer, err := report.NewWriter(outputDir, logger)
			if err != nil {
				return err
			}
			defer writer.Close()

			path, err := writer.WriteCommonGroups(groups)
			if err != nil {
				return err
			}

			summary := groupsSummary{
				SourceRecords: len(source.Records),
				TargetRecords: len(target.Records),
				Groups:        len(groups),
				CrossDataset:  crossDataset,
				GroupsPath:    path,
			}
			if jsonFlag {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd, []string{"Metric", "Value"}, [][]string{
				{"Source records", strconv.Itoa(summary.SourceRecords)},
				{"Target records", strconv.Itoa(summary.TargetRecords)},
				{"Common groups", strconv.Itoa(summary.Groups)},
				{"Cross-dataset groups", strconv.Itoa(summary.CrossDataset)},
				{"Groups report", summary.GroupsPath},
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for report artifacts (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the summary as JSON")
	return cmd
}
