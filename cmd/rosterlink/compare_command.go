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

type compareSummary struct {
	RunID            string `json:"run_id"`
	SourceRecords    int    `json:"source_records"`
	TargetRecords    int    `json:"target_records"`
	SourceSkipped    int    `json:"source_skipped,omitempty"`
	TargetSkipped    int    `json:"target_skipped,omitempty"`
	SourceDuplicates int    `json:"source_duplicate_groups"`
	TargetDuplicates int    `json:"target_duplicate_groups"`
	Missing          int    `json:"missing_players"`
	FoundDuplicates  int    `json:"found_but_duplicated"`
	DuplicatesPath   string `json:"duplicates_report"`
	MissingPath      string `json:"missing_report"`
	MissingCSVPath   string `json:"missing_csv"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var thresholdFlag float64
	var previewFlag int
	var outputFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "compare <source.json> <target.json>",
		Short: "Find source players missing from the target dataset",
		Long: `Compare loads two player datasets, flags duplicate records inside each,
and classifies every source player as found in the target (by shared
identifier, exact normalized name, or fuzzy name match) or missing.
It writes duplicate_players.json, missing_players.json, and
missing_players.csv to the output directory.`,
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

			threshold := cfg.Match.FuzzyThreshold
			if cmd.Flags().Changed("threshold") {
				threshold = thresholdFlag
			}
			if threshold <= 0 || threshold > 1 {
				return fmt.Errorf("threshold must be in (0, 1], got %v", threshold)
			}
			preview := cfg.Match.PreviewMembers
			if cmd.Flags().Changed("preview") {
				preview = previewFlag
			}
			if preview < 1 {
				return fmt.Errorf("preview must be at least 1, got %d", preview)
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
				logging.String("component", "compare"),
				logging.Int("source_records", len(source.Records)),
				logging.Int("target_records", len(target.Records)),
				logging.Int("source_skipped", source.Skipped),
				logging.Int("target_skipped", target.Skipped))

			dupSource := match.FindDuplicates(match.TagSource, source.Records)
			dupTarget := match.FindDuplicates(match.TagTarget, target.Records)

			resolver := match.NewResolver(threshold, preview, logger)
			entries := resolver.Classify(source.Records, target.Records, dupSource, dupTarget)

			writer, err := report.NewWriter(outputDir, logger)
			if err != nil {
				return err
			}
			defer writer.Close()

			dupPath, err := writer.WriteDuplicates(dupSource, dupTarget)
			if err != nil {
				return err
			}
			missingPath, csvPath, err := writer.WriteMissing(entries)
			if err != nil {
				return err
			}

			summary := compareSummary{
				RunID:            writer.RunID(),
				SourceRecords:    len(source.Records),
				TargetRecords:    len(target.Records),
				SourceSkipped:    source.Skipped,
				TargetSkipped:    target.Skipped,
				SourceDuplicates: len(dupSource),
				TargetDuplicates: len(dupTarget),
				DuplicatesPath:   dupPath,
				MissingPath:      missingPath,
				MissingCSVPath:   csvPath,
			}
			for _, entry := range entries {
				if entry.Missing {
					summary.Missing++
				} else {
					summary.FoundDuplicates++
				}
			}

			if jsonFlag {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd, []string{"Metric", "Value"}, summaryRows(summary))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", match.DefaultThreshold, "Fuzzy match threshold in (0, 1]")
	cmd.Flags().IntVar(&previewFlag, "preview", match.DefaultPreviewMembers, "Members embedded in each duplicate-group summary")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for report artifacts (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the summary as JSON")
	return cmd
}

func summaryRows(s compareSummary) [][]string {
	rows := [][]string{
		{"Source records", strconv.Itoa(s.SourceRecords)},
		{"Target records", strconv.Itoa(s.TargetRecords)},
		{"Source duplicate groups", strconv.Itoa(s.SourceDuplicates)},
		{"Target duplicate groups", strconv.Itoa(s.TargetDuplicates)},
		{"Missing players", strconv.Itoa(s.Missing)},
		{"Found but duplicated", strconv.Itoa(s.FoundDuplicates)},
		{"Duplicates report", s.DuplicatesPath},
		{"Missing report", s.MissingPath},
		{"Missing CSV", s.MissingCSVPath},
	}
	if s.SourceSkipped > 0 || s.TargetSkipped > 0 {
		rows = append(rows,
			[]string{"Source lines skipped", strconv.Itoa(s.SourceSkipped)},
			[]string{"Target lines skipped", strconv.Itoa(s.TargetSkipped)})
	}
	return rows
}
