package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"rosterlink/internal/match"
)

// writeCSV renders the flat tabular form of the missing report. List and
// nested fields are serialized to their JSON text so each value fits one
// cell. Duplicate columns appear only when at least one entry carries the
// flag, mirroring the union-of-fields header of the JSON form.
func (w *Writer) writeCSV(path string, entries []match.Entry) error {
	withDuplicates := false
	for _, entry := range entries {
		if entry.Duplicate {
			withDuplicates = true
			break
		}
	}

	header := table.Row{"name", "name_ar", "transfermarkt_url", "wikipedia_url_provided", "transfermarkt_id"}
	if withDuplicates {
		header = append(header, "duplicate", "duplicate_in", "duplicate_groups")
	}
	header = append(header, "missing")

	tw := table.NewWriter()
	tw.AppendHeader(header)
	for _, entry := range entries {
		row := table.Row{
			cellValue(entry.Name),
			cellValue(entry.NameAr),
			cellValue(entry.TransfermarktURL),
			cellValue(entry.WikipediaURL),
		}
		if entry.TransfermarktID != nil {
			row = append(row, *entry.TransfermarktID)
		} else {
			row = append(row, "")
		}
		if withDuplicates {
			if entry.Duplicate {
				row = append(row,
					strconv.FormatBool(entry.Duplicate),
					jsonCell(entry.DuplicateIn),
					jsonCell(entry.DuplicateGroups),
				)
			} else {
				row = append(row, "", "", "")
			}
		}
		row = append(row, strconv.FormatBool(entry.Missing))
		tw.AppendRow(row)
	}

	rendered := tw.RenderCSV() + "\n"
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// cellValue flattens a passthrough field value into CSV cell text.
func cellValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return jsonCell(value)
	}
}

// jsonCell serializes a nested value to its JSON document form.
func jsonCell(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
