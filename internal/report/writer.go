package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"rosterlink/internal/logging"
	"rosterlink/internal/match"
)

// Artifact file names, one set per output directory.
const (
	DuplicatesFile   = "duplicate_players.json"
	CommonGroupsFile = "common_players.json"
	MissingFile      = "missing_players.json"
	MissingCSVFile   = "missing_players.csv"

	lockFile = ".rosterlink.lock"
)

// Writer emits run artifacts into a single output directory.
type Writer struct {
	dir    string
	runID  string
	logger *slog.Logger
	lock   *flock.Flock
}

// NewWriter prepares the output directory and takes an exclusive lock on it.
// A directory already locked by another run is an error, not a wait.
func NewWriter(dir string, logger *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dir, err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lock := flock.New(filepath.Join(dir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory %q: %w", dir, err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %q is in use by another run", dir)
	}

	runID := uuid.NewString()
	w := &Writer{
		dir:    dir,
		runID:  runID,
		logger: logger.With(logging.String("component", "report"), logging.String("run_id", runID)),
		lock:   lock,
	}
	return w, nil
}

// RunID returns the generated identifier for this run.
func (w *Writer) RunID() string { return w.runID }

// Close releases the output directory lock.
func (w *Writer) Close() error {
	if w.lock == nil {
		return nil
	}
	return w.lock.Unlock()
}

// duplicatesDocument is the duplicate_players.json shape.
type duplicatesDocument struct {
	SourceDuplicates []match.DuplicateGroup `json:"source_duplicates"`
	TargetDuplicates []match.DuplicateGroup `json:"target_duplicates"`
}

// WriteDuplicates writes the intra-dataset duplicate groups for both
// datasets and returns the artifact path.
func (w *Writer) WriteDuplicates(source, target []match.DuplicateGroup) (string, error) {
	doc := duplicatesDocument{
		SourceDuplicates: emptyIfNil(source),
		TargetDuplicates: emptyIfNil(target),
	}
	path := filepath.Join(w.dir, DuplicatesFile)
	if err := w.writeJSON(path, doc); err != nil {
		return "", err
	}
	w.logger.Info("wrote duplicates report",
		logging.String("path", path),
		logging.Int("source_groups", len(source)),
		logging.Int("target_groups", len(target)),
	)
	return path, nil
}

// WriteCommonGroups writes the cross-dataset co-reference groups.
func (w *Writer) WriteCommonGroups(groups []match.CommonGroup) (string, error) {
	path := filepath.Join(w.dir, CommonGroupsFile)
	if err := w.writeJSON(path, emptyIfNil(groups)); err != nil {
		return "", err
	}
	w.logger.Info("wrote co-reference groups",
		logging.String("path", path),
		logging.Int("groups", len(groups)),
	)
	return path, nil
}

// WriteMissing writes the classified entries as JSON plus the flat CSV
// equivalent, and returns both paths.
func (w *Writer) WriteMissing(entries []match.Entry) (string, string, error) {
	jsonPath := filepath.Join(w.dir, MissingFile)
	if err := w.writeJSON(jsonPath, emptyIfNil(entries)); err != nil {
		return "", "", err
	}

	csvPath := filepath.Join(w.dir, MissingCSVFile)
	if err := w.writeCSV(csvPath, entries); err != nil {
		return "", "", err
	}

	w.logger.Info("wrote missing report",
		logging.String("json_path", jsonPath),
		logging.String("csv_path", csvPath),
		logging.Int("entries", len(entries)),
	)
	return jsonPath, csvPath, nil
}

func (w *Writer) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
