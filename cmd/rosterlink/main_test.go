package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	outputDir  string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	outputDir := filepath.Join(base, "reports")
	configPath := filepath.Join(base, "config.toml")

	content := fmt.Sprintf("[paths]\noutput_dir = %q\n", outputDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, outputDir: outputDir, configPath: configPath}
}

func writeDataset(t *testing.T, dir, name string, records []map[string]any) string {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}

func TestCLICompareWritesReports(t *testing.T) {
	env := setupCLITestEnv(t)

	source := writeDataset(t, env.baseDir, "source.json", []map[string]any{
		{"name": "Omar Farouk", "transfermarkt_id": "42"},
		{"name": "O. Farouk", "transfermarkt_id": "42"},
		{"name": "Samir Haddad", "transfermarkt_id": "77"},
	})
	target := writeDataset(t, env.baseDir, "target.json", []map[string]any{
		{"name": "Omar Farouk", "transfermarkt_id": "42"},
	})

	out, _, err := runCLI(t, []string{"compare", source, target, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	var summary map[string]any
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\noutput: %s", err, out)
	}
	if got := summary["source_duplicate_groups"].(float64); got != 1 {
		t.Fatalf("expected 1 source duplicate group, got %v", got)
	}
	if got := summary["missing_players"].(float64); got != 1 {
		t.Fatalf("expected 1 missing player, got %v", got)
	}

	for _, name := range []string{"duplicate_players.json", "missing_players.json", "missing_players.csv"} {
		if _, err := os.Stat(filepath.Join(env.outputDir, name)); err != nil {
			t.Fatalf("expected report %s: %v", name, err)
		}
	}
}

func TestCLICompareOutputFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	override := filepath.Join(env.baseDir, "elsewhere")

	source := writeDataset(t, env.baseDir, "source.json", []map[string]any{
		{"name": "Samir Haddad"},
	})
	target := writeDataset(t, env.baseDir, "target.json", []map[string]any{})

	_, _, err := runCLI(t, []string{"compare", source, target, "--json", "--output", override}, env.configPath)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if _, err := os.Stat(filepath.Join(override, "missing_players.json")); err != nil {
		t.Fatalf("expected report in override dir: %v", err)
	}
}

func TestCLICompareRejectsBadThreshold(t *testing.T) {
	env := setupCLITestEnv(t)

	source := writeDataset(t, env.baseDir, "source.json", []map[string]any{{"name": "A"}})
	target := writeDataset(t, env.baseDir, "target.json", []map[string]any{})

	_, _, err := runCLI(t, []string{"compare", source, target, "--threshold", "1.5"}, env.configPath)
	if err == nil {
		t.Fatal("expected threshold validation error")
	}
	requireContains(t, err.Error(), "threshold")
}

func TestCLICompareMissingDataset(t *testing.T) {
	env := setupCLITestEnv(t)
	target := writeDataset(t, env.baseDir, "target.json", []map[string]any{})

	_, _, err := runCLI(t, []string{"compare", filepath.Join(env.baseDir, "absent.json"), target}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing source dataset")
	}
	requireContains(t, err.Error(), "load source dataset")
}

func TestCLIGroupsWritesReport(t *testing.T) {
	env := setupCLITestEnv(t)

	source := writeDataset(t, env.baseDir, "source.json", []map[string]any{
		{"name": "Omar Farouk", "transfermarkt_id": "42"},
	})
	target := writeDataset(t, env.baseDir, "target.json", []map[string]any{
		{"name": "Omar Farouk", "transfermarkt_id": "42"},
		{"name": "Karim Ziani"},
	})

	out, _, err := runCLI(t, []string{"groups", source, target, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("groups: %v", err)
	}

	var summary map[string]any
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\noutput: %s", err, out)
	}
	if got := summary["common_groups"].(float64); got != 1 {
		t.Fatalf("expected 1 common group, got %v", got)
	}
	if got := summary["cross_dataset_groups"].(float64); got != 1 {
		t.Fatalf("expected 1 cross-dataset group, got %v", got)
	}
	if _, err := os.Stat(filepath.Join(env.outputDir, "common_players.json")); err != nil {
		t.Fatalf("expected groups report: %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err == nil {
		t.Fatal("expected error for existing config without --overwrite")
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.outputDir)
	requireContains(t, out, "0.90")
}
