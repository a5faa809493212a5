package roster

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Dataset is one fully loaded input collection.
type Dataset struct {
	Path    string
	Records []Record
	// Skipped counts malformed NDJSON lines and non-object array entries
	// dropped during load.
	Skipped int
}

// Load reads a dataset file. Accepted shapes: a JSON array of objects, a
// single JSON object (one record), or NDJSON with one object per line.
// Malformed NDJSON lines and non-object array entries are skipped, not
// fatal. A missing file, or content that yields no records despite being
// non-empty, is an error.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	ds := &Dataset{Path: path}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err == nil {
		switch value := decoded.(type) {
		case map[string]any:
			ds.Records = append(ds.Records, Record(value))
			return ds, nil
		case []any:
			for _, entry := range value {
				if obj, ok := entry.(map[string]any); ok {
					ds.Records = append(ds.Records, Record(obj))
				} else {
					ds.Skipped++
				}
			}
			return ds, nil
		}
		// Top-level scalar: fall through to the NDJSON scan, which will
		// reject it as undecodable.
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			ds.Skipped++
			continue
		}
		ds.Records = append(ds.Records, Record(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dataset %s: %w", path, err)
	}

	if len(ds.Records) == 0 && strings.TrimSpace(string(data)) != "" {
		return nil, fmt.Errorf("dataset %s: no decodable records", path)
	}
	return ds, nil
}
