package thinkific

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadManifestFile reads a course manifest from a local JSON document with
// the same shape as the course player response. Used for offline or
// selective runs. Malformed JSON or an API-reported error field is fatal.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest file: %w", err)
	}
	if m.Error != "" {
		return nil, fmt.Errorf("course manifest error: %s", m.Error)
	}
	return &m, nil
}
