package export

import (
	"encoding/json"
	"os"
)

// WriteManifest writes the per-object run summary as JSON.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
