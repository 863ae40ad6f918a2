package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LoadLocation resolves a time zone name, falling back to a fixed JST zone
// when the zone database is missing.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == DefaultTimezone {
		return time.FixedZone("JST", 9*60*60), nil
	}
	return nil, fmt.Errorf("load location %q: %w", name, err)
}

// ContentFiles lists the JSON content files of dir in a stable order.
func ContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
