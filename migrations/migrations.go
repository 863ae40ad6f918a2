package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeyave/airia-site/helpers"
	"github.com/rs/zerolog/log"
)

type ContentSaver interface {
	Save(ctx context.Context, resource string, body []byte) error
}

// SeedContent copies every JSON file of dir into the content collection,
// replacing the stored document of the same name. It returns the resources
// written.
func SeedContent(ctx context.Context, saver ContentSaver, dir string) ([]string, error) {
	files, err := helpers.ContentFiles(dir)
	if err != nil {
		return nil, err
	}

	var seeded []string
	for _, file := range files {
		resource := filepath.Base(file)

		body, err := os.ReadFile(file)
		if err != nil {
			return seeded, err
		}

		if err := saver.Save(ctx, resource, body); err != nil {
			return seeded, fmt.Errorf("seed %s: %w", resource, err)
		}
		log.Info().Str("resource", resource).Int("bytes", len(body)).Msg("Content seeded")
		seeded = append(seeded, resource)
	}

	return seeded, nil
}
