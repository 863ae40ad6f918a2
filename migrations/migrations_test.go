package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySaver struct {
	docs map[string]string
	fail string
}

func (s *memorySaver) Save(_ context.Context, resource string, body []byte) error {
	if resource == s.fail {
		return errors.New("write failed")
	}
	s.docs[resource] = string(body)
	return nil
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestSeedContent(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"events.json": `{"events": []}`,
		"social.json": `{"x": "https://x.com/airia"}`,
		"README.md":   "not content",
	})
	saver := &memorySaver{docs: map[string]string{}}

	seeded, err := SeedContent(context.Background(), saver, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"events.json", "social.json"}, seeded)
	assert.Equal(t, `{"x": "https://x.com/airia"}`, saver.docs["social.json"])
}

func TestSeedContent_StopsOnError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"content.json": `{}`,
		"events.json":  `{"events": []}`,
		"social.json":  `{}`,
	})
	saver := &memorySaver{docs: map[string]string{}, fail: "events.json"}

	seeded, err := SeedContent(context.Background(), saver, dir)
	assert.ErrorContains(t, err, "seed events.json")
	assert.Equal(t, []string{"content.json"}, seeded)
}

func TestSeedContent_MissingDir(t *testing.T) {
	_, err := SeedContent(context.Background(), &memorySaver{}, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
