package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

func TestOrganizeCommand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "song.mp3", "notes.unknownext", "backup.zip")

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Contains(t, out, "Status: success")

	assert.FileExists(t, filepath.Join(dir, "Music", "song.mp3"))
	assert.FileExists(t, filepath.Join(dir, "Archives", "backup.zip"))
	assert.FileExists(t, filepath.Join(dir, "notes.unknownext"))
	for _, category := range models.Categories() {
		assert.DirExists(t, filepath.Join(dir, category.Dir()))
	}
}

func TestOrganizeCommandQuiet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.py")

	out, err := execute(t, dir, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, filepath.Join(dir, "Code", "a.py"))
}

func TestOrganizeCommandVerbose(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.py")

	out, err := execute(t, dir, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "[Code] created")
	assert.Contains(t, out, "a.py")
}

func TestOrganizeCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photo.jpg")

	out, err := execute(t, dir, "--output", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "success", doc["status"])
}

func TestOrganizeCommandExclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.pdf", "move.pdf")

	_, err := execute(t, dir, "--exclude", "keep.*")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "keep.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Documents", "move.pdf"))
}

func TestOrganizeCommandCollisionFail(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Music"), 0755))
	writeFiles(t, dir, "song.mp3")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Music", "song.mp3"), []byte("old"), 0644))

	_, err := execute(t, dir, "--on-collision", "fail", "-q")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDestinationExists)
	assert.Equal(t, 2, ExitCode(err))
	assert.FileExists(t, filepath.Join(dir, "song.mp3"))
}

func TestOrganizeCommandMissingDirectory(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	var readErr *models.DirectoryReadError
	assert.True(t, errors.As(err, &readErr))
	assert.Equal(t, 2, ExitCode(err))
}

func TestOrganizeCommandInvalidFlags(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"Collision", []string{dir, "--on-collision", "rename"}},
		{"Output", []string{dir, "--output", "xml"}},
		{"ReportFormat", []string{dir, "--report", "r.txt", "--report-format", "xml"}},
		{"Exclude", []string{dir, "--exclude", "[x"}},
		{"TooManyArgs", []string{dir, dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 2, ExitCode(err))
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid flags must not touch the directory")
}

func TestOrganizeCommandReport(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "clip.mp4")
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	_, err := execute(t, dir, "-q", "--report", reportPath, "--report-format", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "success", doc["status"])
	assert.Contains(t, string(data), "clip.mp4")
}

func TestOrganizeCommandLogFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")
	logPath := filepath.Join(t.TempDir(), "sortnorris.log")

	_, err := execute(t, dir, "-q", "--log-file", logPath, "--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "operation_id")
}

func TestListCommand(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		out, err := execute(t, "--list")
		require.NoError(t, err)
		for _, category := range models.Categories() {
			assert.Contains(t, out, string(category))
		}
		assert.Contains(t, out, "dmg,")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "-l", "-o", "json")
		require.NoError(t, err)

		var docs []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &docs))
		require.Len(t, docs, len(models.Categories()))
		assert.Equal(t, "Archives", docs[0]["category"])
	})
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err, "init must not overwrite without --force")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "On Collision: overwrite")
	assert.Contains(t, out, "Log File: (disabled)")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(&ExitError{Code: 1, Err: errors.New("partial")}))
	assert.Equal(t, 2, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: 1, Err: errors.New("partial")})))
}
