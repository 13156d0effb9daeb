package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sdejongh/sortnorris/pkg/classify"
	"github.com/sdejongh/sortnorris/pkg/models"
)

func sampleReport() *models.MoveReport {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.MoveReport{
		OperationID: "op-1",
		Directory:   "/data",
		StartTime:   start,
		EndTime:     start.Add(1500 * time.Millisecond),
		Duration:    1500 * time.Millisecond,
		Stats: models.Statistics{
			FilesScanned:      4,
			FilesMatched:      3,
			FilesUnmatched:    1,
			FilesMoved:        1,
			FilesFailed:       1,
			FilesNotAttempted: 1,
			DirsCreated:       6,
			BytesMoved:        2048,
		},
		DirsCreated: []string{"/data/Archives", "/data/Music"},
		Moves: []models.MoveRecord{
			{Source: "/data/a.mp3", Destination: "/data/Music/a.mp3", Category: models.CategoryMusic, Status: models.MoveMoved},
			{Source: "/data/b.zip", Destination: "/data/Archives/b.zip", Category: models.CategoryArchives, Status: models.MoveFailed, Error: "permission denied"},
			{Source: "/data/c.py", Destination: "/data/Code/c.py", Category: models.CategoryCode, Status: models.MoveNotAttempted},
		},
		Errors: []models.OrganizeError{
			{FilePath: "/data/b.zip", Operation: "move", Error: "permission denied"},
		},
		Status: models.StatusPartial,
	}
}

func TestHumanFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewHumanFormatter(false)
	require.NoError(t, f.Start(&buf, "/data"))

	f.Progress(ProgressUpdate{Type: EventDirListed, Name: "Music", IsDir: true})
	f.Progress(ProgressUpdate{Type: EventDirCreated, Category: models.CategoryCode, Destination: "/data/Code"})
	f.Progress(ProgressUpdate{Type: EventFileMoved, Source: "/data/a.mp3", Destination: "/data/Music/a.mp3", CurrentFile: 1, TotalFiles: 3})
	f.Progress(ProgressUpdate{Type: EventFileError, Source: "/data/b.zip", CurrentFile: 2, TotalFiles: 3, Error: errors.New("permission denied")})
	require.NoError(t, f.Complete(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Organizing /data")
	assert.Contains(t, out, "  Music/\n")
	assert.Contains(t, out, "[Code] created /data/Code")
	assert.Contains(t, out, "[1/3] ✓ /data/a.mp3 -> /data/Music/a.mp3")
	assert.Contains(t, out, "[2/3] ✗ /data/b.zip: permission denied")
	assert.Contains(t, out, "Files moved:     1 (2.0 KiB)")
	assert.Contains(t, out, "Status: partial")
	assert.Contains(t, out, "/data/b.zip: permission denied")
	assert.Equal(t, "human", f.Name())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter()
	require.NoError(t, f.Start(&buf, "/data"))

	f.Progress(ProgressUpdate{Type: EventDirListed, Name: "a.mp3"})
	f.Progress(ProgressUpdate{Type: EventFileMoved, Category: models.CategoryMusic, Source: "/data/a.mp3", Destination: "/data/Music/a.mp3"})
	assert.Zero(t, buf.Len(), "nothing is written before Complete")

	require.NoError(t, f.Complete(sampleReport()))

	var doc reportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "op-1", doc.OperationID)
	assert.Equal(t, "partial", doc.Status)
	assert.Equal(t, int64(1500), doc.DurationMs)
	require.Len(t, doc.Events, 1, "listing events are not recorded")
	assert.Equal(t, EventFileMoved, doc.Events[0].Type)
	require.Len(t, doc.Moves, 3)
	assert.Equal(t, "not_attempted", doc.Moves[2].Status)
}

func TestEncodeReport(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, sampleReport(), "yaml"))

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "partial", doc["status"])
		assert.Contains(t, buf.String(), "files_not_attempted: 1")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, sampleReport(), "json"))
		assert.True(t, json.Valid(buf.Bytes()))
	})

	t.Run("Human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, sampleReport(), "human"))

		out := buf.String()
		assert.Contains(t, out, "Status:    partial")
		assert.Contains(t, out, "Moved (1):")
		assert.Contains(t, out, "Failed (1):")
		assert.Contains(t, out, "Not attempted (1):")
		assert.Contains(t, out, "[Code] /data/c.py -> /data/Code/c.py")
	})

	t.Run("HumanEmpty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeReport(&buf, &models.MoveReport{Status: models.StatusSuccess}, "human"))
		assert.Contains(t, buf.String(), "No files matched a category.")
	})
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(sampleReport(), path, "json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operation_id": "op-1"`)

	assert.Error(t, WriteReport(sampleReport(), filepath.Join(t.TempDir(), "missing", "r.json"), "json"))
}

func TestWriteCategories(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCategories(&buf, classify.DefaultTable(), "human"))

		out := buf.String()
		assert.Contains(t, out, "Category")
		assert.Contains(t, out, "Extensions")
		assert.Contains(t, out, `"dmg,"`, "punctuated extensions are quoted")

		tokens := make(map[string]bool)
		for _, field := range strings.FieldsFunc(out, func(r rune) bool {
			return r == ' ' || r == '\n' || r == '│'
		}) {
			tokens[strings.TrimSuffix(field, ",")] = true
		}
		for _, rule := range classify.DefaultTable() {
			assert.True(t, tokens[string(rule.Category)], "category %s missing", rule.Category)
			for _, ext := range rule.Extensions {
				want := ext
				if strings.ContainsAny(ext, ",.") {
					want = strconv.Quote(ext)
				}
				assert.True(t, tokens[want], "extension %s not printed whole", want)
			}
		}
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCategories(&buf, classify.DefaultTable(), "json"))

		var docs []categoryDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
		require.Len(t, docs, 6)
		assert.Equal(t, "Archives", docs[0].Category)
		assert.Contains(t, docs[0].Extensions, "dmg,")
	})
}

func TestProgressFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewProgressFormatter()
	require.NoError(t, f.Start(&buf, "/data"))

	f.Progress(ProgressUpdate{Type: EventFileMoved, Source: "/data/a.mp3", CurrentFile: 1, TotalFiles: 1})
	require.NoError(t, f.Complete(sampleReport()))

	assert.Contains(t, buf.String(), "Organizing /data")
	assert.Contains(t, buf.String(), "Status:")
	assert.Equal(t, "progress", f.Name())
}
