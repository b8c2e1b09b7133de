package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"scribe/internal/transcript"
)

// timeLayout is the fixed textual format of date_and_time fields
const timeLayout = "2006-01-02 15:04:05"

// Record is the persisted snapshot: the cleaned transcript plus metadata,
// one JSON file per gen_cache request. Records are never mutated or
// deleted by the service.
type Record struct {
	transcript.Transcript
	DateAndTime string `json:"date_and_time"`
	FileName    string `json:"file_name"`
}

// Store persists transcript snapshots in a local directory. Concurrent
// writers need no coordination: every write goes to a uniquely named file.
type Store struct {
	dir string
}

// New creates a store over dir. The directory is created on first write,
// not here, so a read-only deployment can still serve empty listings.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// newID generates a cache file identifier: epoch seconds with fixed
// fractional precision, so names sort reverse-chronologically, plus a
// short random suffix so concurrent writes cannot collide.
func newID() string {
	ts := float64(time.Now().UnixNano()) / 1e9
	return fmt.Sprintf("%.10f_%s.json", ts, uuid.NewString()[:8])
}

// Write persists a transcript snapshot and returns its summary metadata
func (s *Store) Write(t transcript.Transcript, fileName string) (*transcript.CacheSummary, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	id := newID()
	dateAndTime := time.Now().UTC().Format(timeLayout)

	rec := Record{
		Transcript:  t,
		DateAndTime: dateAndTime,
		FileName:    fileName,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("failed to encode cache record: %w", err)
	}

	path := filepath.Join(s.dir, id)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write cache file: %w", err)
	}

	log.Printf("[Cache] Wrote %s (%s)", id, fileName)

	return &transcript.CacheSummary{
		ID:          id,
		DateAndTime: dateAndTime,
		FileName:    fileName,
	}, nil
}

// List enumerates cache snapshots, newest first. A missing directory means
// an empty listing, and a single unreadable or corrupt file degrades to a
// summary built from its modification time instead of hiding the rest.
func (s *Store) List() ([]transcript.CacheSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []transcript.CacheSummary{}, nil
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	summaries := make([]transcript.CacheSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, s.readSummary(name))
	}
	return summaries, nil
}

// readSummary projects one cache file to its summary, degrading to
// filename + mtime when the record cannot be read or parsed.
func (s *Store) readSummary(name string) transcript.CacheSummary {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err == nil {
		var rec Record
		if err := json.Unmarshal(data, &rec); err == nil {
			return transcript.CacheSummary{
				ID:          name,
				DateAndTime: rec.DateAndTime,
				FileName:    rec.FileName,
			}
		}
	}

	log.Printf("[Cache] Unreadable cache file %s, degrading to mtime", name)
	dateAndTime := ""
	if info, statErr := os.Stat(path); statErr == nil {
		dateAndTime = info.ModTime().UTC().Format(timeLayout)
	}
	return transcript.CacheSummary{
		ID:          name,
		DateAndTime: dateAndTime,
		FileName:    "",
	}
}
