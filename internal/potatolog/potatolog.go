// Package potatolog provides an in-memory log sink, for while the terminal
// is occupied by the editor and logs cannot go to stderr.
package potatolog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects to be written JSON log entries, as zerolog writes them.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// GetAtLeast returns the entries of the log with at least the given level.
// Entries without a (valid) level are not included.
func (w *MemoryLogReaderWriter) GetAtLeast(level zerolog.Level) []LogEntry {
	result := []LogEntry{}
	for _, entry := range w.Get() {
		levelString, ok := entry[zerolog.LevelFieldName].(string)
		if !ok {
			continue
		}
		entryLevel, err := zerolog.ParseLevel(levelString)
		if err != nil {
			continue
		}
		if entryLevel >= level {
			result = append(result, entry)
		}
	}
	return result
}

// Replay writes the entries of the log with at least the given level to the
// given writer (which could, e.g., be a zerolog.ConsoleWriter).
func (w *MemoryLogReaderWriter) Replay(out io.Writer, level zerolog.Level) error {
	for _, entry := range w.GetAtLeast(level) {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("could not marshal log entry (%w)", err)
		}
		_, err = out.Write(append(data, '\n'))
		if err != nil {
			return fmt.Errorf("could not replay log entry (%w)", err)
		}
	}
	return nil
}
