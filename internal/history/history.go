// Package history persists REPL input lines to a history file, mirroring
// original_source/repl.py's use of Python's readline history file (mode
// 0640, created on first use, one entry appended per submitted line).
package history

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// History is an append-only log of submitted REPL lines, capped at limit
// entries (oldest dropped first) the way spec.md's REPL surface implies a
// bounded file rather than an unbounded one.
type History struct {
	path  string
	limit int
	lines []string
}

// Load reads path into memory, creating it (mode 0640) if it doesn't
// exist yet. A missing file is not an error.
func Load(path string, limit int) (*History, error) {
	h := &History{path: path, limit: limit}

	f, err := os.OpenFile(path, os.O_RDONLY, 0640)
	if errors.Is(err, os.ErrNotExist) {
		if cerr := os.WriteFile(path, nil, 0640); cerr != nil {
			return nil, errors.Wrap(cerr, "creating history file")
		}
		return h, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening history file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.lines = append(h.lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading history file")
	}
	h.trim()
	return h, nil
}

func (h *History) trim() {
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
}

// Lines returns the in-memory history, oldest first.
func (h *History) Lines() []string { return h.lines }

// Append records line and persists the whole (possibly trimmed) history to
// disk, matching the REPL's "submit one form" granularity.
func (h *History) Append(line string) error {
	h.lines = append(h.lines, line)
	h.trim()

	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return errors.Wrap(err, "writing history file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range h.lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return errors.Wrap(err, "writing history file")
		}
	}
	return w.Flush()
}
