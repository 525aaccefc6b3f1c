package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mage_history")

	h, err := Load(path, 10)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(h.Lines()) != 0 {
		t.Errorf("fresh history should be empty, got %v", h.Lines())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("history file was not created: %v", err)
	}
}

func TestAppendPersistsAndReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mage_history")

	h, err := Load(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Append("(+ 1 2)"); err != nil {
		t.Fatal(err)
	}
	if err := h.Append("(def x 1)"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	lines := reloaded.Lines()
	if len(lines) != 2 || lines[0] != "(+ 1 2)" || lines[1] != "(def x 1)" {
		t.Errorf("Lines() = %v, want [(+ 1 2) (def x 1)]", lines)
	}
}

func TestAppendTrimsToLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mage_history")

	h, err := Load(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Append("a"); err != nil {
		t.Fatal(err)
	}
	if err := h.Append("b"); err != nil {
		t.Fatal(err)
	}
	if err := h.Append("c"); err != nil {
		t.Fatal(err)
	}

	lines := h.Lines()
	if len(lines) != 2 || lines[0] != "b" || lines[1] != "c" {
		t.Errorf("Lines() = %v, want [b c]", lines)
	}
}
