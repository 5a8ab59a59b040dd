package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.yaml")
	if err := os.WriteFile(path, []byte("jump:\n  height: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for sibling file: %s", got)
	case <-time.After(3 * reloadDebounce):
	}

	for _, body := range []string{"", "jump:\n  height: 2\n"} {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event path = %s, want %s", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
	select {
	case got := <-w.Events:
		t.Errorf("burst produced a second event: %s", got)
	case <-time.After(3 * reloadDebounce):
	}

	f, err := Load(w.Path())
	if err != nil {
		t.Fatalf("Load after event: %v", err)
	}
	if f.Jump.Height != 2 {
		t.Errorf("reloaded height = %g, want 2", f.Jump.Height)
	}
}

func TestWatcherCloseEndsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Error("Events delivered after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("Events not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "gone", "tunables.yaml")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
