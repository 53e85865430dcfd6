package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	tmp, err := os.MkdirTemp("", "snakesub-test-ensuredir")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)

	p := filepath.Join(tmp, "a", "b", "c")
	if err := EnsureDir(p); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.IsDir() {
		t.Fatal("expected a directory")
	}

	// Ensuring an existing directory is not an error.
	if err := EnsureDir(p); err != nil {
		t.Fatal(err)
	}
}

func TestEnsurePath(t *testing.T) {
	tmp, err := os.MkdirTemp("", "snakesub-test-ensurepath")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)

	f := filepath.Join(tmp, "out", "sample.bam")
	if err := EnsurePath(f); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(filepath.Join(tmp, "out"))
	if err != nil {
		t.Fatal(err)
	}
	if !fi.IsDir() {
		t.Fatal("expected a directory")
	}
}

func TestGenSubmitID(t *testing.T) {
	a := GenSubmitID()
	b := GenSubmitID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty ids")
	}
	if a == b {
		t.Fatal("expected unique ids")
	}
}
