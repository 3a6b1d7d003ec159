package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestShouldColorizeOnlyForTerminals(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers must not be colourised")
	}

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer file.Close()
	if shouldColorize(file) {
		t.Fatal("regular files must not be colourised")
	}

	var buf bytes.Buffer
	heading(&buf, "Video")
	if buf.String() != "Video\n" {
		t.Fatalf("expected plain heading, got %q", buf.String())
	}
}
