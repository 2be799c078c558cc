package util

import (
	"os"
	"path"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("port: z80\n"), 0664); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Fatal("existing file not found")
	}
	if FileExists(dir) {
		t.Fatal("directory reported as file")
	}
	if FileExists(path.Join(dir, "missing.yaml")) {
		t.Fatal("missing file reported as existing")
	}
}
