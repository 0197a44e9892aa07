package tty

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTTY_Nil(t *testing.T) {
	if IsTTY(nil) {
		t.Error("nil file must not be a TTY")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTTY(f) {
		t.Error("regular file must not be a TTY")
	}
}
