package clean

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

func seed(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSweep_RemovesMatches(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir,
		"song.mp3",
		"clip.mp3.part",
		"sub/other.ytdl",
	)

	res, err := Sweep(dir, []string{"**/*.part", "**/*.ytdl"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"clip.mp3.part", "sub/other.ytdl"}
	if !reflect.DeepEqual(res.Matched, want) {
		t.Errorf("Matched = %#v, want %#v", res.Matched, want)
	}
	if res.Removed != 2 {
		t.Errorf("Removed = %d, want 2", res.Removed)
	}
	if _, err := os.Stat(filepath.Join(dir, "song.mp3")); err != nil {
		t.Error("non-matching file must survive")
	}
	if _, err := os.Stat(filepath.Join(dir, "clip.mp3.part")); !os.IsNotExist(err) {
		t.Error("matched file should be removed")
	}
}

func TestSweep_DryRun(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "clip.mp3.part")

	res, err := Sweep(dir, []string{"**/*.part"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matched) != 1 || res.Removed != 0 {
		t.Errorf("res = %+v, want match without removal", res)
	}
	if _, err := os.Stat(filepath.Join(dir, "clip.mp3.part")); err != nil {
		t.Error("dry-run must not delete")
	}
}

func TestSweep_ProtectsState(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir,
		"list.txt",
		".yt-dlp-archive-abcdef123456.txt",
		".tiktok-collection-dl/journal.jsonl",
	)

	res, err := Sweep(dir, []string{"**/*"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matched) != 0 {
		t.Errorf("state files matched: %#v", res.Matched)
	}
	for _, f := range []string{"list.txt", ".yt-dlp-archive-abcdef123456.txt"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s must survive a sweep", f)
		}
	}
}

func TestSweep_NoPatterns(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "clip.mp3.part")

	res, err := Sweep(dir, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matched) != 0 {
		t.Errorf("Matched = %#v, want none", res.Matched)
	}
}

func TestSweep_MissingDir(t *testing.T) {
	_, err := Sweep(filepath.Join(t.TempDir(), "nope"), []string{"**/*.part"}, false)
	if errors.GetCode(err) != errors.EOutputDir {
		t.Errorf("expected E_OUTPUT_DIR, got %v", err)
	}
}

func TestSweep_InvalidPattern(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "clip.mp3.part")

	_, err := Sweep(dir, []string{"[unclosed"}, false)
	if errors.GetCode(err) != errors.ECleanFailed {
		t.Errorf("expected E_CLEAN_FAILED, got %v", err)
	}
}
