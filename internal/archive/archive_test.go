package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
)

// stubFS is a test stub for the fs.FS interface.
type stubFS struct {
	files map[string][]byte
}

func newStubFS() *stubFS {
	return &stubFS{files: make(map[string][]byte)}
}

func (s *stubFS) ReadFile(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (s *stubFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	s.files[path] = data
	return nil
}

func (s *stubFS) MkdirAll(path string, perm os.FileMode) error { return nil }
func (s *stubFS) Stat(path string) (os.FileInfo, error)        { return nil, os.ErrNotExist }
func (s *stubFS) Remove(path string) error                     { return nil }

// Verify stubFS implements fs.FS (compile-time check).
var _ fs.FS = (*stubFS)(nil)

func TestPath_Deterministic(t *testing.T) {
	url := "https://www.tiktok.com/@user/collection/Mix-7543443541872102166"
	a := Path("/out", url)
	b := Path("/out", url)
	if a != b {
		t.Errorf("Path not deterministic: %q vs %q", a, b)
	}
}

func TestPath_Shape(t *testing.T) {
	p := Path("/out", "https://example.com/c")
	if filepath.Dir(p) != "/out" {
		t.Errorf("archive should live in the output dir, got %q", p)
	}
	base := filepath.Base(p)
	if !strings.HasPrefix(base, ".yt-dlp-archive-") || !strings.HasSuffix(base, ".txt") {
		t.Errorf("unexpected archive name %q", base)
	}
	hash := strings.TrimSuffix(strings.TrimPrefix(base, ".yt-dlp-archive-"), ".txt")
	if len(hash) != hashLen {
		t.Errorf("hash length = %d, want %d", len(hash), hashLen)
	}
}

func TestPath_DistinctPerURL(t *testing.T) {
	a := Path("/out", "https://www.tiktok.com/@u/collection/A-7543443541872102166")
	b := Path("/out", "https://www.tiktok.com/@u/collection/B-7543443541872102167")
	if a == b {
		t.Error("different URLs must map to different archives")
	}
}

func TestCount(t *testing.T) {
	stub := newStubFS()
	stub.files["/out/.yt-dlp-archive-abc.txt"] = []byte("tiktok 111\ntiktok 222\n\ntiktok 333\n")

	n, found, err := Count(stub, "/out/.yt-dlp-archive-abc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected archive to be found")
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestCount_Missing(t *testing.T) {
	stub := newStubFS()
	n, found, err := Count(stub, "/out/.yt-dlp-archive-abc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || n != 0 {
		t.Errorf("missing archive: got n=%d found=%v", n, found)
	}
}
