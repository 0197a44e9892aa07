// Package archive implements the download-archive file convention.
//
// The archive file itself is owned by yt-dlp (one "<extractor> <id>" line per
// downloaded item, appended after each success). This package only decides
// where the file lives and reads it for reporting.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
)

// hashLen is the number of hex characters of the URL hash kept in the filename.
const hashLen = 12

// Path returns the archive file path for a collection URL inside outDir.
// Each collection gets its own archive so re-runs skip already-fetched items
// without collections interfering with each other.
func Path(outDir, url string) string {
	sum := sha256.Sum256([]byte(url))
	urlHash := hex.EncodeToString(sum[:])[:hashLen]
	return filepath.Join(outDir, fmt.Sprintf(".yt-dlp-archive-%s.txt", urlHash))
}

// Count returns the number of recorded items in the archive file.
// A missing archive means nothing was downloaded yet: (0, false, nil).
func Count(fsys fs.FS, path string) (int, bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return 0, false, nil
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n, true, nil
}
