// Package list reads batch collection URL lists.
package list

import (
	"path/filepath"
	"strings"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
)

// FileName is the batch list file looked up inside an output directory.
const FileName = "list.txt"

// PathIn returns the batch list path for an output directory.
func PathIn(outputDir string) string {
	return filepath.Join(outputDir, FileName)
}

// Parse extracts collection URLs from list file content.
// One URL per line; blank lines and lines starting with '#' are skipped.
// Order is preserved and no deduplication or URL validation happens here.
func Parse(data []byte) []string {
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}

// Read loads and parses the batch list for an output directory.
// Returns found=false when the file does not exist.
func Read(fsys fs.FS, outputDir string) ([]string, bool, error) {
	data, err := fsys.ReadFile(PathIn(outputDir))
	if err != nil {
		return nil, false, nil
	}
	return Parse(data), true, nil
}
