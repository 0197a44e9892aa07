package collection

import (
	"regexp"
	"strings"
)

// FallbackFolder is used when a folder template resolves to nothing usable.
const FallbackFolder = "collection"

var (
	placeholderPattern = regexp.MustCompile(`%\([^)]+\)s`)
	invalidCharPattern = regexp.MustCompile(`[<>:"/\\|?*]`)
	controlPattern     = regexp.MustCompile(`[\x00-\x1f]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// ApplyFolderTemplate renders a yt-dlp style folder template
// (e.g. "%(playlist_title)s") against the resolved info. Unresolved
// placeholders are dropped and the result sanitized for use as a
// directory name.
func ApplyFolderTemplate(template string, info Info) string {
	result := template
	result = strings.ReplaceAll(result, "%(uploader)s", info.Uploader)
	result = strings.ReplaceAll(result, "%(playlist_title)s", info.PlaylistTitle)
	result = placeholderPattern.ReplaceAllString(result, "")

	name := SanitizeFolderName(result)
	if name == "" {
		return FallbackFolder
	}
	return name
}

// SanitizeFolderName strips characters that are unsafe in directory names
// and collapses runs of whitespace.
func SanitizeFolderName(name string) string {
	name = invalidCharPattern.ReplaceAllString(name, "")
	name = controlPattern.ReplaceAllString(name, "")
	name = whitespacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
