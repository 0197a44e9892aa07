// Package collection resolves TikTok collection metadata and folder names.
package collection

import (
	"net/url"
	"regexp"
	"strings"
)

// Info holds resolved collection metadata.
// Empty fields mean the value could not be determined.
type Info struct {
	Uploader      string
	PlaylistTitle string
}

// TikTok collection URLs embed the collection name before a numeric ID:
//
//	https://www.tiktok.com/@user/collection/CollectionName-7543443541872102166
//
// The numeric ID is always at least 10 digits, which avoids false matches on
// collection names that contain dashes followed by short numbers.
var collectionURLPattern = regexp.MustCompile(`/collection/(.+?)-([0-9]{10,})(?:[/?#]|$)`)

// TitleFromURL extracts and percent-decodes the collection name from a
// TikTok collection URL. Returns "" when the URL does not match.
//
// This is the preferred title source: it is always clean (no uploader
// prefix), works for private collections, and needs no network call.
func TitleFromURL(rawURL string) string {
	m := collectionURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	title := m[1]
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}
	return strings.TrimSpace(title)
}

// StripUploaderPrefix removes the uploader name from the front of the title.
// yt-dlp bakes the uploader into playlist_title for TikTok collections, so
// when the title was not recoverable from the URL the probe result often
// looks like "username-Collection Name".
//
// The strip only happens when both fields are set, the match is
// case-insensitive, and the remainder is non-empty.
func StripUploaderPrefix(info Info) Info {
	if info.PlaylistTitle == "" || info.Uploader == "" {
		return info
	}
	if !strings.HasPrefix(strings.ToLower(info.PlaylistTitle), strings.ToLower(info.Uploader)) {
		return info
	}
	stripped := strings.TrimLeft(info.PlaylistTitle[len(info.Uploader):], "-_ ")
	if stripped == "" {
		return info
	}
	info.PlaylistTitle = stripped
	return info
}
