package config

import (
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
)

// DefaultConfigYAML is the commented starter config written by `config init`.
const DefaultConfigYAML = `# tiktok-collection-dl configuration.
#
# Search order (highest precedence first):
#   ./tiktok_collection_dl_config.yaml
#   ./.config/tiktok_collection_dl_config.yaml
#   ~/.config/tiktok_collection_dl_config.yaml
# A key in a higher file replaces the same key from a lower file entirely.

audio_format: mp3
audio_quality: "0"            # 0 = best VBR
output_template: "%(title)s [%(id)s].%(ext)s"
ignore_errors: true
no_overwrites: true

# Put each collection in its own subfolder named from the collection title.
use_collection_folder: false
collection_folder_template: "%(playlist_title)s"

# Tag downloaded audio with the collection name as the album.
embed_collection_as_album: false
strip_uploader_from_collection_title: true

windows_safe_filenames: false

# Used by batch mode when no output directory is given.
default_output_dir: "."

# Virtualenv holding yt-dlp; its bin dir is prepended to PATH.
# venv_path: ~/.venvs/yt-dlp

# Extra flags forwarded to yt-dlp verbatim.
# extra_yt_dlp_args: ["--no-mtime"]

# Leftover files removed by the clean command.
clean_patterns:
  - "**/*.part"
  - "**/*.ytdl"
`

// Init writes the starter config file at path.
// Refuses to overwrite an existing file with E_CONFIG_EXISTS.
func Init(fsys fs.FS, path string) error {
	if _, err := fsys.Stat(path); err == nil {
		return errors.NewWithDetails(errors.EConfigExists,
			"config file already exists: "+path,
			map[string]string{"config": path})
	}
	if err := fsys.WriteFile(path, []byte(DefaultConfigYAML), 0o644); err != nil {
		return errors.WrapWithDetails(errors.EInternal,
			"failed to write config file", err,
			map[string]string{"config": path})
	}
	return nil
}
