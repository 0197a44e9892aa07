// Package config handles loading and layering of tiktok-collection-dl
// configuration files.
package config

import "path/filepath"

// FileName is the config file name looked up in each search location.
const FileName = "tiktok_collection_dl_config.yaml"

// Config is the effective configuration consumed by the downloader.
type Config struct {
	AudioFormat                      string   `mapstructure:"audio_format"`
	AudioQuality                     string   `mapstructure:"audio_quality"`
	OutputTemplate                   string   `mapstructure:"output_template"`
	IgnoreErrors                     bool     `mapstructure:"ignore_errors"`
	NoOverwrites                     bool     `mapstructure:"no_overwrites"`
	UseCollectionFolder              bool     `mapstructure:"use_collection_folder"`
	CollectionFolderTemplate         string   `mapstructure:"collection_folder_template"`
	EmbedCollectionAsAlbum           bool     `mapstructure:"embed_collection_as_album"`
	StripUploaderFromCollectionTitle bool     `mapstructure:"strip_uploader_from_collection_title"`
	WindowsSafeFilenames             bool     `mapstructure:"windows_safe_filenames"`
	DefaultOutputDir                 string   `mapstructure:"default_output_dir"`
	VenvPath                         string   `mapstructure:"venv_path"`
	ExtraYtdlpArgs                   []string `mapstructure:"extra_yt_dlp_args"`
	CleanPatterns                    []string `mapstructure:"clean_patterns"`
}

// Keys lists all recognized config keys in display order.
// Used for `config` output and for provenance reporting.
func Keys() []string {
	return []string{
		"audio_format",
		"audio_quality",
		"output_template",
		"ignore_errors",
		"no_overwrites",
		"use_collection_folder",
		"collection_folder_template",
		"embed_collection_as_album",
		"strip_uploader_from_collection_title",
		"windows_safe_filenames",
		"default_output_dir",
		"venv_path",
		"extra_yt_dlp_args",
		"clean_patterns",
	}
}

// defaults returns the built-in default for each key.
func defaults() map[string]any {
	return map[string]any{
		"audio_format":                         "mp3",
		"audio_quality":                        "0",
		"output_template":                      "%(title)s [%(id)s].%(ext)s",
		"ignore_errors":                        true,
		"no_overwrites":                        true,
		"use_collection_folder":                false,
		"collection_folder_template":           "%(playlist_title)s",
		"embed_collection_as_album":            false,
		"strip_uploader_from_collection_title": true,
		"windows_safe_filenames":               false,
		"default_output_dir":                   ".",
		"venv_path":                            "",
		"extra_yt_dlp_args":                    []string{},
		"clean_patterns":                       []string{"**/*.part", "**/*.ytdl"},
	}
}

// SearchPaths returns the config file locations in layering order,
// lowest precedence first:
//
//	~/.config/tiktok_collection_dl_config.yaml
//	<cwd>/.config/tiktok_collection_dl_config.yaml
//	<cwd>/tiktok_collection_dl_config.yaml
//
// Later files strictly override earlier ones, key by key.
func SearchPaths(cwd, home string) []string {
	return []string{
		filepath.Join(home, ".config", FileName),
		filepath.Join(cwd, ".config", FileName),
		filepath.Join(cwd, FileName),
	}
}
