package cobra

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/render"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each key came from",
		Long: `Print every configuration key with its effective value and origin:
a config file path, "flag", or "default".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd, nil)
			if err != nil {
				return err
			}

			values := configValues(d.resolved.Config)
			entries := make([]render.ConfigEntry, 0, len(config.Keys()))
			for _, key := range config.Keys() {
				entries = append(entries, render.ConfigEntry{
					Key:    key,
					Value:  render.ConfigValue(values[key]),
					Origin: d.resolved.Origin[key],
				})
			}
			render.Config(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented starter config file",
		Long: `Write a commented starter config file to the current directory.
Fails if the file already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}
			path := filepath.Join(cwd, config.FileName)
			if err := config.Init(fs.NewRealFS(), path); err != nil {
				return err
			}
			render.Linef(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}
}

// configValues maps config keys to their effective values for display.
func configValues(cfg config.Config) map[string]any {
	return map[string]any{
		"audio_format":                         cfg.AudioFormat,
		"audio_quality":                        cfg.AudioQuality,
		"output_template":                      cfg.OutputTemplate,
		"ignore_errors":                        cfg.IgnoreErrors,
		"no_overwrites":                        cfg.NoOverwrites,
		"use_collection_folder":                cfg.UseCollectionFolder,
		"collection_folder_template":           cfg.CollectionFolderTemplate,
		"embed_collection_as_album":            cfg.EmbedCollectionAsAlbum,
		"strip_uploader_from_collection_title": cfg.StripUploaderFromCollectionTitle,
		"windows_safe_filenames":               cfg.WindowsSafeFilenames,
		"default_output_dir":                   cfg.DefaultOutputDir,
		"venv_path":                            cfg.VenvPath,
		"extra_yt_dlp_args":                    cfg.ExtraYtdlpArgs,
		"clean_patterns":                       cfg.CleanPatterns,
	}
}
