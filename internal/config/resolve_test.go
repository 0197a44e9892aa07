package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

// writeConfig writes a config file, creating parent dirs as needed.
func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_DefaultsOnly(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()

	res, err := Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := res.Config
	if cfg.AudioFormat != "mp3" {
		t.Errorf("AudioFormat = %q, want mp3", cfg.AudioFormat)
	}
	if cfg.AudioQuality != "0" {
		t.Errorf("AudioQuality = %q, want 0", cfg.AudioQuality)
	}
	if !cfg.IgnoreErrors || !cfg.NoOverwrites {
		t.Error("ignore_errors and no_overwrites should default to true")
	}
	if cfg.UseCollectionFolder {
		t.Error("use_collection_folder should default to false")
	}
	if cfg.DefaultOutputDir != "." {
		t.Errorf("DefaultOutputDir = %q, want .", cfg.DefaultOutputDir)
	}
	if res.Origin["audio_format"] != OriginDefault {
		t.Errorf("origin = %q, want default", res.Origin["audio_format"])
	}
}

func TestResolve_ProjectOverridesGlobal(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()

	globalPath := filepath.Join(home, ".config", FileName)
	projectPath := filepath.Join(cwd, FileName)
	writeConfig(t, globalPath, "audio_format: opus\naudio_quality: \"5\"\n")
	writeConfig(t, projectPath, "audio_format: m4a\n")

	res, err := Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Project-local wins for the contested key.
	if res.Config.AudioFormat != "m4a" {
		t.Errorf("AudioFormat = %q, want m4a (project wins)", res.Config.AudioFormat)
	}
	// Global still contributes keys the project file does not set.
	if res.Config.AudioQuality != "5" {
		t.Errorf("AudioQuality = %q, want 5 (from global)", res.Config.AudioQuality)
	}

	if res.Origin["audio_format"] != projectPath {
		t.Errorf("audio_format origin = %q, want %q", res.Origin["audio_format"], projectPath)
	}
	if res.Origin["audio_quality"] != globalPath {
		t.Errorf("audio_quality origin = %q, want %q", res.Origin["audio_quality"], globalPath)
	}
}

func TestResolve_ConfigSubfolderBetweenGlobalAndProject(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()

	writeConfig(t, filepath.Join(home, ".config", FileName), "audio_format: opus\n")
	writeConfig(t, filepath.Join(cwd, ".config", FileName), "audio_format: wav\n")

	res, err := Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.AudioFormat != "wav" {
		t.Errorf("AudioFormat = %q, want wav", res.Config.AudioFormat)
	}

	// Project root beats the .config subfolder.
	writeConfig(t, filepath.Join(cwd, FileName), "audio_format: m4a\n")
	res, err = Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.AudioFormat != "m4a" {
		t.Errorf("AudioFormat = %q, want m4a", res.Config.AudioFormat)
	}
}

func TestResolve_ListsReplaceWholesale(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()

	writeConfig(t, filepath.Join(home, ".config", FileName),
		"extra_yt_dlp_args: [\"--no-mtime\", \"--quiet\"]\n")
	writeConfig(t, filepath.Join(cwd, FileName),
		"extra_yt_dlp_args: [\"--verbose\"]\n")

	res, err := Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"--verbose"}
	if !reflect.DeepEqual(res.Config.ExtraYtdlpArgs, want) {
		t.Errorf("ExtraYtdlpArgs = %#v, want %#v (no partial merge)", res.Config.ExtraYtdlpArgs, want)
	}
}

func TestResolve_FlagsWin(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	writeConfig(t, filepath.Join(cwd, FileName), "audio_format: m4a\n")

	res, err := Resolve(cwd, home, "", map[string]any{"audio_format": "flac"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.AudioFormat != "flac" {
		t.Errorf("AudioFormat = %q, want flac (flag wins)", res.Config.AudioFormat)
	}
	if res.Origin["audio_format"] != OriginFlag {
		t.Errorf("origin = %q, want flag", res.Origin["audio_format"])
	}
}

func TestResolve_ExplicitFileReplacesSearch(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	writeConfig(t, filepath.Join(cwd, FileName), "audio_format: m4a\n")

	explicit := filepath.Join(t.TempDir(), "special.yaml")
	writeConfig(t, explicit, "audio_format: wav\n")

	res, err := Resolve(cwd, home, explicit, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.AudioFormat != "wav" {
		t.Errorf("AudioFormat = %q, want wav (explicit file only)", res.Config.AudioFormat)
	}
}

func TestResolve_ExplicitFileMissing(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()

	_, err := Resolve(cwd, home, filepath.Join(cwd, "nope.yaml"), nil)
	if errors.GetCode(err) != errors.EInvalidConfig {
		t.Errorf("expected E_INVALID_CONFIG, got %v", err)
	}
}

func TestResolve_InvalidYAML(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	writeConfig(t, filepath.Join(cwd, FileName), "audio_format: [unclosed\n")

	_, err := Resolve(cwd, home, "", nil)
	if errors.GetCode(err) != errors.EInvalidConfig {
		t.Errorf("expected E_INVALID_CONFIG, got %v", err)
	}
}

func TestResolve_NumericQualityCoerced(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	writeConfig(t, filepath.Join(cwd, FileName), "audio_quality: 5\n")

	res, err := Resolve(cwd, home, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.AudioQuality != "5" {
		t.Errorf("AudioQuality = %q, want 5", res.Config.AudioQuality)
	}
}
