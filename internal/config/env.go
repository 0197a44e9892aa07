package config

import (
	"path/filepath"
	"runtime"
	"strings"
)

// VenvBinDir returns the executable directory inside a virtualenv.
func VenvBinDir(venvPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvPath, "Scripts")
	}
	return filepath.Join(venvPath, "bin")
}

// Environ returns the child process environment derived from base.
// When venvPath is set, its bin dir is prepended to PATH so yt-dlp resolves
// from the venv without activation. The path is not validated; a bad venv
// surfaces as "executable not found" from the invocation itself.
func Environ(base []string, venvPath string) []string {
	if venvPath == "" {
		return base
	}

	binDir := VenvBinDir(venvPath)
	env := make([]string, 0, len(base)+1)
	replaced := false
	for _, kv := range base {
		if strings.HasPrefix(kv, "PATH=") {
			env = append(env, "PATH="+binDir+string(filepath.ListSeparator)+strings.TrimPrefix(kv, "PATH="))
			replaced = true
			continue
		}
		env = append(env, kv)
	}
	if !replaced {
		env = append(env, "PATH="+binDir)
	}
	return env
}
