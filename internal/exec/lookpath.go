package exec

import (
	"os"
	osexec "os/exec"
	"path/filepath"
)

// lookPathIn resolves name against an explicit PATH-style search string.
// Mirrors exec.LookPath semantics for names without a path separator;
// names containing a separator are checked directly.
func lookPathIn(name, path string) (string, error) {
	if filepath.Base(name) != name {
		if err := isExecutable(name); err != nil {
			return "", &osexec.Error{Name: name, Err: err}
		}
		return name, nil
	}
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if err := isExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", &osexec.Error{Name: name, Err: osexec.ErrNotFound}
}

// isExecutable reports whether path is a regular file with an execute bit set.
func isExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return osexec.ErrNotFound
	}
	if info.Mode()&0111 == 0 {
		return osexec.ErrNotFound
	}
	return nil
}
