package render

import (
	"fmt"
	"io"
	"strings"
)

// ConfigEntry is one effective-config row: key, rendered value, origin.
type ConfigEntry struct {
	Key    string
	Value  string
	Origin string
}

// Config prints the effective configuration with per-key provenance.
func Config(w io.Writer, entries []ConfigEntry) {
	keyWidth := 0
	valWidth := 0
	for _, e := range entries {
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
		if len(e.Value) > valWidth {
			valWidth = len(e.Value)
		}
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%-*s  %-*s  (%s)\n", keyWidth, e.Key, valWidth, e.Value, e.Origin)
	}
}

// ConfigValue renders a config value for display.
func ConfigValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return "[" + strings.Join(val, ", ") + "]"
	case string:
		if val == "" {
			return `""`
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CheckLine prints one doctor check result: "ok" or "missing" plus detail.
func CheckLine(w io.Writer, name string, ok bool, detail string) {
	status := "ok"
	if !ok {
		status = "missing"
	}
	if detail != "" {
		_, _ = fmt.Fprintf(w, "%-10s %-8s %s\n", name, status, detail)
		return
	}
	_, _ = fmt.Fprintf(w, "%-10s %s\n", name, status)
}
