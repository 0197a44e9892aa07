// Package launch implements the environment-driven launcher dispatch.
//
// The run command mirrors the original launcher scripts: COLLECTION_URL and
// OUTPUT_DIR come from the process environment (optionally seeded from a
// .env file), and their presence decides between single-URL and batch mode.
package launch

import (
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the launcher.
const (
	EnvCollectionURL = "COLLECTION_URL"
	EnvOutputDir     = "OUTPUT_DIR"
)

// Mode is the launcher operating mode.
type Mode string

const (
	// ModeSingle downloads one collection URL.
	ModeSingle Mode = "single"

	// ModeBatch downloads every URL in the output dir's list.txt.
	ModeBatch Mode = "batch"
)

// Plan is the resolved launcher invocation.
type Plan struct {
	Mode Mode

	// URL is set in single mode.
	URL string

	// OutputDir is empty when unset; callers substitute the configured
	// default output dir.
	OutputDir string

	// Args is the positional argument list the launcher forwards,
	// exactly one of: [], [url], [output_dir], [url, output_dir].
	Args []string
}

// LoadDotenv seeds the process environment from ./.env if present.
// Best-effort: a missing or unreadable file is ignored; existing
// environment variables are never overridden.
func LoadDotenv() {
	_ = godotenv.Load()
}

// PlanFromEnv builds the launch plan from an environment lookup.
//
// Dispatch table (URL set × output dir set):
//
//	no  × no  → batch, no args
//	yes × no  → single, [url]
//	no  × yes → batch, [output_dir]
//	yes × yes → single, [url, output_dir]
func PlanFromEnv(getenv func(string) string) Plan {
	url := strings.TrimSpace(getenv(EnvCollectionURL))
	outputDir := strings.TrimSpace(getenv(EnvOutputDir))

	plan := Plan{OutputDir: outputDir}

	switch {
	case url == "" && outputDir == "":
		plan.Mode = ModeBatch
		plan.Args = nil
	case url != "" && outputDir == "":
		plan.Mode = ModeSingle
		plan.URL = url
		plan.Args = []string{url}
	case url == "" && outputDir != "":
		plan.Mode = ModeBatch
		plan.Args = []string{outputDir}
	default:
		plan.Mode = ModeSingle
		plan.URL = url
		plan.Args = []string{url, outputDir}
	}

	return plan
}
