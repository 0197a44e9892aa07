package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestRun_SingleFromEnv(t *testing.T) {
	client := &stubClient{}
	outDir := t.TempDir()
	var stdout bytes.Buffer

	err := Run(context.Background(), client, newMemFS(), testConfig(), RunOpts{
		Getenv: envMap(map[string]string{
			"COLLECTION_URL": testURL,
			"OUTPUT_DIR":     outDir,
		}),
	}, &stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.downloads) != 1 || client.downloads[0].URL != testURL {
		t.Fatalf("downloads = %#v", client.downloads)
	}
	if !strings.Contains(stdout.String(), "Mode       : single") {
		t.Errorf("missing mode banner:\n%s", stdout.String())
	}
}

func TestRun_BatchFromEnv(t *testing.T) {
	client := &stubClient{}
	fsys := newMemFS()
	outDir := t.TempDir()
	seedList(t, fsys, outDir, batchURLa+"\n")
	var stdout bytes.Buffer

	err := Run(context.Background(), client, fsys, testConfig(), RunOpts{
		Getenv: envMap(map[string]string{"OUTPUT_DIR": outDir}),
	}, &stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.downloads) != 1 {
		t.Fatalf("downloads = %d, want 1", len(client.downloads))
	}
	if !strings.Contains(stdout.String(), "Mode       : batch") {
		t.Errorf("missing mode banner:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), filepath.Join(outDir, "list.txt")) {
		t.Errorf("missing list path in banner:\n%s", stdout.String())
	}
}

func TestRun_DefaultsToBatchInDefaultDir(t *testing.T) {
	fsys := newMemFS()
	cfg := testConfig()
	cfg.DefaultOutputDir = t.TempDir()
	seedList(t, fsys, cfg.DefaultOutputDir, batchURLa+"\n")

	err := Run(context.Background(), &stubClient{}, fsys, cfg, RunOpts{
		Getenv: envMap(nil),
	}, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_WhitespaceEnvIsUnset(t *testing.T) {
	fsys := newMemFS()
	cfg := testConfig()
	cfg.DefaultOutputDir = t.TempDir()
	seedList(t, fsys, cfg.DefaultOutputDir, batchURLa+"\n")
	client := &stubClient{}

	err := Run(context.Background(), client, fsys, cfg, RunOpts{
		Getenv: envMap(map[string]string{"COLLECTION_URL": "   "}),
	}, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.downloads) != 1 || client.downloads[0].URL != batchURLa {
		t.Errorf("whitespace URL should fall through to batch mode: %#v", client.downloads)
	}
}
