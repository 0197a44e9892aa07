package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/archive"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/collection"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
)

func TestInfo_RequiresURL(t *testing.T) {
	err := Info(context.Background(), &stubClient{}, newMemFS(), testConfig(), InfoOpts{}, &bytes.Buffer{}, &bytes.Buffer{})
	if errors.GetCode(err) != errors.EUsage {
		t.Fatalf("expected E_USAGE, got %v", err)
	}
}

func TestInfo_ShowsResolvedPlan(t *testing.T) {
	client := &stubClient{probeInfo: collection.Info{Uploader: "user"}}
	fsys := newMemFS()
	cfg := testConfig()
	cfg.UseCollectionFolder = true
	outDir := t.TempDir()

	archivePath := archive.Path(filepath.Join(outDir, "Chill Mix"), testURL)
	fsys.files[filepath.ToSlash(archivePath)] = []byte("tiktok 1\ntiktok 2\n")

	var stdout bytes.Buffer
	err := Info(context.Background(), client, fsys, cfg,
		InfoOpts{URL: testURL, OutputDir: outDir}, &stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{
		"Uploader   : user",
		"Title      : Chill Mix",
		"Folder     : Chill Mix",
		"Archived   : 2 item(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestInfo_ProbeFailureStillReports(t *testing.T) {
	client := &stubClient{probeErr: errors.New(errors.EProbeFailed, "boom")}
	var stdout, stderr bytes.Buffer

	err := Info(context.Background(), client, newMemFS(), testConfig(),
		InfoOpts{URL: testURL, OutputDir: t.TempDir()}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("probe failure must not fail info: %v", err)
	}
	if !strings.Contains(stdout.String(), "Title      : Chill Mix") {
		t.Errorf("URL-derived title missing:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Archived   : none yet") {
		t.Errorf("missing empty-archive line:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "probe failed") {
		t.Errorf("missing warning:\n%s", stderr.String())
	}
}
