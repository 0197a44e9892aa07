package cobra

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tiktokcdl/tiktok-collection-dl/internal/config"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/errors"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/exec"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/fs"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/tty"
	"github.com/tiktokcdl/tiktok-collection-dl/internal/ytdlp"
)

// deps bundles the resolved runtime pieces a subcommand needs.
type deps struct {
	resolved config.Resolved
	runner   *exec.RealRunner
	fsys     fs.FS
	client   ytdlp.Client

	// childEnv is the yt-dlp environment with the venv PATH applied.
	childEnv []string

	cwd  string
	home string
}

// buildDeps resolves config and constructs the real exec/fs/yt-dlp stack.
// overrides are flag-sourced config values keyed by config key name.
func buildDeps(cmd *cobra.Command, overrides map[string]any) (*deps, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to get working directory", err)
	}
	// A missing home dir just drops the global config layer.
	home, _ := os.UserHomeDir()

	resolved, err := config.Resolve(cwd, home, globalOpts.ConfigFile, overrides)
	if err != nil {
		return nil, err
	}

	childEnv := config.Environ(os.Environ(), resolved.Config.VenvPath)
	runner := exec.NewRealRunner()

	return &deps{
		resolved: resolved,
		runner:   runner,
		fsys:     fs.NewRealFS(),
		client:   ytdlp.NewExecClient(runner, childEnv, cmd.OutOrStdout(), cmd.ErrOrStderr()),
		childEnv: childEnv,
		cwd:      cwd,
		home:     home,
	}, nil
}

// consoleTitle reports whether yt-dlp may emit terminal title updates.
func consoleTitle() bool {
	return tty.IsTTY(os.Stdout)
}

// signalContext returns a context canceled on SIGINT so a running yt-dlp
// invocation surfaces as E_INTERRUPTED with exit code 130.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// splitDash separates positional args from pass-through yt-dlp args after "--".
func splitDash(cmd *cobra.Command, args []string) (positional, passthrough []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// downloadFlags are the per-invocation config overrides shared by the
// download commands. Only flags the user actually set become overrides.
type downloadFlags struct {
	audioFormat      string
	audioQuality     string
	outputTemplate   string
	collectionFolder bool
	embedAlbum       bool
	venvPath         string
}

func addDownloadFlags(cmd *cobra.Command, f *downloadFlags) {
	cmd.Flags().StringVar(&f.audioFormat, "audio-format", "", "audio format passed to yt-dlp (default from config)")
	cmd.Flags().StringVar(&f.audioQuality, "audio-quality", "", "audio quality passed to yt-dlp (default from config)")
	cmd.Flags().StringVar(&f.outputTemplate, "output-template", "", "yt-dlp output template (default from config)")
	cmd.Flags().BoolVar(&f.collectionFolder, "collection-folder", false, "download into a per-collection folder")
	cmd.Flags().BoolVar(&f.embedAlbum, "embed-album", false, "embed the collection title as the album tag")
	cmd.Flags().StringVar(&f.venvPath, "venv", "", "python virtualenv holding yt-dlp (default from config)")
}

func (f *downloadFlags) overrides(cmd *cobra.Command) map[string]any {
	ov := map[string]any{}
	set := func(flag, key string, val any) {
		if cmd.Flags().Changed(flag) {
			ov[key] = val
		}
	}
	set("audio-format", "audio_format", f.audioFormat)
	set("audio-quality", "audio_quality", f.audioQuality)
	set("output-template", "output_template", f.outputTemplate)
	set("collection-folder", "use_collection_folder", f.collectionFolder)
	set("embed-album", "embed_collection_as_album", f.embedAlbum)
	set("venv", "venv_path", f.venvPath)
	return ov
}
