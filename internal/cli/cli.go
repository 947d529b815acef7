package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indaco/nexttag/internal/config"
	"github.com/indaco/nexttag/internal/console"
	"github.com/indaco/nexttag/internal/ghoutput"
	"github.com/indaco/nexttag/internal/git"
	"github.com/indaco/nexttag/internal/printer"
	"github.com/indaco/nexttag/internal/resolver"
	"github.com/indaco/nexttag/internal/semver"
	"github.com/indaco/nexttag/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// TagListerFactory builds the TagLister for a repository directory.
// onError receives tag listing failures, which never abort the run.
type TagListerFactory func(dir string, onError func(error)) resolver.TagLister

// options holds the injectable dependencies of the root command.
type options struct {
	stdout     io.Writer
	newLister  TagListerFactory
	loadConfig func(path, dir string) (*config.Config, error)
}

// Option configures the root command.
type Option func(*options)

// WithStdout sets where the computed version is printed.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithTagLister replaces the git-backed tag lister.
func WithTagLister(f TagListerFactory) Option {
	return func(o *options) { o.newLister = f }
}

func defaultTagLister(dir string, onError func(error)) resolver.TagLister {
	l := git.NewOSTagLister(dir)
	l.OnError = onError
	return l
}

// New builds and returns the root CLI command for nexttag.
func New(opts ...Option) *urfavecli.Command {
	o := &options{
		stdout:     os.Stdout,
		newLister:  defaultTagLister,
		loadConfig: config.LoadConfigFn,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &urfavecli.Command{
		Name:    "nexttag",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Print the next patch release version based on existing v<major>.<minor>.<patch> git tags",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "github-output",
				Usage:   "File to append version=<value> to (skipped when empty)",
				Sources: urfavecli.EnvVars("GITHUB_OUTPUT"),
			},
			&urfavecli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Repository directory to read tags from",
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Usage:       "Path to config file",
				DefaultText: config.DefaultConfigFile,
				Sources:     urfavecli.EnvVars("NEXTTAG_CONFIG"),
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Print diagnostics to stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || console.NoColorRequested())
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return o.run(ctx, cmd)
		},
	}
}

// run lists tags, selects the next version and emits it.
func (o *options) run(ctx context.Context, cmd *urfavecli.Command) error {
	dirFlag := cmd.String("dir")

	// Only a failing output file may fail the run; a broken config is ignored.
	cfg, err := o.loadConfig(cmd.String("config"), dirFlag)
	if err != nil {
		printer.PrintWarning(fmt.Sprintf("Ignoring config: %v", err))
		cfg = &config.Config{}
	}

	verbose := cmd.Bool("verbose") || cfg.Verbose
	outputPath := cfg.OutputPath(cmd.String("github-output"))

	lister := o.newLister(cfg.RepoDir(dirFlag), func(err error) {
		if verbose {
			printer.PrintWarning(fmt.Sprintf("Could not list tags, assuming none: %v", err))
		}
	})

	res := resolver.New(lister).Resolve(ctx)
	if verbose {
		reportResult(res)
	}

	if outputPath == "" && console.IsGitHubActions() {
		printer.PrintWarning("GITHUB_OUTPUT is not set; the version is only printed to stdout")
	}

	emitter := ghoutput.NewEmitter(o.stdout, outputPath, nil)
	if err := emitter.Emit(res.Next); err != nil {
		return err
	}

	if verbose && outputPath != "" {
		printer.PrintFaint(fmt.Sprintf("Wrote %s=%s to %s", ghoutput.OutputKey, res.Next, outputPath))
	}
	return nil
}

func reportResult(res resolver.Result) {
	printer.PrintFaint(fmt.Sprintf("Examined %d tag(s), %d skipped", res.Considered, len(res.Skipped)))
	if !res.Found {
		printer.PrintInfo(fmt.Sprintf("No release tags found, using %s", semver.Fallback))
		return
	}
	printer.PrintInfo(fmt.Sprintf("Latest release tag: %s", printer.Bold(res.Latest.Tag())))
	printer.PrintSuccess(fmt.Sprintf("Next version: %s", res.Next))
}
