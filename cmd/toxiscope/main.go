package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/subosito/gotenv"

	"github.com/umputun/toxiscope/pkg/analyzer"
	"github.com/umputun/toxiscope/pkg/bluesky"
	"github.com/umputun/toxiscope/pkg/config"
	"github.com/umputun/toxiscope/pkg/toxicity"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"TOXISCOPE_CONFIG" default:"toxiscope.yml" description:"config file"`
	Login  bool   `long:"login" description:"log in to Bluesky first (requires BSKY_USERNAME and BSKY_APP_PASSWORD)"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`

	ListFeedsCmd ListFeedsCommand `command:"list-feeds" description:"list suggested feeds"`
	AnalyzeCmd   AnalyzeCommand   `command:"analyze" description:"analyze feeds for toxicity"`
	ServerCmd    ServerCommand    `command:"server" description:"run the web dashboard"`
}

// CommonOpts is shared by all commands, set by the command handler
type CommonOpts struct {
	Config   string
	Login    bool
	Debug    bool
	Revision string
}

// commander is implemented by all commands to receive common options
type commander interface {
	flags.Commander
	SetCommon(opts CommonOpts)
}

// SetCommon satisfies commander for commands embedding CommonOpts
func (c *CommonOpts) SetCommon(opts CommonOpts) { *c = opts }

var revision = "unknown"

func main() {
	// pick up a local .env if present, real env vars win
	_ = gotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		setupLog(opts.Debug, "BSKY_APP_PASSWORD")

		if opts.Version {
			fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
			return nil
		}

		c, ok := command.(commander)
		if !ok {
			return fmt.Errorf("unsupported command type %T", command)
		}
		c.SetCommon(CommonOpts{Config: opts.Config, Login: opts.Login, Debug: opts.Debug, Revision: revision})
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// makeAnalyzer builds an analyzer from the loaded config,
// logging in first if requested
func makeAnalyzer(ctx context.Context, cfg *config.Config, login bool) (*analyzer.Analyzer, error) {
	feedClient := bluesky.New(cfg.Bluesky)
	scorer := toxicity.New(cfg.Toxicity)
	res := analyzer.New(feedClient, scorer, cfg.Analysis.Workers)

	if login {
		if err := res.Login(ctx, cfg.Bluesky.Handle, cfg.Bluesky.AppPassword); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		log.Printf("[INFO] logged in as %s", cfg.Bluesky.Handle)
	}
	return res, nil
}

func setupLog(dbg bool, secs ...string) {
	// logs go to stderr, stdout is reserved for command output
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
