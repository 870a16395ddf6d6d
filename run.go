package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"moul.io/ksc2jpeg/pkg/convert"
	"moul.io/ksc2jpeg/pkg/logfile"
	"moul.io/ksc2jpeg/pkg/platform"
)

func run(c *cli.Context) error {
	return execute(c, afero.NewOsFs(), os.Stdout, os.Stderr)
}

func execute(c *cli.Context, fs afero.Fs, stdout, stderr io.Writer) error {
	cfg, err := configFromContext(c, stderr)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if cfg.outDir != "" {
		if err := fs.MkdirAll(cfg.outDir, 0775); err != nil {
			return cli.NewExitError(fmt.Sprintf("Failed to create output directory: %s", cfg.outDir), 1)
		}
	}

	logger, closer, err := logfile.Open(fs, cfg.logPath)
	if err != nil {
		fmt.Fprintf(stderr, "WARNING: couldn't open log file: %s (logging disabled)\n", cfg.logPath)
		logger = logfile.Discard()
	} else {
		defer closer.Close()
	}

	conv := convert.New(fs)
	conv.Log = logger
	conv.Stdout = stdout
	conv.Stderr = stderr
	conv.OutDir = cfg.outDir
	conv.MaxSize = cfg.maxSize
	conv.Quiet = cfg.quiet
	conv.Color = cfg.color
	conv.AutoOpen = cfg.autoOpen
	if cfg.autoOpen {
		launcher, err := platform.NewLauncher(cfg.viewer)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		conv.Launcher = launcher
	}

	if !cfg.recursive {
		if fi, err := fs.Stat(cfg.input); err != nil || !fi.Mode().IsRegular() {
			logger.Errorf("input not found: %s", cfg.input)
			return cli.NewExitError(fmt.Sprintf("Input not found: %s", cfg.input), 1)
		}
		if err := conv.Process(cfg.input, cfg.output); err != nil {
			return cli.NewExitError("", 1)
		}
		return nil
	}

	summary, err := conv.Walk(cfg.startDir)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Start directory not found: %s", cfg.startDir), 1)
	}
	if !cfg.quiet {
		summary.Render(stdout)
	}
	return nil
}
