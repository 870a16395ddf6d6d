package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/term"

	"moul.io/ksc2jpeg/pkg/logfile"
)

type config struct {
	recursive bool
	startDir  string
	input     string
	output    string

	outDir   string
	logPath  string
	viewer   string
	autoOpen bool
	quiet    bool
	color    bool
	maxSize  uint64
}

// valueFlags take a separate argument when not written as --flag=value.
var valueFlags = map[string]bool{
	"-o": true, "--o": true, "-output-dir": true, "--output-dir": true,
	"-log": true, "--log": true,
	"-viewer": true, "--viewer": true,
	"-max-size": true, "--max-size": true,
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:   "recursive, r",
			Usage:  "Recursively convert all .ksc files below [dir] (default: current directory)",
			EnvVar: "KSC2JPEG_RECURSIVE",
		},
		cli.StringFlag{
			Name:   "output-dir, o",
			Usage:  "Write JPEGs into this directory, preserving relative structure",
			EnvVar: "KSC2JPEG_OUTPUT_DIR",
		},
		cli.BoolFlag{
			Name:   "open",
			Usage:  "Open each converted JPEG with the default viewer",
			EnvVar: "KSC2JPEG_OPEN",
		},
		cli.StringFlag{
			Name:   "viewer",
			Usage:  "Command used by --open, {} is replaced by the file path",
			EnvVar: "KSC2JPEG_VIEWER",
		},
		cli.StringFlag{
			Name:   "log",
			Value:  logfile.DefaultPath,
			Usage:  "Append progress to a log file",
			EnvVar: "KSC2JPEG_LOG",
		},
		cli.BoolFlag{
			Name:   "quiet, q",
			Usage:  "Quiet mode (errors only)",
			EnvVar: "KSC2JPEG_QUIET",
		},
		cli.StringFlag{
			Name:   "max-size",
			Value:  "1GiB",
			Usage:  "Refuse to load input files larger than this",
			EnvVar: "KSC2JPEG_MAX_SIZE",
		},
		cli.BoolFlag{
			Name:   "no-color",
			Usage:  "Disable coloured output",
			EnvVar: "NO_COLOR",
		},
	}
}

// hoistFlags moves flags in front of positional arguments so they can be
// given in any order, as in "ksc2jpeg a.ksc --open".
func hoistFlags(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := []string{args[0]}
	var positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			positional = append(positional, rest[i+1:]...)
			i = len(rest)
		case len(arg) > 1 && arg[0] == '-':
			out = append(out, arg)
			if valueFlags[arg] && i+1 < len(rest) {
				i++
				out = append(out, rest[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func configFromContext(c *cli.Context, stderr io.Writer) (*config, error) {
	cfg := &config{
		recursive: c.Bool("recursive"),
		outDir:    c.String("output-dir"),
		logPath:   c.String("log"),
		viewer:    c.String("viewer"),
		autoOpen:  c.Bool("open"),
		quiet:     c.Bool("quiet"),
		color:     !c.Bool("no-color") && isTerminal(os.Stdout),
	}

	size, err := humanize.ParseBytes(c.String("max-size"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --max-size %q", c.String("max-size"))
	}
	cfg.maxSize = size

	args := c.Args()
	if cfg.recursive {
		cfg.startDir = args.First()
		args = args.Tail()
	} else if len(args) > 0 {
		cfg.input = args[0]
		args = args.Tail()
		if len(args) > 0 {
			cfg.output = args[0]
			args = args.Tail()
		}
	}
	for _, extra := range args {
		fmt.Fprintf(stderr, "Unexpected extra argument: %s\n", extra)
	}

	// no input at all means scanning the current directory
	if !cfg.recursive && cfg.input == "" {
		cfg.recursive = true
	}
	if cfg.recursive && strings.TrimSpace(cfg.startDir) == "" {
		cfg.startDir = "."
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
