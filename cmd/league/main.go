// Command league prints league standings from a list of game results.
//
// Usage:
//
//	league [flags] [FILE]
//
// Results are read from FILE, or from stdin when FILE is omitted or "-".
// Each line has the form "Lions 3, Snakes 1".
//
// Flags:
//
//	--format      output format: text (default) or table
//	--log-level   debug, info, warn or error
//	--log-format  text or json
//	--version     print version and exit
//
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/utakatalp/league-ranking/internal/app"
	"github.com/utakatalp/league-ranking/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
// Diagnostics are written to stderr as plain text so a malformed line
// appears exactly as it was read.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("league", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", "", "output format: text or table")
	logLevelFlag := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormatFlag := fs.String("log-format", "", "log format: text or json")
	versionFlag := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: league [flags] [FILE]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, app.BuildVersion())
		return 0
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "league: load config: %v\n", err)
		return 1
	}

	// CLI flags override config.
	if *formatFlag != "" {
		cfg.Output.Format = *formatFlag
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}
	if *logFormatFlag != "" {
		cfg.Log.Format = *logFormatFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "league: invalid config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(stderr, cfg.Log)

	lines, err := app.ReadInput(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "league: %v\n", err)
		return 1
	}

	if err := app.Run(logger, lines, stdout, cfg.Output.Format); err != nil {
		fmt.Fprintf(stderr, "league: %v\n", err)
		return 1
	}
	return 0
}
