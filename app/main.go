package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/dbgtoggle/app/toggle"
)

// options are long-only, "-d" and "--disable" are positional and handled by toggle.ModeFromArgs
type options struct {
	Atomic  bool `long:"atomic" description:"write to a temp file and rename it over the target"`
	Dry     bool `long:"dry" description:"report lines to change without writing the file"`
	Debug   bool `long:"dbg" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

// errNoFile is returned when the target file name is missing
var errNoFile = errors.New("file name is required")

func main() {
	var opts options
	p := newParser(&opts)
	args, err := p.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("dbgtoggle %s\n", revision)
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	err = run(opts, args, os.Stdout)
	if errors.Is(err, errNoFile) {
		p.WriteHelp(os.Stderr)
	}
	os.Exit(exitCode(err, args, os.Stdout))
}

// newParser makes the command line parser. Unknown options and "--" are passed through as
// positional args, so the mode rule sees every extra argument as typed.
func newParser(opts *options) *flags.Parser {
	p := flags.NewParser(opts, flags.HelpFlag|flags.IgnoreUnknown)
	p.Usage = "[OPTIONS] <file> [--disable | -d]"
	return p
}

// run toggles the file named by args[0], the rest of args select the mode
func run(opts options, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errNoFile
	}
	filename, mode := args[0], toggle.ModeFromArgs(args[1:])
	log.Printf("[DEBUG] file %s, mode %s, atomic %v, dry %v", filename, mode, opts.Atomic, opts.Dry)

	res, err := toggle.New(toggle.Options{Atomic: opts.Atomic, DryRun: opts.Dry}).Run(filename, mode)
	if err != nil {
		return err
	}

	if !res.Written {
		_, _ = fmt.Fprintf(out, "%s: %d of %d lines would change (%s)\n", res.File, res.Changed, res.Lines, res.Mode)
		return nil
	}
	log.Printf("[INFO] %s: %d of %d lines changed (%s), run with mode %s to revert",
		res.File, res.Changed, res.Lines, res.Mode, res.Mode.Reverse())
	return nil
}

// exitCode reports err to the user and maps it to the process exit code
func exitCode(err error, args []string, out io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoFile):
		return 2
	case errors.Is(err, toggle.ErrFileNotFound):
		_, _ = fmt.Fprintf(out, "File '%s' not found.\n", args[0])
		return 1
	default:
		log.Printf("[ERROR] failed: %v", err)
		return 1
	}
}

func setupLogs(dbg bool) {
	log.Setup(log.Msec)
	if dbg {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}
