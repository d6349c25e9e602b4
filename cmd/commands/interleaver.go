package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	interleaver "github.com/damoonazarpazhooh/interleaver"
	"github.com/damoonazarpazhooh/interleaver/internal/command"
	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/damoonazarpazhooh/interleaver/internal/logger"
	"github.com/kardianos/osext"
	"github.com/palantir/stacktrace"
	"github.com/urfave/cli"
)

const (
	verboseEnv = "INTERLEAVER_VERBOSE"
	noColorEnv = "INTERLEAVER_NO_COLOR"
)

// Flags ...
var Flags = []cli.Flag{
	cli.BoolFlag{
		Name:  "help, h",
		Usage: "show help",
	},
	cli.StringFlag{
		Name:  "split",
		Usage: "split the input file into `PARTS` files",
	},
	cli.StringFlag{
		Name:  "merge",
		Usage: "merge part files, starting with `INPUT`, into the last path given",
	},
	cli.BoolFlag{
		Name:   "verbose",
		Usage:  "log every step to stderr",
		EnvVar: verboseEnv,
	},
	cli.BoolFlag{
		Name:   "no-color",
		Usage:  "disable colored output",
		EnvVar: noColorEnv,
	},
}

type runner struct {
	stdout io.Writer
	stderr io.Writer
	log    *logger.Logger
	// err is the outcome of the command. stacktrace errors implement
	// cli.ExitCoder, so they are never handed back to urfave/cli, which
	// would exit the process on its own.
	err error
}

// Run executes the command line in args and returns the process exit
// status. It is the only place where errors are turned into output.
func Run(args []string, stdout, stderr io.Writer) int {
	stacktrace.DefaultFormat = stacktrace.FormatBrief
	var opts []logger.Option
	if noColor(args) {
		opts = append(opts, logger.NoColor())
	}
	r := &runner{
		stdout: stdout,
		stderr: stderr,
		log:    logger.New(stderr, opts...),
	}
	app := r.newApp(args)
	err := app.Run(args)
	if err == nil {
		err = r.err
	}
	if err == nil {
		return 0
	}
	if errcode.IsParseError(err) {
		r.log.Errorf("argument", "%v", err)
		showUsage(stderr, app)
	} else {
		r.log.Errorf("CLI", "%v", err)
	}
	return errcode.ExitCode(err)
}

// noColor looks for --no-color ahead of flag parsing, so that flag parsing
// errors honour it too.
func noColor(args []string) bool {
	if len(args) > 1 {
		for _, arg := range args[1:] {
			if arg == "--" {
				break
			}
			if arg == "--no-color" || arg == "-no-color" || arg == "--no-color=true" || arg == "-no-color=true" {
				return true
			}
		}
	}
	v, err := strconv.ParseBool(os.Getenv(noColorEnv))
	return err == nil && v
}

func (r *runner) newApp(args []string) *cli.App {
	app := cli.NewApp()
	app.Name = "interleaver"
	app.HelpName = programName(args)
	app.Usage = "File splitter / merger"
	app.HideHelp = true
	app.HideVersion = true
	app.Writer = r.stdout
	app.ErrWriter = r.stderr
	app.Flags = Flags
	app.OnUsageError = r.usageError
	app.Before = r.configure
	app.Action = func(ctx *cli.Context) error {
		r.err = r.dispatch(ctx)
		return nil
	}
	return app
}

func programName(args []string) string {
	exe, err := osext.Executable()
	if err == nil && len(exe) != 0 {
		return filepath.Base(exe)
	}
	if len(args) != 0 && len(args[0]) != 0 {
		return filepath.Base(args[0])
	}
	return "interleaver"
}

func showUsage(w io.Writer, app *cli.App) {
	cli.HelpPrinter(w, command.UsageTemplate, app)
}

// usageError classifies flag parsing failures.
func (r *runner) usageError(ctx *cli.Context, err error, _ bool) error {
	if strings.HasPrefix(err.Error(), "flag needs an argument") {
		r.err = stacktrace.PropagateWithCode(err, errcode.ArgumentCount, "too few arguments")
		return nil
	}
	r.err = stacktrace.PropagateWithCode(err, errcode.UnknownCommand, "unknown argument")
	return nil
}

func (r *runner) configure(ctx *cli.Context) error {
	var opts []logger.Option
	if ctx.Bool("verbose") {
		opts = append(opts, logger.Verbose())
		stacktrace.DefaultFormat = stacktrace.FormatFull
	}
	if ctx.Bool("no-color") {
		opts = append(opts, logger.NoColor())
	}
	r.log = logger.New(r.stderr, opts...)
	return nil
}

func (r *runner) dispatch(ctx *cli.Context) error {
	cmd, err := parse(ctx)
	if err != nil {
		return err
	}
	switch c := cmd.(type) {
	case command.Help:
		showUsage(r.stdout, ctx.App)
		return nil
	case command.Split:
		s, err := r.interleaver()
		if err != nil {
			return err
		}
		written, err := s.SplitFile(context.Background(), c.Source, c.Parts)
		if err != nil {
			return err
		}
		r.log.Infof("CLI", "split (%s) into %s", c.Source, strings.Join(written, ", "))
		return nil
	case command.Merge:
		s, err := r.interleaver()
		if err != nil {
			return err
		}
		err = s.MergeFiles(context.Background(), c.Sources, c.Target)
		if err != nil {
			return err
		}
		r.log.Infof("CLI", "merged %s into (%s)", strings.Join(c.Sources, ", "), c.Target)
		return nil
	}
	return stacktrace.NewError("unhandled command %T", cmd)
}

// parse turns the parsed flags and positional arguments into a command.
func parse(ctx *cli.Context) (command.Command, error) {
	split, merge := ctx.IsSet("split"), ctx.IsSet("merge")
	args := []string(ctx.Args())
	switch {
	case ctx.Bool("help"):
		return command.Help{}, nil
	case split && merge:
		return nil, command.ConflictingCommands()
	case split:
		return command.NewSplit(ctx.String("split"), args)
	case merge:
		return command.NewMerge(append([]string{ctx.String("merge")}, args...))
	case len(args) != 0:
		return nil, command.UnknownCommand(args[0])
	}
	return nil, command.TooFewArguments()
}

func (r *runner) interleaver() (*interleaver.Interleaver, error) {
	opts := []interleaver.Option{
		interleaver.WithLogger(r.log),
	}
	if r.log.IsVerbose() {
		opts = append(opts, interleaver.LogOps())
	}
	return interleaver.New(opts...)
}
