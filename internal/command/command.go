// Package command holds the commands the CLI understands. Each command only
// carries the fields it needs and is validated when it is constructed.
package command

import (
	"strconv"
	"strings"

	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/palantir/stacktrace"
)

// Command is one of Help, Split or Merge.
type Command interface {
	isCommand()
}

// Help prints usage.
type Help struct{}

// Split splits Source into Parts files.
type Split struct {
	Source string
	Parts  int
}

// Merge merges Sources, in order, into Target.
type Merge struct {
	Sources []string
	Target  string
}

func (Help) isCommand()  {}
func (Split) isCommand() {}
func (Merge) isCommand() {}

// NewSplit validates the part count and the remaining arguments of a split.
// args must hold exactly the input path.
func NewSplit(parts string, args []string) (Split, error) {
	if len(args) != 1 {
		err := stacktrace.NewErrorWithCode(errcode.ArgumentCount, "wrong number of arguments: --split takes a part count and one input file")
		return Split{}, err
	}
	n, err := ParsePositiveInteger(parts)
	if err != nil {
		return Split{}, err
	}
	return Split{Source: args[0], Parts: n}, nil
}

// NewMerge validates the paths of a merge: at least two inputs followed by
// the output path.
func NewMerge(paths []string) (Merge, error) {
	if len(paths) < 3 {
		err := stacktrace.NewErrorWithCode(errcode.ArgumentCount, "too few arguments: --merge takes at least two input files and an output file")
		return Merge{}, err
	}
	sources := make([]string, len(paths)-1)
	copy(sources, paths)
	return Merge{Sources: sources, Target: paths[len(paths)-1]}, nil
}

// ParsePositiveInteger parses a base 10 integer greater than zero. A single
// leading "+" is allowed.
func ParsePositiveInteger(arg string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(arg, "+"), 10, 0)
	if err != nil || n == 0 || n > uint64(maxInt) {
		err = stacktrace.NewErrorWithCode(errcode.InvalidPositiveInteger, "not a positive integer: %s", arg)
		return 0, err
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

// UnknownCommand reports an argument that does not name a command.
func UnknownCommand(arg string) error {
	return stacktrace.NewErrorWithCode(errcode.UnknownCommand, "unknown argument: %s", arg)
}

// ConflictingCommands reports that more than one command was requested.
func ConflictingCommands() error {
	return stacktrace.NewErrorWithCode(errcode.UnknownCommand, "--split and --merge can not be used together")
}

// TooFewArguments reports an invocation without a command.
func TooFewArguments() error {
	return stacktrace.NewErrorWithCode(errcode.ArgumentCount, "too few arguments")
}
