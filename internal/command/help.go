package command

// UsageTemplate is rendered by cli.HelpPrinter with the *cli.App as data.
const UsageTemplate = `{{.Usage}}

{{.HelpName}} --help
 * show this help.

{{.HelpName}} --merge <input file 1> <input file 2> ... <output file>
 * merge input file 1, input file 2, ... into output file.

{{.HelpName}} --split <parts> <input file>
 * split input file into <parts> files named <input file>1 ... <input file><parts>.

Options:
 --verbose   log every step to stderr [$INTERLEAVER_VERBOSE]
 --no-color  disable colored output [$INTERLEAVER_NO_COLOR]
 --          end of options; file names starting with "-" go after it,
             e.g. {{.HelpName}} --split 2 -- -data.bin
`
