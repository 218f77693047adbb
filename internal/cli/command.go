package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/linkdu/internal/integration"
	"github.com/idelchi/linkdu/internal/linkdu"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// toggle describes a boolean flag.
type toggle struct {
	name      string
	shorthand string
	usage     string
	target    *bool
}

// toggles maps every boolean flag to the option it sets.
func toggles(options *linkdu.Options) []toggle {
	return []toggle{
		{"buffer", "b", "Buffer output", &options.Buffer},
		{"duplicates", "d", "Include multiple instances of the same file or directory", &options.AllowDuplicates},
		{"flamegraph", "f", "Output disk usage in flamegraph-friendly format (implies --list)", &options.Flamegraph},
		{"full-name", "F", "Do not remove the root from file paths", &options.FullName},
		{"list", "l", "List each file instead of the total", &options.List},
		{"size-first", "r", "Print the size before the path", &options.SizeFirst},
		{"human-readable", "H", "Print sizes in powers of 1024 (e.g. 1.5 MiB)", &options.HumanReadable},
	}
}

// registerFlags adds all flags to flags, bound to options.
func registerFlags(flags *pflag.FlagSet, options *linkdu.Options) {
	flags.SortFlags = false

	for _, t := range toggles(options) {
		flags.BoolVarP(t.target, t.name, t.shorthand, false, t.usage)
	}

	flags.StringSliceVarP(
		&options.Excludes,
		"exclude",
		"e",
		[]string{},
		"Glob patterns of paths or names to skip (e.g., '*.log,node_modules')",
	)
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")
}

// forwarded names the flags that --init bakes into the shell integration.
var forwarded = []string{"buffer", "duplicates", "exclude"}

// integrationFlags returns the forwarded flags set on the command line, in
// "--name=value" form.
func integrationFlags(flags *pflag.FlagSet) []string {
	var args []string

	for _, name := range forwarded {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		switch value := flag.Value.(type) {
		case pflag.SliceValue:
			for _, v := range value.GetSlice() {
				args = append(args, "--"+name+"="+v)
			}
		default:
			if value.Type() == "bool" && value.String() == "true" {
				args = append(args, "--"+name)
			} else {
				args = append(args, "--"+name+"="+value.String())
			}
		}
	}

	return args
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options linkdu.Options

	cmd := &cobra.Command{
		Use:   "linkdu [flags] [path...]",
		Short: "Report disk usage without counting hard-linked files twice",
		Long: heredoc.Doc(`
			linkdu reports the disk usage of one or more paths.

			Files reachable through several hard links, and directories reached more than once,
			are counted a single time unless --duplicates is given. Sizes are the apparent file
			lengths in bytes. Symbolic links below a path are not followed.

			Positional Arguments:
			  path    Paths to analyze. Defaults to the current directory if not specified.

			Modes:
			  By default one "<path> <size>" line is printed per path.
			  Use --list to print one line per file instead, and --flamegraph for folded
			  "a;b;c <size>" lines that can be fed to flamegraph tools.
			  With a single path, listed files are shown relative to it unless --full-name is given.

			The '--init' flag outputs a zsh function that browses the largest files with 'fzf'.
			--buffer, --duplicates and --exclude given alongside '--init' become its defaults.
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Integration {
				rendered, err := integration.Render(integrationFlags(cmd.Flags())...)
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return err
			}

			if len(args) == 0 {
				options.Roots = []string{"."}
			} else {
				options.Roots = args
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerFlags(cmd.Flags(), &options)

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
