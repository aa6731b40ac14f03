// Command uicontrolc is the shaderui preprocessor CLI.
//
// Usage:
//
//	uicontrolc [command] [flags] <input>...
//
// Examples:
//
//	uicontrolc strip shader.glsl               # Print source with comments blanked
//	uicontrolc parse shader.glsl               # Print controls as YAML
//	uicontrolc parse --format json --code *.glsl
//	uicontrolc check --watch shaders/*.glsl    # Re-check on every save
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shaderui/internal/console"
)

// Build-time variables
var (
	version = "dev"
)

// errDiagnostics is returned when directive errors were already reported.
var errDiagnostics = errors.New("directive errors reported")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "uicontrolc",
		Short: "Extract #uicontrol declarations from shader source",
		Long: `uicontrolc strips comments and #uicontrol directives from shader source
without moving any remaining line or column, and reports the declared controls.

Directives have the form:
  #uicontrol <valueType> <name> <kind>(<key>=<value>, ...)

Supported kinds are slider (float, int, uint), color (vec3) and checkbox (bool).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "configuration file (default: ./.shaderui.yaml if present)")
	pf.StringVar(&flags.collision, "collision", "", "duplicate control policy: first, last or drop")
	pf.StringVar(&flags.blank, "blank", "", "directive line blanking: empty or spaces")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newStripCmd(flags),
		newParseCmd(flags),
		newCheckCmd(flags),
	)

	return rootCmd
}

func newStripCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "strip <file>",
		Short: "Print the source with every comment replaced by spaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			return a.strip(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func newParseCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		code   bool
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Print the controls declared in each file",
		Long: `Print the controls declared in each file.

Files are processed in parallel and reported in argument order. Directive
errors are printed to stderr and make the command exit with status 1.

Examples:
  uicontrolc parse shader.glsl
  uicontrolc parse --format json a.glsl b.glsl
  uicontrolc parse --format table --code shader.glsl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			return a.parse(args, parseOptions{format: format, code: code, jobs: jobs})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json or table")
	cmd.Flags().BoolVar(&code, "code", false, "include the preprocessed code in the output")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", defaultJobs(), "number of files processed in parallel")

	return cmd
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report directive errors without printing controls",
		Long: `Report directive errors without printing controls.

With --watch the files are checked again whenever they change, until
interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if watch {
				return a.watch(cmd.Context(), args)
			}
			return a.check(args)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check files when they change")

	return cmd
}
