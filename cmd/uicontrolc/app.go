package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/gogpu/shaderui"
	"github.com/gogpu/shaderui/comment"
	"github.com/gogpu/shaderui/internal/config"
	"github.com/gogpu/shaderui/internal/console"
	"github.com/gogpu/shaderui/internal/logger"
	"github.com/gogpu/shaderui/uicontrol"
)

type globalFlags struct {
	configPath string
	collision  string
	blank      string
	verbose    bool
	logFormat  string
}

// app carries the resolved settings of one command invocation.
type app struct {
	cfg    config.Config
	opts   uicontrol.Options
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	log, err := logger.New(cmd.ErrOrStderr(), logger.Format(flags.logFormat), flags.verbose)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultFile)
	}
	if err != nil {
		return nil, err
	}

	if flags.collision != "" {
		cfg.Collision = flags.collision
	}
	if flags.blank != "" {
		cfg.Blank = flags.blank
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	log.Debug("configuration resolved",
		"collision", opts.Collision.String(),
		"blank", opts.Blank.String(),
		"format", cfg.Format)

	return &app{
		cfg:    cfg,
		opts:   opts,
		log:    log,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}, nil
}

func defaultJobs() int {
	return runtime.GOMAXPROCS(0)
}

func (a *app) strip(path, output string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	stripped := comment.Strip(string(source))
	a.log.Debug("stripped comments", "file", path, "bytes", len(stripped))

	if output == "" {
		_, err = io.WriteString(a.stdout, stripped)
		return err
	}
	if err := os.WriteFile(output, []byte(stripped), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintln(a.stderr, console.FormatSuccessMessage(fmt.Sprintf("Stripped %s to %s", path, output)))
	return nil
}

// fileReport is the outcome of preprocessing one file.
type fileReport struct {
	index  int
	path   string
	result *uicontrol.Result
	err    error
}

// preprocess runs the pipeline over paths with at most jobs files in flight.
// Reports are returned in the order of paths.
func (a *app) preprocess(paths []string, jobs int) []fileReport {
	if jobs < 1 {
		jobs = 1
	}

	p := pool.NewWithResults[fileReport]().WithMaxGoroutines(jobs)
	for i, path := range paths {
		p.Go(func() fileReport {
			return a.preprocessFile(i, path)
		})
	}
	reports := p.Wait()

	slices.SortFunc(reports, func(x, y fileReport) int { return x.index - y.index })
	return reports
}

func (a *app) preprocessFile(index int, path string) fileReport {
	report := fileReport{index: index, path: path}

	source, err := os.ReadFile(path)
	if err != nil {
		report.err = fmt.Errorf("failed to read %s: %w", path, err)
		return report
	}

	report.result = shaderui.PreprocessWithOptions(string(source), a.opts)
	a.log.Debug("preprocessed",
		"file", path,
		"controls", report.result.Controls.Len(),
		"errors", report.result.Errors.Len())
	return report
}

// reportErrors prints read failures and directive errors to stderr and
// reports whether there were any.
func (a *app) reportErrors(reports []fileReport) bool {
	failed := false
	for _, r := range reports {
		if r.err != nil {
			fmt.Fprintln(a.stderr, console.FormatErrorMessage(r.err.Error()))
			failed = true
			continue
		}
		for _, e := range r.result.Errors {
			fmt.Fprint(a.stderr, console.FormatSourceError(r.path, e))
			failed = true
		}
	}
	return failed
}

type parseOptions struct {
	format string
	code   bool
	jobs   int
}

func (a *app) parse(paths []string, opts parseOptions) error {
	reports := a.preprocess(paths, opts.jobs)

	var err error
	switch opts.format {
	case config.FormatYAML:
		err = a.writeYAML(reports, opts.code)
	case config.FormatJSON:
		err = a.writeJSON(reports, opts.code)
	case config.FormatTable:
		a.writeTables(reports, opts.code)
	default:
		return fmt.Errorf("invalid output format %q (expected yaml, json or table)", opts.format)
	}
	if err != nil {
		return err
	}

	if a.reportErrors(reports) {
		return errDiagnostics
	}
	return nil
}

func (a *app) check(paths []string) error {
	reports := a.preprocess(paths, defaultJobs())
	if a.reportErrors(reports) {
		return errDiagnostics
	}
	for _, r := range reports {
		fmt.Fprintln(a.stdout, console.FormatSuccessMessage(
			fmt.Sprintf("%s: %d controls", console.ToRelativePath(r.path), r.result.Controls.Len())))
	}
	return nil
}

// output is the serialized form of one file's result.
type output struct {
	File     string              `json:"file" yaml:"file"`
	Code     string              `json:"code,omitempty" yaml:"code,omitempty"`
	Controls *uicontrol.Controls `json:"controls" yaml:"controls"`
	Errors   []errorOutput       `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type errorOutput struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func outputs(reports []fileReport, code bool) []output {
	outs := make([]output, 0, len(reports))
	for _, r := range reports {
		if r.err != nil {
			continue
		}
		out := output{File: r.path, Controls: r.result.Controls}
		if code {
			out.Code = r.result.Code
		}
		for _, e := range r.result.Errors {
			out.Errors = append(out.Errors, errorOutput{
				Kind:    e.Kind.String(),
				Message: e.Message,
				Line:    e.Span.Start.Line,
				Column:  e.Span.Start.Column,
			})
		}
		outs = append(outs, out)
	}
	return outs
}

func (a *app) writeYAML(reports []fileReport, code bool) error {
	for i, out := range outputs(reports, code) {
		data, err := yaml.MarshalWithOptions(out, yaml.UseLiteralStyleIfMultiline(true))
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", out.File, err)
		}
		if i > 0 {
			fmt.Fprintln(a.stdout, "---")
		}
		if _, err := a.stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeJSON(reports []fileReport, code bool) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs(reports, code)); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (a *app) writeTables(reports []fileReport, code bool) {
	for _, out := range outputs(reports, code) {
		rows := make([][]string, 0, out.Controls.Len())
		for name, ctl := range out.Controls.All() {
			rows = append(rows, []string{name, ctl.Kind().String(), ctl.Type().String(), describeControl(ctl)})
		}
		fmt.Fprint(a.stdout, console.RenderTable(console.TableConfig{
			Title:   console.ToRelativePath(out.File),
			Headers: []string{"Name", "Kind", "Type", "Parameters"},
			Rows:    rows,
		}))
		if code {
			fmt.Fprint(a.stdout, out.Code)
		}
	}
}

// describeControl summarizes the kind-specific parameters of ctl.
func describeControl(ctl uicontrol.Control) string {
	switch c := ctl.(type) {
	case *uicontrol.Slider:
		return fmt.Sprintf("min=%s max=%s default=%s step=%s",
			formatFloat(c.Min), formatFloat(c.Max), formatFloat(c.Default), formatFloat(c.Step))
	case *uicontrol.Color:
		return "default=" + strconv.Quote(c.Default)
	case *uicontrol.Checkbox:
		return "default=" + strconv.FormatBool(c.Default)
	default:
		return ""
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
