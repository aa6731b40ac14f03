// Package console renders preprocessor diagnostics and tables for the
// terminal. Styling is applied only when stdout is a terminal.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/gogpu/shaderui/uicontrol"
)

// Styles for the different message types
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	contextLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F8F8F2"))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#282A36"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9"))

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272A4"))
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath converts an absolute path to a path relative to the working
// directory, leaving it unchanged when that is not possible.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// FormatSourceError renders a directive error in an IDE-parseable form
// (file:line:col: kind: message) followed by the surrounding source lines and
// a caret under the offending column.
func FormatSourceError(file string, err *uicontrol.SourceError) string {
	var output strings.Builder

	pos := err.Span.Start
	if file != "" {
		location := fmt.Sprintf("%s:%d:%d:", ToRelativePath(file), pos.Line, pos.Column)
		output.WriteString(applyStyle(filePathStyle, location))
		output.WriteString(" ")
	}

	style := errorStyle
	if err.Kind == uicontrol.CollisionError {
		style = warningStyle
	}
	output.WriteString(applyStyle(style, err.Kind.String()+":"))
	output.WriteString(" ")
	output.WriteString(err.Message)
	output.WriteString("\n")

	if err.Source != "" && pos.Line > 0 {
		output.WriteString(renderContext(err))
	}

	return output.String()
}

// renderContext renders the error line and its neighbours with line numbers.
func renderContext(err *uicontrol.SourceError) string {
	lines := strings.Split(err.Source, "\n")
	pos := err.Span.Start
	if pos.Line > len(lines) {
		return ""
	}

	first := max(pos.Line-1, 1)
	last := min(pos.Line+1, len(lines))
	width := len(fmt.Sprintf("%d", last))

	var output strings.Builder
	for lineNum := first; lineNum <= last; lineNum++ {
		line := strings.TrimSuffix(lines[lineNum-1], "\r")
		if lineNum != pos.Line && strings.TrimSpace(line) == "" {
			continue
		}

		output.WriteString(applyStyle(lineNumberStyle, fmt.Sprintf("%*d", width, lineNum)))
		output.WriteString(" | ")

		if lineNum != pos.Line {
			output.WriteString(applyStyle(contextLineStyle, line))
			output.WriteString("\n")
			continue
		}

		runes := []rune(line)
		col := pos.Column
		if col >= 1 && col <= len(runes) {
			output.WriteString(applyStyle(contextLineStyle, string(runes[:col-1])))
			output.WriteString(applyStyle(highlightStyle, string(runes[col-1])))
			output.WriteString(applyStyle(contextLineStyle, string(runes[col:])))
		} else {
			output.WriteString(applyStyle(contextLineStyle, line))
		}
		output.WriteString("\n")

		if col >= 1 {
			padding := strings.Repeat(" ", width+3+col-1)
			output.WriteString(padding)
			output.WriteString(applyStyle(errorStyle, "^"))
			output.WriteString("\n")
		}
	}

	return output.String()
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// TableConfig represents configuration for table rendering
type TableConfig struct {
	Headers []string
	Rows    [][]string
	Title   string
}

// RenderTable renders a formatted table using lipgloss
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	var output strings.Builder

	if config.Title != "" {
		output.WriteString(applyStyle(successStyle, config.Title))
		output.WriteString("\n")
	}

	colWidths := make([]int, len(config.Headers))
	for i, header := range config.Headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	output.WriteString(renderTableRow(config.Headers, colWidths, tableHeaderStyle))
	output.WriteString("\n")

	separators := make([]string, len(config.Headers))
	for i, width := range colWidths {
		separators[i] = strings.Repeat("-", width)
	}
	output.WriteString(renderTableRow(separators, colWidths, tableBorderStyle))
	output.WriteString("\n")

	for _, row := range config.Rows {
		output.WriteString(renderTableRow(row, colWidths, tableCellStyle))
		output.WriteString("\n")
	}

	return output.String()
}

// renderTableRow renders a single table row with proper spacing
func renderTableRow(cells []string, colWidths []int, style lipgloss.Style) string {
	var row strings.Builder

	for i, cell := range cells {
		if i >= len(colWidths) {
			break
		}
		padded := cell + strings.Repeat(" ", colWidths[i]-lipgloss.Width(cell))
		row.WriteString(applyStyle(style, padded))
		if i < len(cells)-1 && i < len(colWidths)-1 {
			row.WriteString(applyStyle(tableBorderStyle, " | "))
		}
	}

	return strings.TrimRight(row.String(), " ")
}
