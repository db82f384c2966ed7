// Package errors formats Lumen's fatal diagnostics: a message, the source
// position, and a caret pointing into the offending source line.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lumen-lang/lumen/pkg/token"
)

// Kind classifies which pipeline stage raised the error.
type Kind string

const (
	Lexical    Kind = "LexicalError"
	Syntax     Kind = "SyntaxError"
	Resolution Kind = "ResolutionError"
	Runtime    Kind = "RuntimeError"
)

// CompilerError is a single fatal diagnostic with position and source
// context, used uniformly across the tokenizer, parser, resolver, and
// interpreter.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a CompilerError. Pos may be the zero value when no location
// is available (e.g. an error raised before any token was read).
func New(kind Kind, pos token.Position, source, file, format string, args ...any) *CompilerError {
	return &CompilerError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
		File:    file,
		Pos:     pos,
	}
}

// Error implements the error interface using uncolored formatting.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// caretColor and messageColor render the caret and the message line when
// Format is asked for colored output. EnableColor forces each past
// fatih/color's own NoColor/isatty gate, since the caller (run.go's
// printErr) has already made that call for the whole process.
func caretColor() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c
}

func messageColor() *color.Color {
	c := color.New(color.Bold)
	c.EnableColor()
	return c
}

// Format renders the error with a header, the offending source line, and a
// caret under the column. When useColor is true, the caret and message are
// styled via fatih/color.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s", e.Kind, e.File)
	} else {
		fmt.Fprintf(&sb, "%s", e.Kind)
	}
	if e.Pos.IsValid() {
		fmt.Fprintf(&sb, " (%d:%d)", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString("\n")

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(gutter)+max(e.Pos.Column-1, 0)))
		if useColor {
			sb.WriteString(caretColor().Sprint("^"))
		} else {
			sb.WriteString("^")
		}
		sb.WriteString("\n")
	}

	if useColor {
		sb.WriteString(messageColor().Sprint(e.Message))
	} else {
		sb.WriteString(e.Message)
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// List is a batch of CompilerErrors, produced by the parser's
// error-resynchronization pass.
type List []*CompilerError

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

// Format renders every error in the list, separated by blank lines.
func (l List) Format(useColor bool) string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Format(useColor)
	}
	return strings.Join(parts, "\n\n")
}
