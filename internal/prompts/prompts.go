// Package prompts provides the interactive terminal forms for the
// calculators and the styled result output shared by all commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form = theme.Form.MarginTop(1)
	theme.Group = theme.Group.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult writes a titled block of results with aligned labels.
func PrintResult(w io.Writer, title string, fields []ResultField) {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))

	width := 0
	for _, f := range fields {
		width = max(width, len([]rune(f.Label)))
	}

	_, _ = fmt.Fprintln(w, heading.Render(title))
	for _, f := range fields {
		pad := strings.Repeat(" ", width-len([]rune(f.Label)))
		_, _ = fmt.Fprintf(w, "  %s%s  %s\n", label.Render(f.Label+":"), pad, value.Render(f.Value))
	}
}

// PrintWarning writes a single highlighted note, used for fallbacks.
func PrintWarning(w io.Writer, msg string) {
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9f43"))
	_, _ = fmt.Fprintln(w, warn.Render("! "+msg))
}

// minFloat returns a validator accepting numbers of at least min.
func minFloat(min float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if v < min {
			return fmt.Errorf("must be at least %g", min)
		}
		return nil
	}
}

// minInt returns a validator accepting whole numbers of at least min.
func minInt(min int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if v < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

// parseFloats converts already validated inputs.
func parseFloats(raw ...string) []float64 {
	out := make([]float64, len(raw))
	for i, s := range raw {
		out[i], _ = strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return out
}

func numberInput(title string, value *string, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Prompt(": ").
		Inline(true).
		Value(value).
		Validate(validate)
}
