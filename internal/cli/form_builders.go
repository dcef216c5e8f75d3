package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sprintsumHuhTheme returns a huh theme using the formatter palette.
func sprintsumHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// boardPathInput returns a huh.Input for a board snapshot path.
func boardPathInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Board snapshot").
		Description(".json, .yaml, .yml, .db or .sqlite").
		Placeholder("board.json").
		Value(value).
		Validate(validateBoardPath)
}

// boardPathForm returns a themed single-field Form asking for the board.
func boardPathForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(boardPathInput(value)),
	).WithTheme(sprintsumHuhTheme()).WithShowHelp(false)
}

func askBoardPath() (string, error) {
	var path string
	if err := boardPathForm(&path).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errNoBoard
		}
		return "", err
	}
	return path, nil
}

// validateBoardPath accepts an existing file with a supported extension.
func validateBoardPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("path is required")
	}
	if s == StdinPath {
		return errors.New("stdin cannot be used from the prompt")
	}
	if _, err := sourceKindFor(s); err != nil {
		return err
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
