package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	derr "github.com/matzehuels/dove/pkg/errors"
)

var (
	colorRed = lipgloss.Color("167") // Soft red - errors
	colorDim = lipgloss.Color("240") // Dim gray - muted text

	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
)

const iconError = "✗"

// PrintError writes err to w as a single line: an error icon, the
// user-facing message and, for coded errors, the code.
//
// Example output: "✗ no Dove.toml found in /tmp or any parent directory [FILE_NOT_FOUND]"
func PrintError(w io.Writer, err error) {
	line := styleIconError.Render(iconError) + " " + derr.UserMessage(err)
	if code := derr.GetCode(err); code != "" {
		line += " " + styleDim.Render("["+string(code)+"]")
	}
	fmt.Fprintln(w, line)
}
