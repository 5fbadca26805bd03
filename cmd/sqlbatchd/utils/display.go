// Package utils contains utility functions for the sqlbatchd daemon.
package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	taglineStyle = lipgloss.NewStyle().Faint(true)
)

// DisplayLogo prints the sqlbatchd banner with version information
func DisplayLogo(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, logoStyle.Render(` ░░░░░░░░░░░░░░░░░░░░░░░░░
 ░█▀▀░▄▀▄░█░░░█▀▄░█▀█░▀█▀░
 ░▀▀█░█▄█░█░░░█▀▄░█▀█░░█░░
 ░▀▀▀░░▀▄░▀▀▀░▀▀░░▀░▀░░▀░░
 ░░░░░░░░░░░░░░░░░░░░░░░░░`))
	fmt.Fprintln(w, taglineStyle.Render(fmt.Sprintf(" sqlbatchd v%s - local execute endpoint", version)))
	fmt.Fprintln(w)
}
