package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/style"
)

// installHints suggests how to get a missing binary on each platform.
var installHints = map[string]string{
	constant.Darwin:  "brew install mpv",
	constant.Linux:   "sudo apt install mpv",
	constant.Windows: "scoop install mpv",
}

// CheckDependencies exits with an install hint when mpv is not on PATH.
func CheckDependencies() {
	if _, err := exec.LookPath(constant.MPV); err != nil {
		printMissingDependencyError(constant.MPV)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if hint, ok := installHints[runtime.GOOS]; ok {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
