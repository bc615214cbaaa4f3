// Package detector inspects the environment to choose how output is rendered.
package detector

import (
	"os"

	"github.com/juspay/omnix-sub000/internal/ui/output"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Environment describes where the CLI is running.
type Environment struct {
	// TTY is true when standard error is a terminal.
	TTY bool
	// CI is true when a CI service is detected.
	CI bool
	// GitHubActions is true when running as a GitHub Actions step.
	GitHubActions bool
}

// Grouping reports whether step output should be folded into log groups.
func (e Environment) Grouping() bool {
	return e.GitHubActions
}

// Colors reports whether the output should use the full terminal profile
// rather than plain ANSI.
func (e Environment) Colors() bool {
	return e.TTY && !e.CI
}

// Profile returns the color profile selector for the environment.
func (e Environment) Profile() func() termenv.Profile {
	if e.Colors() {
		return output.ColorProfile
	}
	return output.ColorProfileANSI
}

// DetectEnvironment inspects the process environment.
func DetectEnvironment() Environment {
	return Detect(os.Getenv, term.IsTerminal(int(os.Stderr.Fd())))
}

// Detect builds an Environment from getenv and the terminal state of stderr.
func Detect(getenv func(string) string, tty bool) Environment {
	ci := getenv("CI")
	gha := getenv("GITHUB_ACTIONS") == "true"
	return Environment{
		TTY:           tty,
		CI:            ci == "true" || ci == "1" || gha,
		GitHubActions: gha,
	}
}
