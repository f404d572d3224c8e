// Package detector inspects the process environment to pick output behavior.
package detector

import (
	"github.com/caarlos0/env/v11"
	"github.com/muesli/termenv"
)

// Environment is the subset of the process environment conform reacts to.
type Environment struct {
	// CI is set by most CI systems; any non-empty, non-"false" value counts.
	CI string `env:"CI"`

	// NoColor disables all color output when non-empty (no-color.org).
	NoColor string `env:"NO_COLOR"`
}

// Detect parses the process environment.
func Detect() (Environment, error) {
	return env.ParseAs[Environment]()
}

// IsCI reports whether the process appears to run under a CI system.
func (e Environment) IsCI() bool {
	return e.CI != "" && e.CI != "false"
}

// ColorProfile returns the termenv profile to render with.
// NO_COLOR wins; CI gets plain ANSI for broad compatibility.
func (e Environment) ColorProfile() termenv.Profile {
	if e.NoColor != "" {
		return termenv.Ascii
	}
	if e.IsCI() {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}
