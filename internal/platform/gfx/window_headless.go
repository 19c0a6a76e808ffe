//go:build headless

package gfx

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/runner"
)

// ErrHeadless is returned by Run in builds without window support.
var ErrHeadless = errors.New("window mode requires a build without the 'headless' tag")

// Run always fails in headless builds.
func Run(runner.Viewer, core.RuntimeConfig, *log.Logger) error {
	return ErrHeadless
}
