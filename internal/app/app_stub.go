//go:build !ebiten

package app

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"pixlife/internal/config"
	"pixlife/internal/session"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the window driver requires building with the 'ebiten' tag (go run -tags ebiten ./cmd/pixlife)")

// Run reports that the GUI is unavailable in this build.
func Run(*session.Session, *config.Config, log.Logger) error {
	return ErrNoGUI
}
