// Package logging builds the go-kit logger shared by the commands.
package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a logfmt logger on w that drops records below lvl. Unknown
// levels fall back to info.
func New(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, allow(lvl))
}

func allow(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
