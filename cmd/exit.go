package cmd

import (
	"errors"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/aaearon/deskauth/internal/servicedesk"
)

const (
	exitOK          = 0
	exitError       = 1
	exitConfig      = 2
	exitAuth        = 3
	exitManualLogin = 4
)

// exitCode maps a command error onto the documented process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrRead), errors.Is(err, config.ErrParse):
		return exitConfig
	case errors.Is(err, servicedesk.ErrManualLoginRequired):
		return exitManualLogin
	case errors.Is(err, servicedesk.ErrAuthenticationFailed),
		errors.Is(err, servicedesk.ErrTransport),
		errors.Is(err, servicedesk.ErrEncode),
		errors.Is(err, servicedesk.ErrDecode),
		errors.Is(err, servicedesk.ErrUserInfoMissing):
		return exitAuth
	}
	return exitError
}
