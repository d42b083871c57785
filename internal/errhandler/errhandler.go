package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

// IsInterrupt reports whether err came from the user aborting a prompt
// (Ctrl+C or Esc in either prompt library). The session treats this as a
// request to leave, which still persists state on the way out.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) {
		return true
	}
	return strings.Contains(err.Error(), "interrupt")
}
