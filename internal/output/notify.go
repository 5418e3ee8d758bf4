package output

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ryanthedev/cycle-cli/internal/desktop"
	"github.com/ryanthedev/cycle-cli/internal/logging"
)

// notifyTimeout bounds how long a notification may hold up an invocation
const notifyTimeout = 2 * time.Second

var noticeColor = color.New(color.FgYellow, color.Bold)

// Notify surfaces a handled-error or usage message to the user. It goes
// through the automation bridge when one is reachable and always echoes
// to stderr, so the message survives a dead bridge too.
func Notify(n desktop.Notifier, message string) {
	noticeColor.Fprint(os.Stderr, "! ")
	fmt.Fprintln(os.Stderr, message)

	if n == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := n.Notify(ctx, message); err != nil {
		logging.Debug().Err(err).Msg("bridge notification failed")
	}
}
