// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/memvault/memvault/internal/logger"
)

type desktopNotifier struct {
	appName string
	logger  *logger.Logger
}

// NewDesktopNotifier creates a Notifier backed by the OS notification
// facility (notify-send / NSUserNotification / toast, depending on the
// platform). appName prefixes every notification title.
func NewDesktopNotifier(appName string, log *logger.Logger) Notifier {
	return &desktopNotifier{appName: appName, logger: log}
}

func (n *desktopNotifier) Push(title, body string) error {
	if n.appName != "" {
		title = n.appName + ": " + title
	}

	if err := beeep.Notify(title, body, ""); err != nil {
		n.logger.Err(err).
			Str("func", "desktopNotifier.Push").
			Msg("platform notification failed")
		return fmt.Errorf("platform notification failed: %w", err)
	}

	return nil
}
