package app

import (
	"context"
	"errors"

	"github.com/riordanpawley/finboard/internal/services/notify"
)

// permissionKey identifies the notification permission dialog in SelectionMsg
const permissionKey = "notify-permission"

// permissionPromptMsg asks Update to open the permission dialog and answer on reply
type permissionPromptMsg struct {
	reply chan<- notify.Permission
}

// permissionAnsweredMsg reports the user's answer so it can be saved
type permissionAnsweredMsg struct {
	permission notify.Permission
}

var errPromptUnavailable = errors.New("permission prompt unavailable")

// confirmPrompter asks for notification permission with a confirm dialog.
// It runs on a command goroutine and blocks until the dialog is answered.
type confirmPrompter struct {
	events *Events
}

func (p *confirmPrompter) RequestPermission(ctx context.Context) (notify.Permission, error) {
	reply := make(chan notify.Permission, 1)
	if !p.events.Send(permissionPromptMsg{reply: reply}) {
		return notify.PermissionDefault, errPromptUnavailable
	}

	select {
	case perm := <-reply:
		return perm, nil
	case <-ctx.Done():
		return notify.PermissionDefault, ctx.Err()
	}
}
