//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busIface  = "org.freedesktop.Notifications"
	methodNew = busIface + ".Notify"
	methodEnd = busIface + ".CloseNotification"
)

// busNotifier talks to the session notification server.
type busNotifier struct {
	sender Sender
	obj    dbus.BusObject
}

// New connects to the session bus. Without a bus, notifications are
// silently dropped.
func New(sender Sender) (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, nothing to show
	}
	return &busNotifier{
		sender: sender,
		obj:    conn.Object(busName, busPath),
	}, nil
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	call := b.obj.Call(methodNew, 0, notifyArgs(b.sender, n)...)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (b *busNotifier) Close(id uint32) error {
	return b.obj.Call(methodEnd, 0, id).Err
}

// notifyArgs lays out the arguments of Notify(app_name, replaces_id,
// app_icon, summary, body, actions, hints, expire_timeout).
func notifyArgs(s Sender, n Notification) []any {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}
	if s.DesktopEntry != "" {
		hints["desktop-entry"] = dbus.MakeVariant(s.DesktopEntry)
	}
	if n.Category != "" {
		hints["category"] = dbus.MakeVariant(n.Category)
	}
	return []any{
		s.Name,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		hints,
		n.Timeout,
	}
}
