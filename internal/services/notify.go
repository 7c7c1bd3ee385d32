package services

import "github.com/gen2brain/beeep"

// Notifier delivers a short message to the operator.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through the desktop notification daemon.
type DesktopNotifier struct{}

// Notify implements Notifier.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
