// Package state holds the observable session containers that sit
// between an embedding client and the services. Containers are
// constructed with their dependencies and passed by reference; there is
// no package-level shared state.
package state

// Level classifies a transient user-facing notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
)

// Notification is a transient user-facing message emitted by container
// actions. Wording is presentation-ready but carries no state.
type Notification struct {
	Level   Level
	Message string
}

// NotifyFunc receives notifications emitted by a container. A nil
// NotifyFunc silently drops them.
type NotifyFunc func(Notification)

func (f NotifyFunc) success(msg string) {
	if f != nil {
		f(Notification{Level: LevelSuccess, Message: msg})
	}
}

func (f NotifyFunc) error(msg string) {
	if f != nil {
		f(Notification{Level: LevelError, Message: msg})
	}
}

func (f NotifyFunc) info(msg string) {
	if f != nil {
		f(Notification{Level: LevelInfo, Message: msg})
	}
}
