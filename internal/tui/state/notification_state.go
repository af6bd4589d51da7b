package state

// NotificationLevel is the severity of a header notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification is a non-blocking message shown in the header
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState keeps the message shown in the header until the next
// key press or click in normal mode. A newer message replaces an older one
// unless the older one is more severe.
type NotificationState struct {
	current *Notification
}

func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a message, keeping an already shown message of higher severity
func (s *NotificationState) Add(level NotificationLevel, message string) {
	if s.current != nil && s.current.Level > level {
		return
	}
	s.current = &Notification{Level: level, Message: message}
}

func (s *NotificationState) Clear() {
	s.current = nil
}

// Latest returns the message to show, if any
func (s *NotificationState) Latest() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

func (s *NotificationState) HasAny() bool {
	return s.current != nil
}
