// Package notify carries user-facing notifications from the core to
// whatever presentation layer is attached.
package notify

// Severity classifies a notification for presentation.
type Severity string

const (
	// SeveritySuccess indicates a completed operation.
	SeveritySuccess Severity = "success"
	// SeverityError indicates a failed operation.
	SeverityError Severity = "error"
	// SeverityInfo indicates a neutral informational message.
	SeverityInfo Severity = "info"
	// SeverityWarning indicates a cautionary message.
	SeverityWarning Severity = "warning"
)

// Notification is one user-visible message. OffersUndo marks notifications
// whose action, if the presentation layer invokes it, is a ledger undo; it
// is only set after a delete.
type Notification struct {
	Message    string
	Severity   Severity
	OffersUndo bool
}

// Notifier receives notifications emitted by the core.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(Notification)

// Notify calls f.
func (f Func) Notify(n Notification) { f(n) }

// Success builds a success notification.
func Success(message string) Notification {
	return Notification{Message: message, Severity: SeveritySuccess}
}

// Error builds an error notification.
func Error(message string) Notification {
	return Notification{Message: message, Severity: SeverityError}
}

// Info builds an info notification.
func Info(message string) Notification {
	return Notification{Message: message, Severity: SeverityInfo}
}

// Warning builds a warning notification.
func Warning(message string) Notification {
	return Notification{Message: message, Severity: SeverityWarning}
}
