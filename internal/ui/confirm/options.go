package confirm

import (
	"fmt"
	"log/slog"
)

// DefaultWidth is the outer width of the dialog box in cells.
const DefaultWidth = 56

// Option configures a Controller.
type Option func(*Controller)

// WithTitle sets the dialog title.
func WithTitle(title string) Option {
	return func(c *Controller) { c.title = title }
}

// WithConfirmLabel sets the label of the confirm control.
func WithConfirmLabel(label string) Option {
	return func(c *Controller) { c.confirmLabel = label }
}

// WithDescription sets the body text built from the target label.
func WithDescription(describe func(label string) string) Option {
	return func(c *Controller) { c.describe = describe }
}

// WithWidth sets the outer dialog width. It is clamped to the screen.
func WithWidth(width int) Option {
	return func(c *Controller) { c.width = width }
}

// WithCloseOnBackdrop controls whether a click outside the box closes the dialog.
func WithCloseOnBackdrop(enabled bool) Option {
	return func(c *Controller) { c.closeOnBackdrop = enabled }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func defaultDescription(label string) string {
	return fmt.Sprintf("This will permanently delete %q. This action cannot be undone.", label)
}
