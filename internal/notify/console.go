package notify

import (
	"fmt"
	"io"

	"github.com/ayumu-h/kakeibo/internal/cli"
)

// Console renders notifications to a terminal using the shared styles.
type Console struct {
	out io.Writer
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Notify writes the notification, one line per message, with an extra undo
// hint when the notification offers it.
func (c *Console) Notify(n Notification) {
	var line string
	switch n.Severity {
	case SeveritySuccess:
		line = cli.FormatSuccess(n.Message)
	case SeverityError:
		line = cli.FormatError(n.Message)
	case SeverityWarning:
		line = cli.FormatWarning(n.Message)
	default:
		line = cli.FormatInfo(n.Message)
	}
	fmt.Fprintln(c.out, line)

	if n.OffersUndo {
		fmt.Fprintln(c.out, cli.SubtleStyle.Render("元に戻すには `kakeibo undo` を実行してください"))
	}
}
