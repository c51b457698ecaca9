package main

import (
	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/notify"
	"github.com/ayumu-h/kakeibo/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse expenses interactively",
		Long: `Open the interactive list: live search with debounced filtering,
category/period cycling, sort toggling, and delete with one-level undo.
Filter and sort changes are persisted and picked up by list/export.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			// Ledger notifications go to the TUI status line, not stdout.
			notes := make(chan notify.Notification, 8)
			notifier := notify.Func(func(n notify.Notification) {
				select {
				case notes <- n:
				default: // never block a mutation on a full status queue
				}
			})

			led, cleanup, err := openLedgerWith(ctx, notifier)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, led, notes)
		},
	}
}
