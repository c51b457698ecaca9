package main

import (
	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/notify"
)

func undoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last mutation",
		Long: `Restore the expense collection from the snapshot taken before the
last mutation. There is exactly one level of history; repeating undo
without a new mutation restores the same snapshot again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notifier := consoleNotifier()
			if led.Undo(ctx) {
				notifier.Notify(notify.Success("元に戻しました"))
			} else {
				notifier.Notify(notify.Warning("元に戻せる操作はありません"))
			}
			return nil
		},
	}
}
