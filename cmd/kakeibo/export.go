package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/export"
	"github.com/ayumu-h/kakeibo/internal/notify"
	"github.com/ayumu-h/kakeibo/internal/query"
)

func exportCmd() *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write expenses to a CSV file",
		Long: `Write the expense list as UTF-8 CSV with a byte-order mark. By
default the saved filters and sort apply; --all exports the raw collection
in storage order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rows := led.Expenses()
			if !all {
				rows = query.Derive(rows, led.Settings(), time.Now())
			}

			if output == "" {
				output = export.Filename(time.Now())
			}
			if err := os.WriteFile(output, []byte(export.Encode(rows)), 0o644); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}

			consoleNotifier().Notify(notify.Info(
				fmt.Sprintf("CSVを書き出しました: %s（%d件）", output, len(rows))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: expenses_YYYYMMDD.csv)")
	cmd.Flags().BoolVar(&all, "all", false, "export everything, ignoring saved filters")

	return cmd
}
