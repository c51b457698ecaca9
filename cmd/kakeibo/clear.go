package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all expenses",
		Long: `Empty the expense collection. A snapshot is taken first, so the
clear can be reverted with 'kakeibo undo' until the next mutation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			if !force {
				fmt.Print("すべての支出を削除しますか？ (y/N): ")
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("中止しました")
					return nil
				}
			}

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			led.ClearAll(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")

	return cmd
}
