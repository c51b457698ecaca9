package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/ledger"
	"github.com/ayumu-h/kakeibo/internal/validate"
)

func addCmd() *cobra.Command {
	var (
		category string
		date     string
		memo     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new expense",
		Long: `Record a new expense. The amount is whole yen; full-width digits and
thousands separators are accepted (e.g. "1,200" or "１２００").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			if date == "" {
				date = today()
			}

			candidate := validate.Candidate{
				Amount:   args[0],
				Category: category,
				Date:     date,
				Memo:     memo,
			}
			if errs := validate.Check(candidate, time.Now()); errs != nil {
				return reportFieldErrors(errs)
			}
			amount, err := validate.ParseAmount(args[0])
			if err != nil {
				return err
			}

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			led.Add(ctx, ledger.Candidate{
				Amount:   amount,
				Category: category,
				Date:     date,
				Memo:     memo,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category id (food, transport, entertainment, utilities, other)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&memo, "memo", "m", "", "memo, up to 100 characters")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
