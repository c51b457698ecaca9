package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/ledger"
	"github.com/ayumu-h/kakeibo/internal/validate"
)

func editCmd() *cobra.Command {
	var (
		amount   string
		category string
		date     string
		memo     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long: `Replace fields of an expense by id (see 'kakeibo list --ids').
Unspecified fields keep their current values. Editing an id that does not
exist changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			existing, ok := led.Find(args[0])
			if !ok {
				// Tolerated: updating a missing id is a silent no-op.
				return nil
			}

			candidate := validate.Candidate{
				Amount:   strconv.Itoa(existing.Amount),
				Category: existing.Category,
				Date:     existing.Date,
				Memo:     existing.Memo,
			}
			if cmd.Flags().Changed("amount") {
				candidate.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				candidate.Category = category
			}
			if cmd.Flags().Changed("date") {
				candidate.Date = date
			}
			if cmd.Flags().Changed("memo") {
				candidate.Memo = memo
			}

			if errs := validate.Check(candidate, time.Now()); errs != nil {
				return reportFieldErrors(errs)
			}
			parsed, err := validate.ParseAmount(candidate.Amount)
			if err != nil {
				return err
			}

			led.Update(ctx, args[0], ledger.Candidate{
				Amount:   parsed,
				Category: candidate.Category,
				Date:     candidate.Date,
				Memo:     candidate.Memo,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount in yen")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category id")
	cmd.Flags().StringVarP(&date, "date", "d", "", "new date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&memo, "memo", "m", "", "new memo")

	return cmd
}
