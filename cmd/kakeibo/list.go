package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/cli"
	"github.com/ayumu-h/kakeibo/internal/model"
	"github.com/ayumu-h/kakeibo/internal/query"
)

func listCmd() *cobra.Command {
	var (
		category  string
		period    string
		search    string
		sortKey   string
		direction string
		showIDs   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the filtered, sorted expense list",
		Long: `Display expenses using the saved filter and sort settings. Flags
override the saved settings for this invocation only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := led.Settings()
			if cmd.Flags().Changed("category") {
				settings.Filters.Category = category
			}
			if cmd.Flags().Changed("period") {
				settings.Filters.Period = period
			}
			if cmd.Flags().Changed("query") {
				settings.Filters.SearchQuery = search
			}
			if cmd.Flags().Changed("sort") {
				settings.Sort.Key = sortKey
			}
			if cmd.Flags().Changed("direction") {
				settings.Sort.Direction = direction
			}

			rows := query.Derive(led.Expenses(), settings, time.Now())
			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("該当する支出はありません"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			if showIDs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("ID"),
					cli.HeaderStyle.Render("日付"),
					cli.HeaderStyle.Render("カテゴリ"),
					cli.HeaderStyle.Render("金額"),
					cli.HeaderStyle.Render("メモ"))
			} else {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("日付"),
					cli.HeaderStyle.Render("カテゴリ"),
					cli.HeaderStyle.Render("金額"),
					cli.HeaderStyle.Render("メモ"))
			}
			for _, e := range rows {
				c := model.LookupCategory(e.Category)
				if showIDs {
					fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
						e.ID, e.Date, c.Icon, c.Name, cli.FormatYen(e.Amount), e.Memo)
				} else {
					fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
						e.Date, c.Icon, c.Name, cli.FormatYen(e.Amount), e.Memo)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d件  合計 %s\n",
				len(rows), cli.AmountStyle.Render(cli.FormatYen(query.Total(rows))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category id, or 'all'")
	cmd.Flags().StringVarP(&period, "period", "p", "", "filter by period (all, thisMonth, lastMonth)")
	cmd.Flags().StringVarP(&search, "query", "q", "", "search memo and category name")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", "", "sort key (date, amount, category)")
	cmd.Flags().StringVarP(&direction, "direction", "r", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show expense ids (needed for edit/delete)")

	return cmd
}
