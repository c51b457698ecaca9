package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayumu-h/kakeibo/internal/cli"
	"github.com/ayumu-h/kakeibo/internal/model"
)

func filtersCmd() *cobra.Command {
	var (
		category string
		period   string
		search   string
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show or change the saved list filters",
		Long: `Without flags, print the saved filter settings. With flags, update
and persist them; 'kakeibo list' and 'kakeibo export' use them by default.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			filters := led.Filters()
			changed := false

			if reset {
				filters = model.DefaultSettings().Filters
				changed = true
			}
			if cmd.Flags().Changed("category") {
				if category != model.CategoryFilterAll && !model.ValidCategoryID(category) {
					return fmt.Errorf("unknown category: %s", category)
				}
				filters.Category = category
				changed = true
			}
			if cmd.Flags().Changed("period") {
				switch period {
				case model.PeriodAll, model.PeriodThisMonth, model.PeriodLastMonth:
				default:
					return fmt.Errorf("unknown period: %s", period)
				}
				filters.Period = period
				changed = true
			}
			if cmd.Flags().Changed("query") {
				filters.SearchQuery = search
				changed = true
			}

			if changed {
				led.SetFilters(ctx, filters)
				fmt.Println(cli.FormatSuccess("フィルタを保存しました"))
			}

			categoryName := "すべて"
			if filters.Category != model.CategoryFilterAll && filters.Category != "" {
				categoryName = model.LookupCategory(filters.Category).Name
			}
			fmt.Printf("カテゴリ: %s\n期間: %s\n検索: %q\n",
				categoryName, filters.Period, filters.SearchQuery)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category id or 'all'")
	cmd.Flags().StringVarP(&period, "period", "p", "", "period (all, thisMonth, lastMonth)")
	cmd.Flags().StringVarP(&search, "query", "q", "", "search text")
	cmd.Flags().BoolVar(&reset, "reset", false, "restore default filters")

	return cmd
}

func sortCmd() *cobra.Command {
	var (
		sortKey   string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Show or change the saved sort order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			led, cleanup, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pref := led.Sort()
			changed := false

			if cmd.Flags().Changed("key") {
				switch sortKey {
				case model.SortByDate, model.SortByAmount, model.SortByCategory:
				default:
					return fmt.Errorf("unknown sort key: %s", sortKey)
				}
				pref.Key = sortKey
				changed = true
			}
			if cmd.Flags().Changed("direction") {
				switch direction {
				case model.SortAsc, model.SortDesc:
				default:
					return fmt.Errorf("unknown direction: %s", direction)
				}
				pref.Direction = direction
				changed = true
			}

			if changed {
				led.SetSort(ctx, pref)
				fmt.Println(cli.FormatSuccess("並び順を保存しました"))
			}

			fmt.Printf("キー: %s\n方向: %s\n", pref.Key, pref.Direction)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortKey, "key", "k", "", "sort key (date, amount, category)")
	cmd.Flags().StringVarP(&direction, "direction", "r", "", "direction (asc, desc)")

	return cmd
}
