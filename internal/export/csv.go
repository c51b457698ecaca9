// Package export serializes expenses into the CSV format the rest of the
// household's spreadsheet tooling expects: UTF-8 with BOM, Japanese header,
// one row per expense in the order given.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/ayumu-h/kakeibo/internal/model"
)

// Header is the fixed CSV header row: date, category, amount, memo.
const Header = "日付,カテゴリ,金額,メモ"

// bom keeps Excel and friends from misdetecting the encoding.
const bom = "\ufeff"

// Encode renders the expenses as CSV text. The caller supplies the order;
// nothing is re-sorted here. Date, category and amount are escape-free by
// construction, so only the memo column goes through escaping.
func Encode(expenses []model.Expense) string {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(Header)
	for _, e := range expenses {
		b.WriteString("\n")
		b.WriteString(e.Date)
		b.WriteString(",")
		b.WriteString(model.LookupCategory(e.Category).Name)
		b.WriteString(",")
		b.WriteString(strconv.Itoa(e.Amount))
		b.WriteString(",")
		b.WriteString(escapeField(e.Memo))
	}
	return b.String()
}

// Filename returns the export file name for the given day,
// e.g. expenses_20240601.csv.
func Filename(now time.Time) string {
	return "expenses_" + now.Format("20060102") + ".csv"
}

// escapeField wraps the field in double quotes, doubling internal quotes,
// if and only if it contains a comma, newline, or double quote.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
