// Package validate normalizes and checks a candidate expense before it may
// reach the ledger. It operates on plain input values and returns per-field
// messages; nothing here touches storage or presentation.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ayumu-h/kakeibo/internal/model"
)

// Field names used as keys of the error map.
const (
	FieldAmount   = "amount"
	FieldCategory = "category"
	FieldDate     = "date"
	FieldMemo     = "memo"
)

var errBadAmount = errors.New("amount is not a parseable integer")

// Candidate holds the raw, unparsed form values for one expense.
type Candidate struct {
	Amount   string
	Category string
	Date     string
	Memo     string
}

// Check validates the candidate against the given "today". It returns nil
// when every field is acceptable; otherwise a map containing only the
// failing fields.
func Check(c Candidate, today time.Time) map[string]string {
	errs := make(map[string]string)

	if _, err := ParseAmount(c.Amount); err != nil {
		errs[FieldAmount] = "金額は1〜9,999,999の整数で入力してください"
	}

	if strings.TrimSpace(c.Category) == "" {
		errs[FieldCategory] = "カテゴリを選択してください"
	} else if !model.ValidCategoryID(c.Category) {
		errs[FieldCategory] = "カテゴリの指定が正しくありません"
	}

	if msg := checkDate(c.Date, today); msg != "" {
		errs[FieldDate] = msg
	}

	if n := utf8.RuneCountInString(c.Memo); n > model.MaxMemoLength {
		errs[FieldMemo] = fmt.Sprintf("メモは%d文字以内で入力してください（現在%d文字）",
			model.MaxMemoLength, n)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseAmount normalizes and parses a yen amount. Full-width digits are
// folded to ASCII and thousands separators and whitespace are stripped
// before integer parsing. The result must lie in [MinAmount, MaxAmount].
func ParseAmount(input string) (int, error) {
	normalized := NormalizeAmount(input)
	if normalized == "" {
		return 0, errBadAmount
	}
	amount, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, errBadAmount
	}
	if amount < model.MinAmount || amount > model.MaxAmount {
		return 0, fmt.Errorf("amount %d out of range [%d, %d]",
			amount, model.MinAmount, model.MaxAmount)
	}
	return amount, nil
}

// NormalizeAmount folds full-width digits to ASCII and drops thousands
// separators and whitespace. Everything else passes through untouched so
// that genuinely bad input still fails to parse.
func NormalizeAmount(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r >= '０' && r <= '９': // full-width digits
			b.WriteRune('0' + (r - '０'))
		case r == ',' || r == '，': // thousands separators
		case r == ' ' || r == '\t' || r == '　': // whitespace incl. ideographic space
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// checkDate returns an error message, or "" when the date is acceptable.
// The date must parse as YYYY-MM-DD and must not lie strictly after today;
// time of day is zeroed for the comparison.
func checkDate(date string, today time.Time) string {
	if strings.TrimSpace(date) == "" {
		return "日付を入力してください"
	}
	parsed, err := time.ParseInLocation(model.DateLayout, date, today.Location())
	if err != nil {
		return "日付の形式が正しくありません"
	}
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if parsed.After(todayStart) {
		return "未来の日付は入力できません"
	}
	return ""
}
