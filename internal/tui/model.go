// Package tui implements the interactive browse view: a filtered, sorted
// expense list with live search. Filter edits are committed through the
// ledger on a debounce so rapid keystrokes cause at most one re-query per
// quiet window; sort changes apply immediately.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayumu-h/kakeibo/internal/cli"
	"github.com/ayumu-h/kakeibo/internal/debounce"
	"github.com/ayumu-h/kakeibo/internal/model"
	"github.com/ayumu-h/kakeibo/internal/notify"
	"github.com/ayumu-h/kakeibo/internal/query"
)

// Ledger is the slice of the ledger surface the browse view needs.
type Ledger interface {
	Expenses() []model.Expense
	Remove(ctx context.Context, id string)
	Undo(ctx context.Context) bool
	Filters() model.Filters
	SetFilters(ctx context.Context, f model.Filters)
	Sort() model.Sort
	SetSort(ctx context.Context, s model.Sort)
}

// refreshMsg signals that the debounce window elapsed and the pending
// filters should be committed and the view re-derived.
type refreshMsg struct{}

// notificationMsg carries a ledger notification into the status line.
type notificationMsg notify.Notification

// Model holds the browse view state.
type Model struct {
	ctx       context.Context
	ledger    Ledger
	keymap    KeyMap
	search    textinput.Model
	debouncer *debounce.Debouncer
	refresh   chan struct{}
	notes     <-chan notify.Notification
	filters   model.Filters // pending edits, committed on debounce
	sort      model.Sort
	rows      []model.Expense
	cursor    int
	status    string
	width     int
	height    int
}

// New creates a browse model initialized from the persisted settings, so
// the UI state round-trips across sessions. Notifications arriving on
// notes (persistence failures, mutation confirmations) are shown in the
// status line; notes may be nil.
func New(ctx context.Context, ledger Ledger, notes <-chan notify.Notification) Model {
	search := textinput.New()
	search.Placeholder = "メモ・カテゴリを検索..."
	search.Prompt = "検索: "
	search.CharLimit = 100

	m := Model{
		ctx:       ctx,
		ledger:    ledger,
		keymap:    DefaultKeyMap(),
		search:    search,
		debouncer: debounce.New(debounce.DefaultDelay),
		refresh:   make(chan struct{}, 1),
		notes:     notes,
		filters:   ledger.Filters(),
		sort:      ledger.Sort(),
	}
	m.search.SetValue(m.filters.SearchQuery)
	m.requery()
	return m
}

// Run starts the browse view and blocks until the user quits.
func Run(ctx context.Context, ledger Ledger, notes <-chan notify.Notification) error {
	p := tea.NewProgram(New(ctx, ledger, notes), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForRefresh(m.refresh), waitForNotification(m.notes))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.ledger.SetFilters(m.ctx, m.filters)
		m.requery()
		return m, waitForRefresh(m.refresh)

	case notificationMsg:
		m.status = msg.Message
		if msg.OffersUndo {
			m.status += "（u で元に戻す）"
		}
		m.requery()
		return m, waitForNotification(m.notes)

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.filters.SearchQuery {
		m.filters.SearchQuery = v
		m.scheduleRefresh()
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.CycleCategory):
		m.filters.Category = nextCategoryFilter(m.filters.Category)
		m.scheduleRefresh()

	case key.Matches(msg, m.keymap.CyclePeriod):
		m.filters.Period = nextPeriod(m.filters.Period)
		m.scheduleRefresh()

	case key.Matches(msg, m.keymap.CycleSortKey):
		m.sort.Key = nextSortKey(m.sort.Key)
		m.ledger.SetSort(m.ctx, m.sort)
		m.requery()

	case key.Matches(msg, m.keymap.ToggleSortDir):
		if m.sort.Direction == model.SortAsc {
			m.sort.Direction = model.SortDesc
		} else {
			m.sort.Direction = model.SortAsc
		}
		m.ledger.SetSort(m.ctx, m.sort)
		m.requery()

	case key.Matches(msg, m.keymap.Delete):
		if m.cursor < len(m.rows) {
			// The delete notification (with its undo offer) arrives via notes.
			m.ledger.Remove(m.ctx, m.rows[m.cursor].ID)
			m.requery()
		}

	case key.Matches(msg, m.keymap.Undo):
		if m.ledger.Undo(m.ctx) {
			m.status = "元に戻しました"
		} else {
			m.status = "元に戻せる操作はありません"
		}
		m.requery()
	}
	return m, nil
}

// scheduleRefresh arms the debouncer; when the quiet window elapses a
// refreshMsg is delivered through the refresh channel.
func (m *Model) scheduleRefresh() {
	refresh := m.refresh
	m.debouncer.Trigger(func() {
		select {
		case refresh <- struct{}{}:
		default: // a refresh is already pending
		}
	})
}

func waitForRefresh(refresh chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-refresh
		return refreshMsg{}
	}
}

// waitForNotification blocks until a ledger notification arrives. Reading
// from a nil channel blocks forever, which is the desired behavior when no
// notification source is attached.
func waitForNotification(notes <-chan notify.Notification) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(<-notes)
	}
}

// requery re-derives the visible rows from the live collection and the
// current (possibly uncommitted) view settings.
func (m *Model) requery() {
	m.rows = query.Derive(m.ledger.Expenses(), model.Settings{
		Filters: m.filters,
		Sort:    m.sort,
	}, time.Now())
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("家計簿"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(m.filterSummary()))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(cli.InfoStyle.Render("該当する支出はありません"))
		b.WriteString("\n")
	}
	for i, e := range m.rows {
		b.WriteString(m.renderRow(e, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d件  合計 %s",
		len(m.rows), cli.AmountStyle.Render(cli.FormatYen(query.Total(m.rows)))))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(cli.InfoStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(
		"/ 検索  c カテゴリ  p 期間  s 並び順  r 昇順/降順  d 削除  u 元に戻す  q 終了"))
	return b.String()
}

func (m Model) renderRow(e model.Expense, selected bool) string {
	category := model.LookupCategory(e.Category)
	line := fmt.Sprintf("%s  %s %-8s %10s  %s",
		e.Date, category.Icon, category.Name, cli.FormatYen(e.Amount), e.Memo)
	if selected {
		return cli.TitleStyle.Render("> " + line)
	}
	return "  " + line
}

func (m Model) filterSummary() string {
	category := "すべて"
	if m.filters.Category != model.CategoryFilterAll && m.filters.Category != "" {
		category = model.LookupCategory(m.filters.Category).Name
	}
	return fmt.Sprintf("カテゴリ: %s  期間: %s  並び順: %s %s",
		category, periodLabel(m.filters.Period),
		sortKeyLabel(m.sort.Key), directionLabel(m.sort.Direction))
}

func nextCategoryFilter(current string) string {
	ids := []string{model.CategoryFilterAll}
	for _, c := range model.Categories() {
		ids = append(ids, c.ID)
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return model.CategoryFilterAll
}

func nextPeriod(current string) string {
	switch current {
	case model.PeriodAll:
		return model.PeriodThisMonth
	case model.PeriodThisMonth:
		return model.PeriodLastMonth
	default:
		return model.PeriodAll
	}
}

func nextSortKey(current string) string {
	switch current {
	case model.SortByDate:
		return model.SortByAmount
	case model.SortByAmount:
		return model.SortByCategory
	default:
		return model.SortByDate
	}
}

func periodLabel(period string) string {
	switch period {
	case model.PeriodThisMonth:
		return "今月"
	case model.PeriodLastMonth:
		return "先月"
	default:
		return "全期間"
	}
}

func sortKeyLabel(key string) string {
	switch key {
	case model.SortByAmount:
		return "金額"
	case model.SortByCategory:
		return "カテゴリ"
	default:
		return "日付"
	}
}

func directionLabel(direction string) string {
	if direction == model.SortAsc {
		return "↑"
	}
	return "↓"
}
