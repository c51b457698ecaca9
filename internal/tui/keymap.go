package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the browse view.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Search        key.Binding
	CycleCategory key.Binding
	CyclePeriod   key.Binding
	CycleSortKey  key.Binding
	ToggleSortDir key.Binding
	Delete        key.Binding
	Undo          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "上へ"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "下へ"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "検索"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "カテゴリ"),
		),
		CyclePeriod: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "期間"),
		),
		CycleSortKey: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "並び順"),
		),
		ToggleSortDir: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "昇順/降順"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "削除"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "元に戻す"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "終了"),
		),
	}
}
