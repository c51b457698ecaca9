package ledger

import (
	"context"

	"github.com/ayumu-h/kakeibo/internal/model"
)

// Settings accessors. Filter and sort preferences are persisted with the
// rest of the state but are not expense mutations: changing them neither
// snapshots the backup slot nor emits a notification.

// Settings returns the current view preferences.
func (l *Ledger) Settings() model.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Settings
}

// Filters returns the current filter preferences.
func (l *Ledger) Filters() model.Filters {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Settings.Filters
}

// SetFilters stores and persists new filter preferences.
func (l *Ledger) SetFilters(ctx context.Context, f model.Filters) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Settings.Filters = f
	l.store.Save(ctx, l.state)
}

// Sort returns the current sort preference.
func (l *Ledger) Sort() model.Sort {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Settings.Sort
}

// SetSort stores and persists a new sort preference.
func (l *Ledger) SetSort(ctx context.Context, s model.Sort) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Settings.Sort = s
	l.store.Save(ctx, l.state)
}
