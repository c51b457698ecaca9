// Package ledger owns the expense collection: CRUD mutations, the
// single-slot pre-mutation backup that powers undo, and the persisted view
// settings. It is the sole mutator of the collection; callers only ever
// receive copies.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/ayumu-h/kakeibo/internal/model"
	"github.com/ayumu-h/kakeibo/internal/notify"
)

// Store is the persistence boundary the ledger writes through. Load and
// Save never fail from the ledger's perspective; the store converts
// failures into notifications itself.
type Store interface {
	Load(ctx context.Context) *model.AppState
	Save(ctx context.Context, state *model.AppState)
}

// Candidate carries the user-editable fields of an expense. It is expected
// to have passed validation before reaching the ledger.
type Candidate struct {
	Amount   int
	Category string
	Date     string
	Memo     string
}

// Ledger holds the live application state and mediates every mutation.
type Ledger struct {
	mu       sync.RWMutex
	store    Store
	state    *model.AppState
	notifier notify.Notifier
	now      func() time.Time
}

// New loads the persisted state and returns a ready ledger.
func New(ctx context.Context, store Store, notifier notify.Notifier) *Ledger {
	return &Ledger{
		store:    store,
		state:    store.Load(ctx),
		notifier: notifier,
		now:      time.Now,
	}
}

// Expenses returns a copy of the live collection.
func (l *Ledger) Expenses() []model.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return model.CloneExpenses(l.state.Expenses)
}

// Find returns the expense with the given id, if present.
func (l *Ledger) Find(id string) (model.Expense, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.state.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

// Add records a new expense. The id and creation timestamps are assigned
// here; a missing memo stays the empty string.
func (l *Ledger) Add(ctx context.Context, c Candidate) model.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snapshotLocked(ctx)

	now := l.now()
	expense := model.Expense{
		ID:        model.NewID(),
		Amount:    c.Amount,
		Category:  c.Category,
		Date:      c.Date,
		Memo:      c.Memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.state.Expenses = append(l.state.Expenses, expense)
	l.store.Save(ctx, l.state)

	l.notifier.Notify(notify.Success("支出を記録しました"))
	return expense
}

// Update replaces the editable fields of the expense with the given id.
// A missing id is a tolerated no-op: nothing changes, nothing is surfaced.
// The id and CreatedAt are preserved; UpdatedAt is refreshed.
func (l *Ledger) Update(ctx context.Context, id string, c Candidate) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snapshotLocked(ctx)

	for i := range l.state.Expenses {
		if l.state.Expenses[i].ID != id {
			continue
		}
		l.state.Expenses[i].Amount = c.Amount
		l.state.Expenses[i].Category = c.Category
		l.state.Expenses[i].Date = c.Date
		l.state.Expenses[i].Memo = c.Memo
		l.state.Expenses[i].UpdatedAt = l.now()
		l.store.Save(ctx, l.state)

		l.notifier.Notify(notify.Success("支出を更新しました"))
		return
	}
}

// Remove deletes the expense with the given id. A missing id leaves the
// collection unchanged. The emitted notification offers undo.
func (l *Ledger) Remove(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snapshotLocked(ctx)

	kept := l.state.Expenses[:0]
	for _, e := range l.state.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.state.Expenses = kept
	l.store.Save(ctx, l.state)

	l.notifier.Notify(notify.Notification{
		Message:    "支出を削除しました",
		Severity:   notify.SeveritySuccess,
		OffersUndo: true,
	})
}

// Undo restores the collection from the backup slot. It reports whether a
// snapshot was available; the caller decides whether and how to notify.
// The slot is not cleared on restore, so a second undo without an
// intervening mutation restores the same snapshot again.
func (l *Ledger) Undo(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.state.Backup) == 0 {
		return false
	}
	l.state.Expenses = model.CloneExpenses(l.state.Backup)
	l.store.Save(ctx, l.state)
	return true
}

// ClearAll empties the collection. Confirmation gating is the caller's
// responsibility.
func (l *Ledger) ClearAll(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snapshotLocked(ctx)

	l.state.Expenses = []model.Expense{}
	l.store.Save(ctx, l.state)

	l.notifier.Notify(notify.Success("すべての支出を削除しました"))
}

// snapshotLocked overwrites the backup slot with a pre-mutation copy of the
// collection and persists it. Called immediately before every mutation.
func (l *Ledger) snapshotLocked(ctx context.Context) {
	l.state.Backup = model.CloneExpenses(l.state.Expenses)
	l.store.Save(ctx, l.state)
}
