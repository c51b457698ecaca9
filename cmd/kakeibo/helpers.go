package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayumu-h/kakeibo/internal/cli"
	"github.com/ayumu-h/kakeibo/internal/config"
	"github.com/ayumu-h/kakeibo/internal/ledger"
	"github.com/ayumu-h/kakeibo/internal/notify"
	"github.com/ayumu-h/kakeibo/internal/storage"
	"github.com/ayumu-h/kakeibo/internal/validate"
)

// openLedger wires the console notifier, blob store, and ledger together.
// The returned cleanup closes the store.
func openLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	return openLedgerWith(ctx, notify.NewConsole(os.Stdout))
}

// openLedgerWith opens the ledger with a caller-supplied notifier (the
// browse view routes notifications into its own status line).
func openLedgerWith(ctx context.Context, notifier notify.Notifier) (*ledger.Ledger, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewBlobStore(dbPath, notifier)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	led := ledger.New(ctx, store, notifier)
	return led, func() { _ = store.Close() }, nil
}

// consoleNotifier returns the notifier used by commands that emit their own
// notifications (undo, export).
func consoleNotifier() notify.Notifier {
	return notify.NewConsole(os.Stdout)
}

// reportFieldErrors prints validation failures, one line per field, and
// returns a terse error so the command exits non-zero.
func reportFieldErrors(errs map[string]string) error {
	for _, field := range []string{
		validate.FieldAmount, validate.FieldCategory, validate.FieldDate, validate.FieldMemo,
	} {
		if msg, ok := errs[field]; ok {
			fmt.Println(cli.FormatError(msg))
		}
	}
	return fmt.Errorf("入力内容を確認してください")
}

// today returns the local date in the ledger's date format.
func today() string {
	return time.Now().Format("2006-01-02")
}

// commandContext returns the cobra command context, falling back to
// Background for commands constructed outside Execute (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
