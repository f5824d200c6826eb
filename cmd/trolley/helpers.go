// Shared helpers for trolley CLI commands.
package main

import (
	"fmt"

	"github.com/dukaforge/trolley/internal/ledger"
	"github.com/dukaforge/trolley/internal/sqlite"
	"github.com/dukaforge/trolley/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openLedger attaches the backend and wraps it in an inventory ledger.
// The caller must defer backend.Detach().
func openLedger() (*ledger.Ledger, *sqlite.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(backend), backend, nil
}
