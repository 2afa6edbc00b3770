package tracker

import (
	"errors"
	"log/slog"
	"sync"
)

// Options controls Core initialization.
type Options struct {
	DataDir string
	Logger  *slog.Logger
}

// Core provides access to the portfolio tracker business logic and storage.
// All state lives in two CSV files under the data directory; the in-memory
// copy is the working set and is rewritten to disk after each mutation.
type Core struct {
	mu       sync.Mutex
	store    *csvStore
	logger   *slog.Logger
	holdings []HoldingRecord
	trades   []TradeRecord
	nextID   int64
}

// Open initializes a Core using the provided data directory.
func Open(dataDir string) (*Core, error) {
	return OpenWithOptions(Options{DataDir: dataDir})
}

// OpenWithOptions initializes a Core using the provided options.
func OpenWithOptions(opts Options) (*Core, error) {
	if opts.DataDir == "" {
		return nil, errors.New("data dir is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := newCSVStore(opts.DataDir)
	if err != nil {
		return nil, WrapError(ErrCodeStorage, "init data files", err)
	}

	holdings, err := store.loadHoldings()
	if err != nil {
		return nil, WrapError(ErrCodeStorage, "load holdings", err)
	}
	trades, err := store.loadTrades()
	if err != nil {
		return nil, WrapError(ErrCodeStorage, "load trade log", err)
	}

	var nextID int64 = 1
	for _, t := range trades {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}

	return &Core{
		store:    store,
		logger:   logger,
		holdings: holdings,
		trades:   trades,
		nextID:   nextID,
	}, nil
}

// Close releases resources. The CSV files are written synchronously on each
// mutation, so there is nothing to flush.
func (c *Core) Close() error {
	return nil
}

// DataDir returns the underlying data directory.
func (c *Core) DataDir() string {
	return c.store.dir
}

// HoldingsPath returns the path of the consolidated holdings file.
func (c *Core) HoldingsPath() string {
	return c.store.HoldingsPath()
}

// TradesPath returns the path of the trade log file.
func (c *Core) TradesPath() string {
	return c.store.TradesPath()
}

func (c *Core) findHolding(account, symbol string) int {
	for i := range c.holdings {
		if c.holdings[i].Account == account && c.holdings[i].Symbol == symbol {
			return i
		}
	}
	return -1
}
