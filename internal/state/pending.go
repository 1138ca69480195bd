package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const pendingBacktestFile = "pending_backtest.json"

// ErrNoPendingBacktest is returned when no create command has staged a
// strategy for backtesting.
var ErrNoPendingBacktest = errors.New("no pending backtest strategy")

// PendingBacktest is a strategy staged by a create command for the backtest
// command to pick up, the same hand-off the web dashboard does through
// localStorage under pendingBacktestStrategy.
type PendingBacktest struct {
	Type        string          `json:"type"`
	Config      json.RawMessage `json:"config"`
	Name        string          `json:"name"`
	AssetSymbol string          `json:"asset_symbol"`
}

// Store persists console hand-off state as JSON files in one directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the per-user state directory.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".strategy-console"
	}
	return filepath.Join(base, "strategy-console")
}

// SavePendingBacktest stages a strategy for the backtest command,
// overwriting any previous hand-off.
func (s *Store) SavePendingBacktest(p PendingBacktest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize pending backtest: %w", err)
	}

	// Write-then-rename so a crash never leaves a torn file behind.
	path := s.path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write pending backtest: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadPendingBacktest returns the staged strategy, or ErrNoPendingBacktest.
func (s *Store) LoadPendingBacktest() (*PendingBacktest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPendingBacktest
		}
		return nil, fmt.Errorf("failed to read pending backtest: %w", err)
	}

	var p PendingBacktest
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("pending backtest file is corrupt: %w", err)
	}
	return &p, nil
}

// ClearPendingBacktest removes the hand-off once consumed. Clearing an
// already-empty store is not an error.
func (s *Store) ClearPendingBacktest() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, pendingBacktestFile)
}
