package tracker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

const (
	holdingsFileName = "consolidated.csv"
	tradesFileName   = "trades.csv"
)

// csvStore persists the holdings table and the trade log as two flat CSV
// files. Every save rewrites the whole file; the single-user model needs no
// finer-grained durability.
type csvStore struct {
	dir          string
	holdingsPath string
	tradesPath   string
}

func newCSVStore(dir string) (*csvStore, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &csvStore{
		dir:          cleanDir,
		holdingsPath: filepath.Join(cleanDir, holdingsFileName),
		tradesPath:   filepath.Join(cleanDir, tradesFileName),
	}
	if err := s.ensureFiles(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureFiles writes header-only CSV files when they do not exist yet.
func (s *csvStore) ensureFiles() error {
	if _, err := os.Stat(s.holdingsPath); os.IsNotExist(err) {
		if err := s.saveHoldings(nil); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.tradesPath); os.IsNotExist(err) {
		if err := s.saveTrades(nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *csvStore) loadHoldings() ([]HoldingRecord, error) {
	file, err := os.Open(s.holdingsPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", holdingsFileName, err)
	}
	defer file.Close()

	var records []HoldingRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", holdingsFileName, err)
	}
	return records, nil
}

func (s *csvStore) saveHoldings(records []HoldingRecord) error {
	if records == nil {
		records = []HoldingRecord{}
	}
	file, err := os.Create(s.holdingsPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", holdingsFileName, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("write %s: %w", holdingsFileName, err)
	}
	return nil
}

func (s *csvStore) loadTrades() ([]TradeRecord, error) {
	file, err := os.Open(s.tradesPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", tradesFileName, err)
	}
	defer file.Close()

	var records []TradeRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tradesFileName, err)
	}
	return records, nil
}

func (s *csvStore) saveTrades(records []TradeRecord) error {
	if records == nil {
		records = []TradeRecord{}
	}
	file, err := os.Create(s.tradesPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", tradesFileName, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("write %s: %w", tradesFileName, err)
	}
	return nil
}

// HoldingsPath returns the path of the consolidated holdings file.
func (s *csvStore) HoldingsPath() string {
	return s.holdingsPath
}

// TradesPath returns the path of the trade log file.
func (s *csvStore) TradesPath() string {
	return s.tradesPath
}
