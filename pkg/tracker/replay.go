package tracker

// RebuildHoldings recomputes the consolidated table by replaying the full
// trade log, in insertion order, onto an empty book, and persists the result.
// For a log produced by this system the rebuilt table matches the stored one
// exactly; the operation exists to recover the projection after a hand-edited
// or damaged consolidated file.
func (c *Core) RebuildHoldings() ([]HoldingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rebuilt, err := replay(c.trades)
	if err != nil {
		return nil, err
	}
	if err := c.store.saveHoldings(rebuilt); err != nil {
		return nil, WrapError(ErrCodeStorage, "persist holdings", err)
	}
	c.holdings = rebuilt

	c.logger.Info("holdings rebuilt from trade log", "trades", len(c.trades), "positions", len(rebuilt))
	return rebuilt, nil
}

// replay applies trade records in order onto an empty book.
func replay(trades []TradeRecord) ([]HoldingRecord, error) {
	b := newBook(nil)
	for _, t := range trades {
		if _, err := b.apply(t); err != nil {
			return nil, WrapError(ErrCodeInternal, "replay trade log", err)
		}
	}
	if b.holdings == nil {
		return []HoldingRecord{}, nil
	}
	return b.holdings, nil
}
