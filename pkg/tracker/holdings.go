package tracker

import "sort"

// Holdings returns the consolidated positions matching the filter, sorted by
// account then symbol.
func (c *Core) Holdings(filter HoldingFilter) ([]HoldingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account := normalizeAccount(filter.Account)
	symbol := normalizeSymbol(filter.Symbol)

	matched := []HoldingRecord{}
	for _, h := range c.holdings {
		if account != "" && h.Account != account {
			continue
		}
		if symbol != "" && h.Symbol != symbol {
			continue
		}
		matched = append(matched, h)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Account != matched[j].Account {
			return matched[i].Account < matched[j].Account
		}
		return matched[i].Symbol < matched[j].Symbol
	})
	return matched, nil
}

// Summary aggregates the consolidated table: number of positions, total
// shares held, total book value at average cost, and total realized gain.
func (c *Core) Summary() (*HoldingsSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := &HoldingsSummary{}
	for _, h := range c.holdings {
		summary.Positions++
		summary.TotalShares = summary.TotalShares.Add(h.Shares)
		summary.TotalValue = summary.TotalValue.Add(h.Shares.Mul(h.AvgCost))
		summary.TotalRealizedGain = summary.TotalRealizedGain.Add(h.RealizedGain)
	}
	return summary, nil
}

// AddHolding pre-populates an existing position from its quantity and total
// book cost. The opening position is recorded in the trade log as a BUY at
// the derived cost per share, so replaying the log still reproduces the
// holdings table.
func (c *Core) AddHolding(req AddHoldingRequest) (*TradeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account := normalizeAccount(req.Account)
	if account == "" {
		return nil, NewError(ErrCodeValidation, "account is required")
	}
	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, NewError(ErrCodeValidation, "symbol is required")
	}
	if !req.Quantity.IsPositive() {
		return nil, NewError(ErrCodeValidation, "quantity must be greater than zero")
	}
	if !req.BookCost.IsPositive() {
		return nil, NewError(ErrCodeValidation, "book cost must be greater than zero")
	}
	if c.findHolding(account, symbol) >= 0 {
		return nil, Errorf(ErrCodeDuplicate,
			"holding for %s in %s already exists; record a trade to add shares", symbol, account)
	}
	date := req.AcquiredDate
	if date == "" {
		date = todayISO()
	}
	if !isValidDate(date) {
		return nil, Errorf(ErrCodeValidation, "invalid date: %s (want YYYY-MM-DD)", req.AcquiredDate)
	}

	costPerShare := req.BookCost.Div(req.Quantity)
	record := TradeRecord{
		ID:       c.nextID,
		Date:     date,
		Account:  account,
		Name:     req.Name,
		Symbol:   symbol,
		Type:     TradeBuy,
		Quantity: req.Quantity,
		Price:    costPerShare,
		Notes:    "opening position",
	}

	b := newBook(c.holdings)
	if _, err := b.apply(record); err != nil {
		return nil, err
	}
	if err := c.commit(b.holdings, append(c.trades, record)); err != nil {
		return nil, err
	}
	c.nextID++

	c.logger.Info("holding added",
		"account", account,
		"symbol", symbol,
		"quantity", req.Quantity.String(),
		"cost_per_share", costPerShare.String(),
	)
	return &TradeResult{
		TradeID: record.ID,
		Shares:  req.Quantity,
		AvgCost: costPerShare,
	}, nil
}

// Accounts returns the distinct account names across holdings and trades.
func (c *Core) Accounts() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]struct{}{}
	for _, h := range c.holdings {
		seen[h.Account] = struct{}{}
	}
	for _, t := range c.trades {
		seen[t.Account] = struct{}{}
	}
	return sortedKeys(seen), nil
}

// Symbols returns the distinct stock symbols across holdings and trades.
func (c *Core) Symbols() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]struct{}{}
	for _, h := range c.holdings {
		seen[h.Symbol] = struct{}{}
	}
	for _, t := range c.trades {
		seen[t.Symbol] = struct{}{}
	}
	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
