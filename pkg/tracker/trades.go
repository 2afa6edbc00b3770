package tracker

import "sort"

// RecordTrade validates and records a BUY or SELL trade: the holdings table
// is updated and the trade appended to the log in one step. Validation
// failures reject the trade before anything is written, so a rejected trade
// never reaches the log. Transfers go through Transfer.
func (c *Core) RecordTrade(req TradeRequest) (*TradeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, err := c.buildTradeRecord(req)
	if err != nil {
		return nil, err
	}
	if record.Type != TradeBuy && record.Type != TradeSell {
		return nil, Errorf(ErrCodeInvalidInput, "trade type %s not allowed here; use Transfer for account transfers", record.Type)
	}

	b := newBook(c.holdings)
	realized, err := b.apply(*record)
	if err != nil {
		return nil, err
	}

	if err := c.commit(b.holdings, append(c.trades, *record)); err != nil {
		return nil, err
	}
	c.nextID++

	result := &TradeResult{TradeID: record.ID, RealizedGain: realized}
	if idx := c.findHolding(record.Account, record.Symbol); idx >= 0 {
		result.Shares = c.holdings[idx].Shares
		result.AvgCost = c.holdings[idx].AvgCost
	}
	c.logger.Info("trade recorded",
		"id", record.ID,
		"type", record.Type,
		"account", record.Account,
		"symbol", record.Symbol,
		"quantity", record.Quantity.String(),
		"price", record.Price.String(),
	)
	return result, nil
}

func (c *Core) buildTradeRecord(req TradeRequest) (*TradeRecord, error) {
	account := normalizeAccount(req.Account)
	if account == "" {
		return nil, NewError(ErrCodeValidation, "account is required")
	}
	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, NewError(ErrCodeValidation, "symbol is required")
	}
	tradeType := normalizeTradeType(req.Type)
	if !isValidTradeType(tradeType) {
		return nil, Errorf(ErrCodeValidation, "invalid trade type: %s", req.Type)
	}
	if !req.Quantity.IsPositive() {
		return nil, NewError(ErrCodeValidation, "quantity must be greater than zero")
	}
	if req.Price.IsNegative() {
		return nil, NewError(ErrCodeValidation, "price must not be negative")
	}
	if req.Commission.IsNegative() {
		return nil, NewError(ErrCodeValidation, "commission must not be negative")
	}
	date := req.Date
	if date == "" {
		date = todayISO()
	}
	if !isValidDate(date) {
		return nil, Errorf(ErrCodeValidation, "invalid date: %s (want YYYY-MM-DD)", req.Date)
	}

	return &TradeRecord{
		ID:         c.nextID,
		Date:       date,
		Account:    account,
		Name:       req.Name,
		Symbol:     symbol,
		Type:       tradeType,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Commission: req.Commission,
		Notes:      req.Notes,
	}, nil
}

// commit persists the new holdings table and trade log, then swaps them into
// memory. A write failure aborts the operation; the single-user model accepts
// last-write-wins with no partial-failure recovery.
func (c *Core) commit(holdings []HoldingRecord, trades []TradeRecord) error {
	if err := c.store.saveTrades(trades); err != nil {
		return WrapError(ErrCodeStorage, "persist trade log", err)
	}
	if err := c.store.saveHoldings(holdings); err != nil {
		return WrapError(ErrCodeStorage, "persist holdings", err)
	}
	c.holdings = holdings
	c.trades = trades
	return nil
}

// Trades returns trade log entries matching the filter, newest first.
func (c *Core) Trades(filter TradeFilter) ([]TradeRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := c.filterTrades(filter)
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].ID > matched[j].ID
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []TradeRecord{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// TradeCount returns the number of trades matching the filter.
func (c *Core) TradeCount(filter TradeFilter) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filterTrades(filter)), nil
}

// TradesSummary aggregates trades matching the filter: count, total shares
// traded, and total commission paid.
func (c *Core) TradesSummary(filter TradeFilter) (*TradesSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := &TradesSummary{}
	for _, t := range c.filterTrades(filter) {
		summary.Trades++
		summary.TotalShares = summary.TotalShares.Add(t.Quantity)
		summary.TotalCommission = summary.TotalCommission.Add(t.Commission)
	}
	return summary, nil
}

func (c *Core) filterTrades(filter TradeFilter) []TradeRecord {
	symbol := normalizeSymbol(filter.Symbol)
	tradeType := normalizeTradeType(filter.Type)
	account := normalizeAccount(filter.Account)

	matched := []TradeRecord{}
	for _, t := range c.trades {
		if account != "" && t.Account != account {
			continue
		}
		if symbol != "" && t.Symbol != symbol {
			continue
		}
		if tradeType != "" && t.Type != tradeType {
			continue
		}
		if filter.StartDate != "" && t.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && t.Date > filter.EndDate {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}
