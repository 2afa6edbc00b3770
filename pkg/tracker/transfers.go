package tracker

import "fmt"

// Transfer moves shares between accounts, creating paired TRANSFER_OUT and
// TRANSFER_IN records linked by LinkedID. Both records carry the source's
// average cost as the price so the cost basis is preserved across accounts;
// total shares and total cost basis of the portfolio are invariant under a
// transfer.
func (c *Core) Transfer(req TransferRequest) (*TransferResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, NewError(ErrCodeValidation, "symbol is required")
	}
	if !req.Quantity.IsPositive() {
		return nil, NewError(ErrCodeValidation, "quantity must be greater than zero")
	}
	fromAccount := normalizeAccount(req.FromAccount)
	if fromAccount == "" {
		return nil, NewError(ErrCodeValidation, "from account is required")
	}
	toAccount := normalizeAccount(req.ToAccount)
	if toAccount == "" {
		return nil, NewError(ErrCodeValidation, "to account is required")
	}
	if fromAccount == toAccount {
		return nil, NewError(ErrCodeValidation, "from and to accounts must be different")
	}
	date := req.Date
	if date == "" {
		date = todayISO()
	}
	if !isValidDate(date) {
		return nil, Errorf(ErrCodeValidation, "invalid date: %s (want YYYY-MM-DD)", req.Date)
	}

	idx := c.findHolding(fromAccount, symbol)
	if idx < 0 {
		return nil, Errorf(ErrCodeNotFound, "no holdings for %s in %s", symbol, fromAccount)
	}
	source := c.holdings[idx]
	if req.Quantity.GreaterThan(source.Shares) {
		return nil, Errorf(ErrCodeInsufficientShares,
			"insufficient shares: have %s, trying to transfer %s", source.Shares.String(), req.Quantity.String())
	}
	avgCost := source.AvgCost

	baseNote := ""
	if req.Notes != "" {
		baseNote = req.Notes + " | "
	}
	outID := c.nextID
	inID := c.nextID + 1
	out := TradeRecord{
		ID:       outID,
		Date:     date,
		Account:  fromAccount,
		Name:     source.Name,
		Symbol:   symbol,
		Type:     TradeTransferOut,
		Quantity: req.Quantity,
		Price:    avgCost,
		LinkedID: inID,
		Notes:    fmt.Sprintf("%stransfer to %s", baseNote, toAccount),
	}
	in := TradeRecord{
		ID:       inID,
		Date:     date,
		Account:  toAccount,
		Name:     source.Name,
		Symbol:   symbol,
		Type:     TradeTransferIn,
		Quantity: req.Quantity,
		Price:    avgCost,
		LinkedID: outID,
		Notes:    fmt.Sprintf("%stransfer from %s", baseNote, fromAccount),
	}

	b := newBook(c.holdings)
	if _, err := b.apply(out); err != nil {
		return nil, err
	}
	if _, err := b.apply(in); err != nil {
		return nil, err
	}

	if err := c.commit(b.holdings, append(c.trades, out, in)); err != nil {
		return nil, err
	}
	c.nextID += 2

	c.logger.Info("transfer recorded",
		"out_id", outID,
		"in_id", inID,
		"symbol", symbol,
		"from", fromAccount,
		"to", toAccount,
		"quantity", req.Quantity.String(),
	)
	return &TransferResult{
		TransferOutID: outID,
		TransferInID:  inID,
		AvgCost:       avgCost,
	}, nil
}
