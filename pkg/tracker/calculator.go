package tracker

// book is a mutable view of the consolidated holdings table. Applying trade
// records to a book is the single place where cost-basis arithmetic lives;
// live trade recording and full-log replay both go through it so the stored
// table is always reproducible from the trade log.
type book struct {
	holdings []HoldingRecord
}

func newBook(holdings []HoldingRecord) *book {
	copied := make([]HoldingRecord, len(holdings))
	copy(copied, holdings)
	return &book{holdings: copied}
}

func (b *book) find(account, symbol string) int {
	for i := range b.holdings {
		if b.holdings[i].Account == account && b.holdings[i].Symbol == symbol {
			return i
		}
	}
	return -1
}

// apply mutates the book according to a single trade record. It returns the
// realized gain for SELL trades and nil otherwise. On error the book is left
// unchanged.
func (b *book) apply(t TradeRecord) (*Amount, error) {
	switch t.Type {
	case TradeBuy:
		b.acquire(t, t.Quantity.Mul(t.Price).Add(t.Commission))
		return nil, nil
	case TradeTransferIn:
		// Transfer records carry the source's average cost as the price, so
		// blending at that price preserves the basis across accounts.
		b.acquire(t, t.Quantity.Mul(t.Price))
		return nil, nil
	case TradeSell:
		return b.sell(t)
	case TradeTransferOut:
		if err := b.release(t); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return nil, Errorf(ErrCodeInvalidInput, "unknown trade type: %s", t.Type)
}

// acquire adds shares at the given total cost, blending the weighted-average
// cost with any existing position.
func (b *book) acquire(t TradeRecord, cost Amount) {
	idx := b.find(t.Account, t.Symbol)
	if idx < 0 {
		b.holdings = append(b.holdings, HoldingRecord{
			Account:      t.Account,
			Name:         t.Name,
			Symbol:       t.Symbol,
			Shares:       t.Quantity,
			AvgCost:      cost.Div(t.Quantity),
			AcquiredDate: t.Date,
		})
		return
	}
	h := &b.holdings[idx]
	newShares := h.Shares.Add(t.Quantity)
	existingCost := h.Shares.Mul(h.AvgCost)
	h.AvgCost = existingCost.Add(cost).Div(newShares)
	h.Shares = newShares
	if t.Name != "" {
		h.Name = t.Name
	}
}

// sell reduces the position and computes the realized gain against the
// average cost basis. The basis itself is unchanged by a sale.
func (b *book) sell(t TradeRecord) (*Amount, error) {
	idx := b.find(t.Account, t.Symbol)
	if idx < 0 {
		return nil, Errorf(ErrCodeNotFound, "no holdings for %s in %s", t.Symbol, t.Account)
	}
	h := &b.holdings[idx]
	if t.Quantity.GreaterThan(h.Shares) {
		return nil, Errorf(ErrCodeInsufficientShares,
			"insufficient shares: have %s, trying to sell %s", h.Shares.String(), t.Quantity.String())
	}
	proceeds := t.Quantity.Mul(t.Price).Sub(t.Commission)
	realized := proceeds.Sub(t.Quantity.Mul(h.AvgCost))
	h.Shares = h.Shares.Sub(t.Quantity)
	h.RealizedGain = h.RealizedGain.Add(realized)
	b.removeIfEmpty(idx)
	return amountPtr(realized), nil
}

// release removes shares for a transfer out without touching the basis.
func (b *book) release(t TradeRecord) error {
	idx := b.find(t.Account, t.Symbol)
	if idx < 0 {
		return Errorf(ErrCodeNotFound, "no holdings for %s in %s", t.Symbol, t.Account)
	}
	h := &b.holdings[idx]
	if t.Quantity.GreaterThan(h.Shares) {
		return Errorf(ErrCodeInsufficientShares,
			"insufficient shares: have %s, trying to transfer %s", h.Shares.String(), t.Quantity.String())
	}
	h.Shares = h.Shares.Sub(t.Quantity)
	b.removeIfEmpty(idx)
	return nil
}

// removeIfEmpty drops a position once its share count reaches zero. The
// average cost of an empty position is meaningless.
func (b *book) removeIfEmpty(idx int) {
	if b.holdings[idx].Shares.IsZero() {
		b.holdings = append(b.holdings[:idx], b.holdings[idx+1:]...)
	}
}
