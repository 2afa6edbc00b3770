package tracker

// Trade actions recorded in the trade log.
const (
	TradeBuy         = "BUY"
	TradeSell        = "SELL"
	TradeTransferIn  = "TRANSFER_IN"
	TradeTransferOut = "TRANSFER_OUT"
)

var TradeTypes = []string{
	TradeBuy,
	TradeSell,
	TradeTransferIn,
	TradeTransferOut,
}

// HoldingRecord is one row of the consolidated holdings table: the current
// position for a (account, symbol) pair with its weighted-average cost basis.
type HoldingRecord struct {
	Account      string `csv:"account" json:"account"`
	Name         string `csv:"name" json:"name"`
	Symbol       string `csv:"symbol" json:"symbol"`
	Shares       Amount `csv:"shares" json:"shares"`
	AvgCost      Amount `csv:"avg_cost" json:"avg_cost"`
	RealizedGain Amount `csv:"realized_gain" json:"realized_gain"`
	AcquiredDate string `csv:"acquired_date" json:"acquired_date"`
}

// TradeRecord is one row of the append-only trade log. Records are immutable
// once written; holdings are always reproducible by replaying them in order.
type TradeRecord struct {
	ID         int64  `csv:"id" json:"id"`
	Date       string `csv:"date" json:"date"`
	Account    string `csv:"account" json:"account"`
	Name       string `csv:"name" json:"name"`
	Symbol     string `csv:"symbol" json:"symbol"`
	Type       string `csv:"type" json:"type"`
	Quantity   Amount `csv:"quantity" json:"quantity"`
	Price      Amount `csv:"price" json:"price"`
	Commission Amount `csv:"commission" json:"commission"`
	LinkedID   int64  `csv:"linked_id,omitempty" json:"linked_id,omitempty"`
	Notes      string `csv:"notes,omitempty" json:"notes,omitempty"`
}

// TradeRequest defines inputs to record a BUY or SELL trade.
type TradeRequest struct {
	Date       string
	Account    string
	Name       string
	Symbol     string
	Type       string
	Quantity   Amount
	Price      Amount
	Commission Amount
	Notes      string
}

// TradeResult reports the outcome of a recorded trade.
type TradeResult struct {
	TradeID      int64   `json:"trade_id"`
	Shares       Amount  `json:"shares"`
	AvgCost      Amount  `json:"avg_cost"`
	RealizedGain *Amount `json:"realized_gain,omitempty"`
}

// TransferRequest defines inputs for a cross-account transfer.
type TransferRequest struct {
	Date        string
	Symbol      string
	Quantity    Amount
	FromAccount string
	ToAccount   string
	Notes       string
}

// TransferResult returns the IDs of the paired trade records.
type TransferResult struct {
	TransferOutID int64  `json:"transfer_out_id"`
	TransferInID  int64  `json:"transfer_in_id"`
	AvgCost       Amount `json:"avg_cost"`
}

// AddHoldingRequest defines inputs to pre-populate an existing position.
type AddHoldingRequest struct {
	Account      string
	Name         string
	Symbol       string
	Quantity     Amount
	BookCost     Amount
	AcquiredDate string
}

// HoldingFilter controls holdings queries.
type HoldingFilter struct {
	Account string
	Symbol  string
}

// TradeFilter controls trade log queries.
type TradeFilter struct {
	Account   string
	Symbol    string
	Type      string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// HoldingsSummary aggregates the consolidated table for the dashboard.
type HoldingsSummary struct {
	Positions         int    `json:"positions"`
	TotalShares       Amount `json:"total_shares"`
	TotalValue        Amount `json:"total_value"`
	TotalRealizedGain Amount `json:"total_realized_gain"`
}

// TradesSummary aggregates trades matching a filter.
type TradesSummary struct {
	Trades          int    `json:"trades"`
	TotalShares     Amount `json:"total_shares"`
	TotalCommission Amount `json:"total_commission"`
}
