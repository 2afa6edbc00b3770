package tracker

import "testing"

func TestRecordTrade_BuyWeightedAverage(t *testing.T) {
	core := setupTestCore(t)

	testBuy(t, core, "TFSA", "AAPL", 10, 100)
	result := testBuy(t, core, "TFSA", "AAPL", 10, 120)

	assertAmountEquals(t, result.Shares, 20, "shares after second buy")
	assertAmountEquals(t, result.AvgCost, 110, "avg cost after second buy")

	h := findHolding(t, core, "TFSA", "AAPL")
	assertAmountEquals(t, h.Shares, 20, "held shares")
	assertAmountEquals(t, h.AvgCost, 110, "held avg cost")
	assertAmountEquals(t, h.RealizedGain, 0, "realized gain untouched by buys")
}

func TestRecordTrade_BuySequenceMatchesTrueWeightedAverage(t *testing.T) {
	core := setupTestCore(t)

	buys := []struct{ qty, price float64 }{
		{5, 50}, {12, 61.25}, {3, 47.1}, {20, 55},
	}
	var totalQty, totalCost float64
	for _, b := range buys {
		testBuy(t, core, "Personal", "VTI", b.qty, b.price)
		totalQty += b.qty
		totalCost += b.qty * b.price
	}

	h := findHolding(t, core, "Personal", "VTI")
	assertAmountEquals(t, h.Shares, totalQty, "total shares")
	assertAmountEquals(t, h.AvgCost, totalCost/totalQty, "true weighted average")
}

func TestRecordTrade_SellRealizedGain(t *testing.T) {
	core := setupTestCore(t)

	testBuy(t, core, "TFSA", "AAPL", 10, 100)
	testBuy(t, core, "TFSA", "AAPL", 10, 120)
	result := testSell(t, core, "TFSA", "AAPL", 5, 150)

	if result.RealizedGain == nil {
		t.Fatal("expected realized gain on sell")
	}
	assertAmountEquals(t, *result.RealizedGain, 200, "realized gain 5*(150-110)")
	assertAmountEquals(t, result.Shares, 15, "remaining shares")
	assertAmountEquals(t, result.AvgCost, 110, "avg cost unchanged by sell")

	h := findHolding(t, core, "TFSA", "AAPL")
	assertAmountEquals(t, h.RealizedGain, 200, "cumulative realized gain")
}

func TestRecordTrade_CommissionFoldedIntoCostAndProceeds(t *testing.T) {
	core := setupTestCore(t)

	// Buy: cost = 10*100 + 10 commission = 1010, avg = 101.
	_, err := core.RecordTrade(TradeRequest{
		Account:    "RRSP",
		Symbol:     "msft",
		Type:       TradeBuy,
		Quantity:   NewAmount(10),
		Price:      NewAmount(100),
		Commission: NewAmount(10),
	})
	assertNoError(t, err, "buy with commission")

	h := findHolding(t, core, "RRSP", "MSFT")
	assertAmountEquals(t, h.AvgCost, 101, "commission raises avg cost")

	// Sell: proceeds = 4*120 - 5 = 475, realized = 475 - 4*101 = 71.
	result, err := core.RecordTrade(TradeRequest{
		Account:    "RRSP",
		Symbol:     "MSFT",
		Type:       TradeSell,
		Quantity:   NewAmount(4),
		Price:      NewAmount(120),
		Commission: NewAmount(5),
	})
	assertNoError(t, err, "sell with commission")
	assertAmountEquals(t, *result.RealizedGain, 71, "commission reduces proceeds")
}

func TestRecordTrade_SellInsufficientSharesRejectedBeforeLog(t *testing.T) {
	core := setupTestCore(t)

	testBuy(t, core, "TFSA", "AAPL", 10, 100)

	_, err := core.RecordTrade(TradeRequest{
		Account:  "TFSA",
		Symbol:   "AAPL",
		Type:     TradeSell,
		Quantity: NewAmount(11),
		Price:    NewAmount(90),
	})
	assertErrorCode(t, err, ErrCodeInsufficientShares, "oversell")

	// Holdings unchanged, and the rejected trade never reached the log.
	h := findHolding(t, core, "TFSA", "AAPL")
	assertAmountEquals(t, h.Shares, 10, "shares unchanged")
	count, err := core.TradeCount(TradeFilter{})
	assertNoError(t, err, "TradeCount")
	if count != 1 {
		t.Fatalf("expected 1 trade in log, got %d", count)
	}
}

func TestRecordTrade_SellUnknownPosition(t *testing.T) {
	core := setupTestCore(t)

	_, err := core.RecordTrade(TradeRequest{
		Account:  "TFSA",
		Symbol:   "AAPL",
		Type:     TradeSell,
		Quantity: NewAmount(1),
		Price:    NewAmount(100),
	})
	assertErrorCode(t, err, ErrCodeNotFound, "sell without position")
}

func TestRecordTrade_SellToZeroRemovesHolding(t *testing.T) {
	core := setupTestCore(t)

	testBuy(t, core, "TFSA", "AAPL", 10, 100)
	testSell(t, core, "TFSA", "AAPL", 10, 130)

	holdings, err := core.Holdings(HoldingFilter{})
	assertNoError(t, err, "Holdings")
	if len(holdings) != 0 {
		t.Fatalf("expected empty holdings table, got %d rows", len(holdings))
	}
}

func TestRecordTrade_Validation(t *testing.T) {
	core := setupTestCore(t)

	cases := []struct {
		name string
		req  TradeRequest
		code ErrorCode
	}{
		{"missing account", TradeRequest{Symbol: "AAPL", Type: TradeBuy, Quantity: NewAmount(1), Price: NewAmount(1)}, ErrCodeValidation},
		{"missing symbol", TradeRequest{Account: "TFSA", Type: TradeBuy, Quantity: NewAmount(1), Price: NewAmount(1)}, ErrCodeValidation},
		{"bad type", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: "SHORT", Quantity: NewAmount(1), Price: NewAmount(1)}, ErrCodeValidation},
		{"zero quantity", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeBuy, Price: NewAmount(1)}, ErrCodeValidation},
		{"negative quantity", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeBuy, Quantity: NewAmount(-1), Price: NewAmount(1)}, ErrCodeValidation},
		{"negative price", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeBuy, Quantity: NewAmount(1), Price: NewAmount(-1)}, ErrCodeValidation},
		{"negative commission", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeBuy, Quantity: NewAmount(1), Price: NewAmount(1), Commission: NewAmount(-1)}, ErrCodeValidation},
		{"bad date", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeBuy, Quantity: NewAmount(1), Price: NewAmount(1), Date: "13/01/2025"}, ErrCodeValidation},
		{"transfer via RecordTrade", TradeRequest{Account: "TFSA", Symbol: "AAPL", Type: TradeTransferIn, Quantity: NewAmount(1), Price: NewAmount(1)}, ErrCodeInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.RecordTrade(tc.req)
			assertErrorCode(t, err, tc.code, tc.name)
		})
	}

	count, err := core.TradeCount(TradeFilter{})
	assertNoError(t, err, "TradeCount")
	if count != 0 {
		t.Fatalf("rejected trades must not reach the log, got %d", count)
	}
}

func TestTrades_FilterAndOrder(t *testing.T) {
	core := setupTestCore(t)

	mustTrade := func(date, account, symbol, typ string, qty, price float64) {
		t.Helper()
		_, err := core.RecordTrade(TradeRequest{
			Date:     date,
			Account:  account,
			Symbol:   symbol,
			Type:     typ,
			Quantity: NewAmount(qty),
			Price:    NewAmount(price),
		})
		assertNoError(t, err, "RecordTrade")
	}
	mustTrade("2025-01-10", "TFSA", "AAPL", TradeBuy, 10, 100)
	mustTrade("2025-02-01", "RRSP", "MSFT", TradeBuy, 5, 300)
	mustTrade("2025-03-15", "TFSA", "AAPL", TradeSell, 3, 140)

	trades, err := core.Trades(TradeFilter{})
	assertNoError(t, err, "Trades")
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].Date != "2025-03-15" || trades[2].Date != "2025-01-10" {
		t.Errorf("expected newest first, got %s .. %s", trades[0].Date, trades[2].Date)
	}

	trades, err = core.Trades(TradeFilter{Account: "TFSA", Symbol: "aapl"})
	assertNoError(t, err, "Trades filtered")
	if len(trades) != 2 {
		t.Fatalf("expected 2 TFSA/AAPL trades, got %d", len(trades))
	}

	trades, err = core.Trades(TradeFilter{Type: TradeSell})
	assertNoError(t, err, "Trades by type")
	if len(trades) != 1 || trades[0].Type != TradeSell {
		t.Fatalf("expected single SELL trade, got %v", trades)
	}

	trades, err = core.Trades(TradeFilter{StartDate: "2025-02-01", EndDate: "2025-02-28"})
	assertNoError(t, err, "Trades by date range")
	if len(trades) != 1 || trades[0].Symbol != "MSFT" {
		t.Fatalf("expected single February trade, got %v", trades)
	}

	trades, err = core.Trades(TradeFilter{Limit: 1, Offset: 1})
	assertNoError(t, err, "Trades paged")
	if len(trades) != 1 || trades[0].Date != "2025-02-01" {
		t.Fatalf("expected middle trade on page 2, got %v", trades)
	}
}

func TestTradesSummary(t *testing.T) {
	core := setupTestCore(t)

	_, err := core.RecordTrade(TradeRequest{
		Account: "TFSA", Symbol: "AAPL", Type: TradeBuy,
		Quantity: NewAmount(10), Price: NewAmount(100), Commission: NewAmount(5),
	})
	assertNoError(t, err, "buy")
	_, err = core.RecordTrade(TradeRequest{
		Account: "TFSA", Symbol: "AAPL", Type: TradeSell,
		Quantity: NewAmount(4), Price: NewAmount(120), Commission: NewAmount(3),
	})
	assertNoError(t, err, "sell")

	summary, err := core.TradesSummary(TradeFilter{Account: "TFSA"})
	assertNoError(t, err, "TradesSummary")
	if summary.Trades != 2 {
		t.Errorf("expected 2 trades, got %d", summary.Trades)
	}
	assertAmountEquals(t, summary.TotalShares, 14, "total shares traded")
	assertAmountEquals(t, summary.TotalCommission, 8, "total commission")
}
