package tracker

import (
	"errors"
	"testing"
)

// setupTestCore creates a Core over a temporary data directory.
func setupTestCore(t *testing.T) *Core {
	t.Helper()

	core, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test core: %v", err)
	}
	t.Cleanup(func() { core.Close() })
	return core
}

// testBuy records a BUY trade for testing.
func testBuy(t *testing.T, core *Core, account, symbol string, qty, price float64) *TradeResult {
	t.Helper()
	result, err := core.RecordTrade(TradeRequest{
		Account:  account,
		Symbol:   symbol,
		Type:     TradeBuy,
		Quantity: NewAmount(qty),
		Price:    NewAmount(price),
	})
	if err != nil {
		t.Fatalf("failed to record test BUY trade: %v", err)
	}
	return result
}

// testSell records a SELL trade for testing.
func testSell(t *testing.T, core *Core, account, symbol string, qty, price float64) *TradeResult {
	t.Helper()
	result, err := core.RecordTrade(TradeRequest{
		Account:  account,
		Symbol:   symbol,
		Type:     TradeSell,
		Quantity: NewAmount(qty),
		Price:    NewAmount(price),
	})
	if err != nil {
		t.Fatalf("failed to record test SELL trade: %v", err)
	}
	return result
}

// findHolding returns the holding for (account, symbol) or fails the test.
func findHolding(t *testing.T, core *Core, account, symbol string) HoldingRecord {
	t.Helper()
	holdings, err := core.Holdings(HoldingFilter{Account: account, Symbol: symbol})
	if err != nil {
		t.Fatalf("Holdings: %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("expected one holding for %s/%s, got %d", account, symbol, len(holdings))
	}
	return holdings[0]
}

func floatEquals(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// assertAmountEquals fails the test if the amount differs from want.
func assertAmountEquals(t *testing.T, got Amount, want float64, msg string) {
	t.Helper()
	f, _ := got.Float64()
	if !floatEquals(f, want, 0.0001) {
		t.Errorf("%s: got %s, want %.4f", msg, got.String(), want)
	}
}

// assertNoError fails the test if err is not nil.
func assertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// assertErrorCode fails the test unless err carries the given code.
func assertErrorCode(t *testing.T, err error, code ErrorCode, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error with code %s but got nil", msg, code)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("%s: expected *tracker.Error, got %T: %v", msg, err, err)
	}
	if e.Code != code {
		t.Fatalf("%s: expected code %s, got %s (%v)", msg, code, e.Code, err)
	}
}
