// Command report prints the portfolio tables to the terminal. It reads the
// same CSV files the server uses, so it works offline and on a copy of the
// data directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"

	"stocktracker/internal/config"
	"stocktracker/pkg/tracker"
)

func main() {
	var configPath string
	var dataDir string
	var account string
	var symbol string
	var showTrades bool
	var limit int

	flag.StringVar(&configPath, "config", "", "Path to a TOML config file (optional)")
	flag.StringVar(&dataDir, "data-dir", "", "Directory holding the portfolio CSV files")
	flag.StringVar(&account, "account", "", "Filter by account")
	flag.StringVar(&symbol, "symbol", "", "Filter by symbol")
	flag.BoolVar(&showTrades, "trades", false, "Print the trade log instead of holdings")
	flag.IntVar(&limit, "limit", 50, "Maximum number of trades to print")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	core, err := tracker.OpenWithOptions(tracker.Options{DataDir: cfg.DataDir, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: open %s: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}
	defer core.Close()

	if showTrades {
		err = printTrades(os.Stdout, core, account, symbol, limit)
	} else {
		err = printHoldings(os.Stdout, core, account, symbol)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func printHoldings(w io.Writer, core *tracker.Core, account, symbol string) error {
	holdings, err := core.Holdings(tracker.HoldingFilter{Account: account, Symbol: symbol})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Account", "Symbol", "Name", "Shares", "Avg Cost", "Book Value", "Realized Gain", "Acquired"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, h := range holdings {
		bookValue := h.Shares.Mul(h.AvgCost)
		table.Append([]string{
			h.Account,
			h.Symbol,
			h.Name,
			h.Shares.String(),
			h.AvgCost.StringFixed(4),
			bookValue.StringFixed(2),
			h.RealizedGain.StringFixed(2),
			h.AcquiredDate,
		})
	}
	table.Render()

	summary, err := core.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d positions, book value %s, realized gain %s\n",
		summary.Positions, summary.TotalValue.StringFixed(2), summary.TotalRealizedGain.StringFixed(2))
	return nil
}

func printTrades(w io.Writer, core *tracker.Core, account, symbol string, limit int) error {
	trades, err := core.Trades(tracker.TradeFilter{Account: account, Symbol: symbol, Limit: limit})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Account", "Symbol", "Type", "Quantity", "Price", "Commission", "Notes"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range trades {
		table.Append([]string{
			fmt.Sprintf("%d", t.ID),
			t.Date,
			t.Account,
			t.Symbol,
			t.Type,
			t.Quantity.String(),
			t.Price.StringFixed(4),
			t.Commission.StringFixed(2),
			t.Notes,
		})
	}
	table.Render()

	summary, err := core.TradesSummary(tracker.TradeFilter{Account: account, Symbol: symbol})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d trades, total commission %s\n",
		summary.Trades, summary.TotalCommission.StringFixed(2))
	return nil
}
