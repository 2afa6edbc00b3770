package api

import "stocktracker/pkg/tracker"

type addTradePayload struct {
	Date       string         `json:"date"`
	Account    string         `json:"account"`
	Name       string         `json:"name"`
	Symbol     string         `json:"symbol"`
	Type       string         `json:"type"`
	Quantity   tracker.Amount `json:"quantity"`
	Price      tracker.Amount `json:"price"`
	Commission tracker.Amount `json:"commission"`
	Notes      string         `json:"notes"`
}

type addTransferPayload struct {
	Date        string         `json:"date"`
	Symbol      string         `json:"symbol"`
	Quantity    tracker.Amount `json:"quantity"`
	FromAccount string         `json:"from_account"`
	ToAccount   string         `json:"to_account"`
	Notes       string         `json:"notes"`
}

type addHoldingPayload struct {
	Account      string         `json:"account"`
	Name         string         `json:"name"`
	Symbol       string         `json:"symbol"`
	Quantity     tracker.Amount `json:"quantity"`
	BookCost     tracker.Amount `json:"book_cost"`
	AcquiredDate string         `json:"acquired_date"`
}

type tradesResponse struct {
	Items  []tracker.TradeRecord `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
