package api

import (
	"net/http"
	"strconv"

	"stocktracker/pkg/tracker"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getHoldings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.core.Holdings(tracker.HoldingFilter{
		Account: query.Get("account"),
		Symbol:  query.Get("symbol"),
	})
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getHoldingsSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.Summary()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) addHolding(w http.ResponseWriter, r *http.Request) {
	var payload addHoldingPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.core.AddHolding(tracker.AddHoldingRequest{
		Account:      payload.Account,
		Name:         payload.Name,
		Symbol:       payload.Symbol,
		Quantity:     payload.Quantity,
		BookCost:     payload.BookCost,
		AcquiredDate: payload.AcquiredDate,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) rebuildHoldings(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.RebuildHoldings()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getTrades(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := tradeFilterFromQuery(r)
	result, err := h.core.Trades(filter)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if query.Get("paged") != "1" {
		writeJSON(w, http.StatusOK, result)
		return
	}
	total, err := h.core.TradeCount(filter)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tradesResponse{
		Items:  result,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *handler) getTradesSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.TradesSummary(tradeFilterFromQuery(r))
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) addTrade(w http.ResponseWriter, r *http.Request) {
	var payload addTradePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.core.RecordTrade(tracker.TradeRequest{
		Date:       payload.Date,
		Account:    payload.Account,
		Name:       payload.Name,
		Symbol:     payload.Symbol,
		Type:       payload.Type,
		Quantity:   payload.Quantity,
		Price:      payload.Price,
		Commission: payload.Commission,
		Notes:      payload.Notes,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) addTransfer(w http.ResponseWriter, r *http.Request) {
	var payload addTransferPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.core.Transfer(tracker.TransferRequest{
		Date:        payload.Date,
		Symbol:      payload.Symbol,
		Quantity:    payload.Quantity,
		FromAccount: payload.FromAccount,
		ToAccount:   payload.ToAccount,
		Notes:       payload.Notes,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.Accounts()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) getSymbols(w http.ResponseWriter, r *http.Request) {
	result, err := h.core.Symbols()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func tradeFilterFromQuery(r *http.Request) tracker.TradeFilter {
	query := r.URL.Query()
	limit, offset := normalizeLimitOffset(
		parseIntDefault(query.Get("limit"), 100),
		parseIntDefault(query.Get("offset"), 0),
	)
	return tracker.TradeFilter{
		Account:   query.Get("account"),
		Symbol:    query.Get("symbol"),
		Type:      query.Get("type"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Limit:     limit,
		Offset:    offset,
	}
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
