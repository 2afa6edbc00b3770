package tracker

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func normalizeAccount(account string) string {
	return strings.TrimSpace(account)
}

func normalizeTradeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

func isValidTradeType(t string) bool {
	for _, v := range TradeTypes {
		if v == t {
			return true
		}
	}
	return false
}

func isValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func todayISO() string {
	return time.Now().Format(dateLayout)
}
