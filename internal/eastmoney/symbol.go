package eastmoney

import (
	"fmt"
	"strings"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

// DetectMarket classifies a bare stock code: 6-digit codes are A shares,
// anything up to 5 digits is treated as Hong Kong.
func DetectMarket(symbol string) (statement.Market, error) {
	code := strings.TrimSpace(symbol)
	switch {
	case len(code) == 6 && isDigits(code):
		return statement.MarketAShare, nil
	case len(code) >= 1 && len(code) <= 5 && isDigits(code):
		return statement.MarketHK, nil
	}
	return "", fmt.Errorf("unrecognized stock code %q", symbol)
}

// SecuCode appends the exchange suffix Eastmoney's SECUCODE filter expects.
// Shenzhen prefixes: 000 001 002 003 300 301. Shanghai: 600 601 603 605 688.
// Beijing: 430 83x 87x 920. HK codes are zero padded to five digits.
func SecuCode(symbol string) (string, error) {
	market, err := DetectMarket(symbol)
	if err != nil {
		return "", err
	}
	if market == statement.MarketHK {
		return NormalizeHKCode(symbol) + ".HK", nil
	}

	code := strings.TrimSpace(symbol)
	switch code[:3] {
	case "000", "001", "002", "003", "300", "301":
		return code + ".SZ", nil
	case "600", "601", "603", "605", "688", "689":
		return code + ".SH", nil
	case "430", "830", "831", "832", "833", "834", "835", "836", "837", "838", "839",
		"870", "871", "872", "873", "920":
		return code + ".BJ", nil
	}
	return "", fmt.Errorf("cannot infer exchange for code %q", symbol)
}

// NormalizeHKCode pads an HK code to the five digits HKEX and Eastmoney use.
func NormalizeHKCode(symbol string) string {
	code := strings.TrimSpace(symbol)
	for len(code) < 5 {
		code = "0" + code
	}
	return code
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
