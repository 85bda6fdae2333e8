// Package services – CurrencyService
//
// The storefront prices everything in Kenyan shillings and shows US dollars
// using a fixed, configured rate. Rates reports the pair as floats for JSON;
// Convert does the arithmetic in decimal so that KES→USD rounding matches the
// storefront client (whole dollars, half away from zero).
package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Supported currency codes.
const (
	CurrencyKES = "KES"
	CurrencyUSD = "USD"
)

// DefaultUSDToKES is the rate used when none is configured.
const DefaultUSDToKES = 150.0

// Rates is the exchange-rate payload.
type Rates struct {
	USDToKES float64 `json:"usdToKes" example:"150"`
	KESToUSD float64 `json:"kesToUsd" example:"0.006666666666666667"`
}

// CurrencyService converts between KES and USD at a fixed rate.
type CurrencyService struct {
	usdToKES float64
	rate     decimal.Decimal
}

// NewCurrencyService returns a service using usdToKES shillings per dollar.
// Non-positive rates fall back to DefaultUSDToKES.
func NewCurrencyService(usdToKES float64) *CurrencyService {
	if usdToKES <= 0 {
		usdToKES = DefaultUSDToKES
	}
	return &CurrencyService{usdToKES: usdToKES, rate: decimal.NewFromFloat(usdToKES)}
}

// Rates returns the configured pair.
func (s *CurrencyService) Rates() Rates {
	return Rates{USDToKES: s.usdToKES, KESToUSD: 1 / s.usdToKES}
}

// Convert converts amount from one currency to another. KES→USD results are
// rounded to whole dollars; USD→KES is exact. Converting a currency to itself
// returns amount unchanged.
func (s *CurrencyService) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = normalizeCurrency(from), normalizeCurrency(to)
	if !supportedCurrency(from) || !supportedCurrency(to) {
		return decimal.Zero, ErrUnsupportedCurrency
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	switch {
	case from == to:
		return amount, nil
	case from == CurrencyKES:
		return amount.Div(s.rate).Round(0), nil
	default:
		return amount.Mul(s.rate), nil
	}
}

// ParseAmount parses a decimal amount string.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func normalizeCurrency(c string) string { return strings.ToUpper(strings.TrimSpace(c)) }

func supportedCurrency(c string) bool { return c == CurrencyKES || c == CurrencyUSD }
