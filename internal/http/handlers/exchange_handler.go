// Exchange-rate HTTP handlers.
//
//   - GET /exchange-rate          (configured KES/USD pair)
//   - GET /exchange-rate/convert  (convert an amount)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-storefront-backend/internal/services"
)

// ConvertResponse is the result of a currency conversion.
type ConvertResponse struct {
	Amount float64 `json:"amount" example:"15500"`
	From   string  `json:"from" example:"KES"`
	To     string  `json:"to" example:"USD"`
	Result float64 `json:"result" example:"103"`
}

// GetExchangeRate godoc
// @ID          getExchangeRate
// @Summary     Get the exchange rate
// @Description Returns the fixed KES/USD pair used for price display.
// @Tags        Currency
// @Produce     json
//
// @Success     200  {object}  services.Rates
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch exchange rate"
// @Router      /exchange-rate [get]
func (h *Handlers) GetExchangeRate(c *gin.Context) {
	if h.currency == nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgRateFailed)
		return
	}
	ok(c, http.StatusOK, h.currency.Rates())
}

// ConvertCurrency godoc
// @ID          convertCurrency
// @Summary     Convert an amount between KES and USD
// @Description KES→USD results are rounded to whole dollars; USD→KES is exact.
// @Tags        Currency
// @Produce     json
//
// @Param       amount  query  string  true  "Non-negative amount"  example(15500)
// @Param       from    query  string  false "Source currency"      Enums(KES, USD) default(KES)
// @Param       to      query  string  false "Target currency"      Enums(KES, USD) default(USD)
//
// @Success     200  {object}  handlers.ConvertResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /exchange-rate/convert [get]
func (h *Handlers) ConvertCurrency(c *gin.Context) {
	if h.currency == nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgRateFailed)
		return
	}
	amount, err := services.ParseAmount(c.Query("amount"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	from := c.DefaultQuery("from", services.CurrencyKES)
	to := c.DefaultQuery("to", services.CurrencyUSD)

	res, err := h.currency.Convert(amount, from, to)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedCurrency), errors.Is(err, services.ErrInvalidAmount):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			failErr(c, ErrCodeInternal, msgRateFailed, err)
		}
		return
	}
	ok(c, http.StatusOK, ConvertResponse{
		Amount: amount.InexactFloat64(),
		From:   normalizeCode(from),
		To:     normalizeCode(to),
		Result: res.InexactFloat64(),
	})
}

func normalizeCode(c string) string { return strings.ToUpper(strings.TrimSpace(c)) }
