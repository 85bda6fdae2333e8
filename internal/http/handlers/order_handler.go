// Custom-order HTTP handlers.
//
//   - POST /custom-orders       (submit; Idempotency-Key aware)
//   - GET  /custom-orders       (list)
//   - GET  /custom-orders/{id}  (single order)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/services"
)

// CreateCustomOrder godoc
// @ID          createCustomOrder
// @Summary     Submit a custom order
// @Description Stores a bespoke garment request. New orders are always pending with no estimated price.
// @Description Supports idempotency via the Idempotency-Key header (same key → same order).
// @Tags        Custom orders
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string                 false "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    domain.NewCustomOrder  true  "Order payload"
//
// @Success     201  {object}  domain.CustomOrder
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous submission"
// @Failure     400  {object}  handlers.ErrorResponse "Invalid order data"
// @Failure     429  {object}  handlers.ErrorResponse "Too many requests"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to create custom order"
// @Router      /custom-orders [post]
func (h *Handlers) CreateCustomOrder(c *gin.Context) {
	if replay(c, h.orders.Get) {
		return
	}

	var req domain.NewCustomOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, msgInvalidOrder, err)
		return
	}

	o, err := h.orders.Submit(c.Request.Context(), req)
	if err != nil {
		failErr(c, ErrCodeCreateFailed, msgOrderCreateFailed, err)
		return
	}
	h.remember(c, o.ID)
	ok(c, http.StatusCreated, o)
}

// ListCustomOrders godoc
// @ID          listCustomOrders
// @Summary     List custom orders
// @Tags        Custom orders
// @Produce     json
//
// @Success     200  {array}   domain.CustomOrder
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch custom orders"
// @Router      /custom-orders [get]
func (h *Handlers) ListCustomOrders(c *gin.Context) {
	items, err := h.orders.List(c.Request.Context())
	if err != nil {
		failErr(c, ErrCodeListFailed, msgOrdersFailed, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetCustomOrder godoc
// @ID          getCustomOrder
// @Summary     Get a custom order
// @Tags        Custom orders
// @Produce     json
//
// @Param       id  path  string  true  "Order ID"  format(uuid)
//
// @Success     200  {object}  domain.CustomOrder
// @Failure     404  {object}  handlers.ErrorResponse "Custom order not found"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch custom order"
// @Router      /custom-orders/{id} [get]
func (h *Handlers) GetCustomOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgOrderNotFound)
			return
		}
		failErr(c, ErrCodeInternal, msgOrderFailed, err)
		return
	}
	ok(c, http.StatusOK, o)
}
