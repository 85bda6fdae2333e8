package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-storefront-backend/internal/http/middleware"
)

// replay serves the resource created by the original submission when the
// middleware flagged the request as a replay. It reports whether a response
// was written; if the resource cannot be loaded the request is processed
// normally.
func replay[T any](c *gin.Context, get func(ctx context.Context, id string) (*T, error)) bool {
	if !middleware.IsReplay(c) {
		return false
	}
	res, err := get(c.Request.Context(), middleware.ReplayResourceID(c))
	if err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotent replay: resource unavailable")
		return false
	}
	c.Header(middleware.HeaderIdempotencyReplayed, "true")
	ok(c, http.StatusCreated, res)
	return true
}

// remember records the created resource under the request's Idempotency-Key.
// Failures are logged and do not affect the response.
func (h *Handlers) remember(c *gin.Context, resourceID string) {
	key, has := middleware.GetIdempotencyKey(c)
	if !has || h.idem == nil {
		return
	}
	scope := middleware.IdempotencyScope(c)
	if err := h.idem.Remember(c.Request.Context(), scope, key, resourceID, http.StatusCreated); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Str("scope", scope).Msg("idempotency record")
	}
}
