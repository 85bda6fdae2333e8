// Package middleware contains the Gin middleware of the storefront API.
//
// This file implements idempotency support for submissions. A POST may carry
// an Idempotency-Key header; the middleware validates it, stashes it in the
// context and, through a pluggable lookup, detects requests that replay a
// previously completed submission to the same route. Handlers then serve the
// stored resource instead of creating a duplicate, and the rate limiter lets
// the replay through.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header carrying the idempotency key.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotencyReplayed marks responses served from a stored result.
const HeaderIdempotencyReplayed = "Idempotency-Replayed"

const (
	ctxKeyIdemKey      = "idem.key"
	ctxKeyIdemReplay   = "idem.replay"
	ctxKeyIdemResource = "idem.resource"
	ctxKeyRateBypass   = "rate.bypass"
)

var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated key stored by IdempotencyValidator.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the request replays a completed submission.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// ReplayResourceID returns the id of the resource created by the original
// submission when IsReplay is true.
func ReplayResourceID(c *gin.Context) string {
	v, _ := c.Get(ctxKeyIdemResource)
	return asString(v)
}

// IdempotencyScope is the namespace keys are unique within: the matched
// route, so the same key may be reused on different endpoints.
func IdempotencyScope(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// IdempotencyOptions configures header validation.
type IdempotencyOptions struct {
	// MaxLen caps the key length; <= 0 means 200.
	MaxLen int
	// Pattern restricts allowed characters; nil means ^[A-Za-z0-9._~\-:]+$.
	Pattern *regexp.Regexp
}

// IdempotencyLookup returns the resource id recorded for (scope, key) if a
// live record exists at now. Errors do not block the request.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (resourceID string, exists bool, err error)

// IdempotencyValidator validates and stashes the Idempotency-Key of POST
// requests. A malformed key is rejected with 400; a key with a live record
// marks the request as a replay and exempts it from rate limiting. Requests
// without the header, and non-POST requests, pass through untouched.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": RequestIDFrom(c),
				"code":       "bad_request",
				"message":    "invalid Idempotency-Key",
			})
			return
		}
		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			id, exists, err := lookup(c.Request.Context(), IdempotencyScope(c), key, time.Now().UTC())
			if err != nil {
				LoggerFrom(c).Warn().Err(err).Msg("idempotency lookup")
			}
			if exists && id != "" {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyIdemResource, id)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}
