// Package httpapi wires the HTTP transport (Gin) to the storefront services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, access logging with redaction, panic recovery,
// metrics, CORS, security headers, idempotency, and rate limiting.
package httpapi

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/tbourn/go-storefront-backend/docs"
	"github.com/tbourn/go-storefront-backend/internal/config"
	"github.com/tbourn/go-storefront-backend/internal/http/handlers"
	"github.com/tbourn/go-storefront-backend/internal/http/middleware"
	"github.com/tbourn/go-storefront-backend/internal/services"
)

// Store is everything the router needs from the persistence layer.
type Store interface {
	services.Storage
	services.IdempotencyRepo
}

// EntityCounts adapts a store to middleware.EntityCounter.
func EntityCounts(s services.Storage) middleware.EntityCounter {
	return func(ctx context.Context) (map[string]int64, error) {
		st, err := s.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return st.Counts(), nil
	}
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Gzip (optional), registered before the logger so the logger sees
//     uncompressed bodies
//  4. RedactingLogger: structured logs with PII scrubbing
//  5. Recovery: capture panics after logger
//  6. Body size limiter
//  7. Metrics and store gauges
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per IP, bypass on replay)
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, store Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Compression
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}

	// 4) Structured logging with redaction; API responses get a body preview
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		BodyPrefix: apiPrefix(cfg.APIBasePath),
	}))

	// 5) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 6) Global body size limit
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	r.Use(limitBody(maxBody))

	// 7) Prometheus metrics and /metrics endpoint
	counts := EntityCounts(store)
	r.Use(middleware.Metrics())
	r.Use(middleware.StoreGauges(counts))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation (before rate limiting)
	idem := services.NewIdempotencyService(store, cfg.IdempotencyTTL)
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idem.Lookup))

	// 9) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	if cfg.RateRedis != "" {
		if opts, err := redis.ParseURL(cfg.RateRedis); err == nil {
			rl.WithShared(middleware.NewRedisWindow(redis.NewClient(opts), sharedLimit(cfg.RateRPS, cfg.RateBurst), time.Minute))
		} else {
			log.Warn().Err(err).Msg("invalid RATE_LIMIT_REDIS_URL; using per-process rate limits")
		}
	}
	r.Use(rl.Handler())

	// 10) CORS posture (allow all if none configured)
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:    cfg.Security.EnableHSTS,
		HSTSMaxAge:    cfg.Security.HSTSMaxAge,
		NoStoreWrites: true,
		EnablePolicy:  true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← store
	h := handlers.New(handlers.Services{
		Catalog:     services.NewCatalogService(store),
		Orders:      services.NewOrderService(store),
		Contacts:    services.NewContactService(store),
		Currency:    services.NewCurrencyService(cfg.USDToKES),
		Idempotency: idem,
		Stats:       store.Stats,
	})

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Products
		api.GET("/products", h.ListProducts)
		api.GET("/products/search", h.SearchProducts)
		api.GET("/products/category/:category", h.ListProductsByCategory)
		api.GET("/products/:id", h.GetProduct)

		// Custom orders
		api.POST("/custom-orders", h.CreateCustomOrder)
		api.GET("/custom-orders", h.ListCustomOrders)
		api.GET("/custom-orders/:id", h.GetCustomOrder)

		// Contacts
		api.POST("/contacts", h.CreateContact)
		api.GET("/contacts", h.ListContacts)

		// Currency
		api.GET("/exchange-rate", h.GetExchangeRate)
		api.GET("/exchange-rate/convert", h.ConvertCurrency)
	}
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", "If-None-Match", middleware.HeaderIdempotencyKey}
	corsExpose  = []string{"X-Request-ID", "Content-Length", "ETag", middleware.HeaderIdempotencyReplayed}
)

// corsMiddleware returns the CORS chain for the given allowlist. An empty
// allowlist allows every origin without credentials.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	if len(origins) == 0 {
		return []gin.HandlerFunc{
			// Force ACAO: * even for requests without an Origin header.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(cors.Config{
				AllowAllOrigins:  true,
				AllowMethods:     corsMethods,
				AllowHeaders:     corsHeaders,
				ExposeHeaders:    corsExpose,
				AllowCredentials: false, // must remain false with AllowAllOrigins
				MaxAge:           12 * time.Hour,
			}),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return []gin.HandlerFunc{
		// Echo ACAO with the request Origin when it is in the allowlist.
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExpose,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	}
}

// sharedLimit converts the token-bucket settings into a per-minute budget for
// the shared window.
func sharedLimit(rps float64, burst int) int {
	n := int(math.Ceil(rps * 60))
	if n < burst {
		n = burst
	}
	return n
}

// limitBody caps the request body size to maxBytes using
// http.MaxBytesReader. Requests exceeding the cap fail on read, which the
// JSON handlers report as a malformed body.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

// apiPrefix is the path prefix whose responses the access log previews.
func apiPrefix(base string) string {
	if base == "" || base == "/" {
		return "/"
	}
	return base + "/"
}
