// Package middleware contains the Gin middleware of the storefront API.
//
// This file implements RedactingLogger, the access logger. Contact and order
// submissions carry names, emails and phone numbers, so everything that
// reaches the log (query strings, header values, response previews) is
// scrubbed first.
//
//   - Emails, phone numbers and UUIDs are replaced with placeholders.
//   - Authorization, Cookie and Set-Cookie (plus configured headers) are masked.
//   - For API paths a short preview of the response body is logged after
//     scrubbing, capped at BodyPreview bytes.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.RequestID())
//	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
//	    MaskHeaders: []string{"X-Api-Key"},
//	    BodyPrefix:  "/api",
//	}))
package middleware

import (
	"bytes"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DefaultBodyPreview is the response-preview cap used when none is configured.
const DefaultBodyPreview = 200

// previewMargin is captured beyond the preview cap so that a value crossing
// the cap is still whole when Redact runs.
const previewMargin = 256

// maxQueryLogLength caps the number of bytes of the raw query string logged.
const maxQueryLogLength = 2048

// RedactOptions configures RedactingLogger.
type RedactOptions struct {
	// MaskHeaders lists extra header names (case-insensitive) whose values
	// are replaced with "[REDACTED]".
	MaskHeaders []string
	// BodyPrefix enables response previews for paths with this prefix.
	// Empty disables previews.
	BodyPrefix string
	// BodyPreview caps the preview in bytes; <= 0 uses DefaultBodyPreview.
	BodyPreview int
}

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits only, so UUID hex segments never match.
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Redact scrubs UUIDs, emails and phone numbers from s. UUIDs go first so the
// phone pattern cannot eat their digit groups.
func Redact(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// bodyTap copies the first limit bytes written through it. cut records
// whether anything past the limit was dropped.
type bodyTap struct {
	gin.ResponseWriter
	buf   bytes.Buffer
	limit int
	cut   bool
}

func (w *bodyTap) capture(b []byte) {
	room := w.limit - w.buf.Len()
	if len(b) > room {
		w.cut = true
		if room <= 0 {
			return
		}
		b = b[:room]
	}
	w.buf.Write(b)
}

// preview returns the scrubbed body preview capped at max bytes. When the
// capture was cut, the trailing run that could belong to an email or phone
// number is dropped before redaction, since a partial value no longer
// matches the patterns.
func (w *bodyTap) preview(max int) string {
	s := w.buf.String()
	if !w.cut {
		return truncate(Redact(s), max)
	}
	s = Redact(strings.TrimRightFunc(s, isContactRune))
	if len(s) > max {
		return truncate(s, max)
	}
	return s + "…"
}

// isContactRune reports whether r can appear inside an email address or a
// formatted phone number.
func isContactRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune("._%+-@() ", r)
}

func (w *bodyTap) Write(b []byte) (int, error) {
	w.capture(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyTap) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

// RedactingLogger logs one scrubbed line per request and installs a
// request-scoped logger (see LoggerFrom). Level follows the outcome: error
// for 5xx or collected gin errors, warn for 4xx, info otherwise.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}
	preview := opts.BodyPreview
	if preview <= 0 {
		preview = DefaultBodyPreview
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := maskHeaders[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = Redact(strings.Join(vv, ", "))
		}

		l := log.With().
			Str("request_id", RequestIDFrom(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Logger()
		c.Set(loggerKey, &l)

		var tap *bodyTap
		if opts.BodyPrefix != "" && strings.HasPrefix(c.Request.URL.Path, opts.BodyPrefix) {
			tap = &bodyTap{ResponseWriter: c.Writer, limit: preview + previewMargin}
			c.Writer = tap
		}

		c.Next()

		status := c.Writer.Status()

		ev := l.Info()
		switch {
		case len(c.Errors) > 0 || status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		if tap != nil && tap.buf.Len() > 0 {
			ev = ev.Str("response", tap.preview(preview))
		}

		ev.
			Str("query", truncate(Redact(c.Request.URL.RawQuery), maxQueryLogLength)).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
