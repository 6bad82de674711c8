package middleware

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"meeting-room-approval/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	RequestIDHeader = "X-Request-ID"

	// incoming ids longer than this are replaced
	maxRequestIDLen = 64
)

type Logger struct {
	logger *slog.Logger
	zone   *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: zonedTime(zone, cfg.TimeFormat),
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return &Logger{logger: logger, zone: zone}
}

func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func zonedTime(zone *time.Location, layout string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key != slog.TimeKey {
			return a
		}
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.In(zone).Format(layout))
		}
		return a
	}
}

// LoggingMiddleware tags every request with an id and logs its start and outcome.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := l.requestID(c.GetHeader(RequestIDHeader))
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		base := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		ctx := c.Request.Context()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Request started", base...)

		c.Next()

		status := c.Writer.Status()
		attrs := append(base, callerAttrs(c)...)
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}
		l.logger.LogAttrs(ctx, levelFor(status), "Request completed", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// callerAttrs is read after c.Next because auth runs inside route groups.
func callerAttrs(c *gin.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", strconv.FormatInt(id, 10)))
	}
	if role, ok := GetUserRole(c); ok {
		attrs = append(attrs, slog.String("role", role.String()))
	}
	return attrs
}

func (l *Logger) requestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming != "" && len(incoming) <= maxRequestIDLen {
		return incoming
	}
	return time.Now().In(l.zone).Format("20060102150405") + "-" + uuid.NewString()[:8]
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
