package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-fulfillment/internal/platform/logging"
)

// Timeout returns middleware that sets a deadline on the request context.
//
// Handlers and downstream calls must honor ctx.Done(); the middleware never
// writes a response itself. A request that outlives its deadline is logged
// at WARN once the handler returns.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.Duration("timeout", timeout),
				slog.Int("status", c.Writer.Status()),
			)
		}
	}
}
