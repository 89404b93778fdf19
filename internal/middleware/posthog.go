package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/price_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// trackedQueryParams are copied into event properties so dashboard usage
// (which currency, which scale) can be analysed.
var trackedQueryParams = []string{"currency", "scale", "format"}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized or path is in skip list
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Create event name from route path (e.g., "/api/v1/series" -> "api_v1_series")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		eventName = strings.ReplaceAll(eventName, ":", "")

		// Skip if event name is empty (e.g., for 404s)
		if eventName == "" {
			return
		}

		// Prepare event properties
		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for _, key := range trackedQueryParams {
			if v := c.Query(key); v != "" {
				props[key] = v
			}
		}
		if items := c.QueryArray("items"); len(items) > 0 {
			props["items"] = items
		}

		// Add route parameters if any
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		// Send event to PostHog
		posthogClient.Enqueue(distinctID(c), eventName, props)
	}
}

// distinctID identifies the caller: the token subject when authenticated, the client IP otherwise.
func distinctID(c *gin.Context) string {
	if subject, ok := GetSubjectFromContext(c); ok {
		return subject
	}
	return "anonymous:" + c.ClientIP()
}
