package middleware

import (
	"context"
	"fmt"
	"net/http"

	"clinicbook/config"
	"clinicbook/infras/otel"
	"clinicbook/shared/cache"
	"clinicbook/shared/constant"
	"clinicbook/shared/failure"
	"clinicbook/transport/http/response"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	ResolveSite(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolveSite extracts the tenant from the X-Site-ID header, falling back to
// the siteId query parameter, and stores it on the request context. Requests
// without a site are rejected.
func (a *appMiddleware) ResolveSite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID := r.Header.Get(constant.RequestHeaderSiteID)
		if siteID == constant.Empty {
			siteID = r.URL.Query().Get(constant.RequestParamSiteID)
		}

		if siteID == constant.Empty {
			response.WithError(w, failure.MissingSiteID)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeySiteID, siteID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SiteID reads the tenant resolved by ResolveSite.
func SiteID(ctx context.Context) string {
	siteID, _ := ctx.Value(constant.ContextKeySiteID).(string)

	return siteID
}
