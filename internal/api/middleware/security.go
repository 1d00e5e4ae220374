package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// ContentSecurityPolicy is the policy sent with every response. The SPA only
// loads its own scripts; styles and fonts may come from CDNs.
const ContentSecurityPolicy = "default-src 'self'; base-uri 'self'; font-src 'self' https: data:; " +
	"form-action 'self'; frame-ancestors 'self'; img-src 'self' data:; object-src 'none'; " +
	"script-src 'self'; script-src-attr 'none'; style-src 'self' https: 'unsafe-inline'"

// Secure sets the hardening headers.
func Secure() echo.MiddlewareFunc {
	return echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: ContentSecurityPolicy,
	})
}

// CORS allows the configured frontend origins with credentials.
func CORS(origins []string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}

// HTTPSRedirect sends plain-HTTP requests to https, honouring
// X-Forwarded-Proto. Probes are left alone so the load balancer can reach them.
func HTTPSRedirect() echo.MiddlewareFunc {
	return echomiddleware.HTTPSRedirectWithConfig(echomiddleware.RedirectConfig{
		Skipper: isProbe,
		Code:    http.StatusMovedPermanently,
	})
}

func isProbe(c echo.Context) bool {
	switch c.Request().URL.Path {
	case "/healthz", "/health", "/health/ready", "/metrics":
		return true
	}
	return false
}
