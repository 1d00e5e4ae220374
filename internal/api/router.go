package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/omsorgsplus/booking-api/docs"
	"github.com/omsorgsplus/booking-api/internal/api/handler"
	"github.com/omsorgsplus/booking-api/internal/api/middleware"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

const metricsNamespace = "omsorgsplus"

// Dependencies is everything NewRouter needs. Zero values disable the
// optional pieces: no RateLimitStore means no rate limiting, no AdminSecret
// means staff creation is public.
type Dependencies struct {
	Staff    ports.StaffService
	Bookings ports.BookingService
	Contact  ports.ContactService

	// Health lists the dependencies /health/ready pings, by name.
	Health map[string]handler.Pinger

	Location       *time.Location
	StaticDir      string
	AllowedOrigins []string
	AdminSecret    string
	ForceHTTPS     bool
	TrustProxy     bool
	BodyLimit      string
	RateLimitStore echomiddleware.RateLimiterStore

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.BodyLimit == "" {
		deps.BodyLimit = "1M"
	}

	// Client IPs key the rate limiter, so X-Forwarded-For is only read
	// behind a proxy on a private network.
	if deps.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// --- Pre-routing ---
	if deps.ForceHTTPS {
		e.Pre(middleware.HTTPSRedirect())
	}
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.Secure())
	e.Use(middleware.CORS(deps.AllowedOrigins))
	e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	if deps.RateLimitStore != nil {
		e.Use(middleware.RateLimit(deps.RateLimitStore))
	}
	e.Use(echomiddleware.Gzip())

	// --- Handlers ---
	staffHandler := handler.NewStaffHandler(deps.Staff)
	bookingHandler := handler.NewBookingHandler(deps.Bookings, deps.Location)
	contactHandler := handler.NewContactHandler(deps.Contact)
	healthHandler := handler.NewHealthHandler(deps.Health)
	staticHandler := handler.NewStaticHandler(deps.StaticDir)

	// --- API routes ---
	apiGroup := e.Group("/api")

	staff := apiGroup.Group("/staff")
	staff.GET("", staffHandler.List)
	staff.GET("/:id", staffHandler.Get)
	staff.POST("", staffHandler.Create, middleware.AdminGuard(deps.AdminSecret)...)
	staff.PUT("/:id/rating", staffHandler.Rate)

	bookings := apiGroup.Group("/bookings")
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.POST("", bookingHandler.Create)

	contact := apiGroup.Group("/contact")
	contact.GET("", contactHandler.Status)
	contact.POST("", contactHandler.Submit)

	e.Any("/api", staticHandler.NotFound)
	apiGroup.Any("/*", staticHandler.NotFound)

	// --- Health probes and tooling (no auth required) ---
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Frontend ---
	e.GET("/*", staticHandler.Serve)

	return e
}
