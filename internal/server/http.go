package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/port"
	"github.com/Xalpha19/chaitravm/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

// payloadValidator plugs go-playground/validator into echo's c.Validate.
type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func NewHTTPServer(
	intakeService port.IntakeService,
	blogService port.BlogService,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &payloadValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	// Preflight requests are answered here with permissive headers; echo
	// itself rejects non-POST on the contact route with 405.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "x-client-info", "apikey"},
	}))

	server := &HTTPServer{
		echo: e,
	}

	// Initialize handlers
	contactHandler := handler.NewContactHTTPHandler(intakeService)
	blogHandler := handler.NewBlogHTTPHandler(blogService)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/contact", contactHandler.Handle())
	e.GET("/api/v1/posts", blogHandler.Handle())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "intake",
	})
}

// Echo exposes the underlying router, used by tests to drive requests.
func (s *HTTPServer) Echo() *echo.Echo {
	return s.echo
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
