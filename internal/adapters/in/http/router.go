package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tailor/internal/generated/servers"
)

const (
	BackOfficePrefix = "/api/v1/"
	PortalPrefix     = "/my/"
)

// RouterOptions carries the collaborators mounted around the API handlers.
type RouterOptions struct {
	Doc      *openapi3.T
	Auth     CustomerAuth
	Observer RequestObserver
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, health, metrics and
// the Swagger UI.
func NewRouter(server servers.ServerInterface, opts RouterOptions) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	if opts.Observer != nil {
		e.Use(MetricsMiddleware(opts.Observer))
	}

	if opts.Doc != nil {
		validator, err := NewRequestValidator(opts.Doc, BackOfficePrefix)
		if err != nil {
			return nil, err
		}
		e.Use(validator.Middleware())

		if err = RegisterSwaggerDoc(opts.Doc); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	e.Use(opts.Auth.Middleware(PortalPrefix))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}
