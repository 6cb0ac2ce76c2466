package http

import (
	"log/slog"
	"net/http"
	"sync"

	"farmadelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance: recovery, access log, metrics, CSRF
// and OpenAPI validation in front of the API routes, plus /health,
// /metrics and /swagger/*.
func NewRouter(srv *Server, metrics *ServerMetrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc.MarshalJSON); err != nil {
		return nil, err
	}
	validator, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(metrics.Middleware())
	e.Use(csrf())
	e.Use(validator)

	servers.RegisterHandlers(e, srv)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var swaggerOnce sync.Once

// registerSwaggerDoc publishes the API document to swag once per process;
// swag panics on a second registration under the same name.
func registerSwaggerDoc(marshal func() ([]byte, error)) error {
	var err error
	swaggerOnce.Do(func() {
		var data []byte
		if data, err = marshal(); err != nil {
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return err
}
