package handlers

import (
	"fiesta/internal/config"
	"fiesta/internal/services"
	"fiesta/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Services bundles the workflows the HTTP layer calls into.
type Services struct {
	Registration *services.RegistrationService
	Checkin      *services.CheckinService
	Admin        *services.GuestAdminService
	Health       Pinger
}

// NewServer builds the echo instance with middleware, renderer and routes.
func NewServer(cfg *config.Config, svc Services, log *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"err", v.Error,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.Renderer = web.NewTemplateRenderer()
	e.Validator = NewValidator()

	RegisterRoutes(e, cfg, svc.Registration, svc.Checkin, svc.Admin, svc.Health, log)
	return e
}
