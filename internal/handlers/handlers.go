package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fiesta/internal/config"
	"fiesta/internal/models"
	"fiesta/internal/sentinel"
	"fiesta/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	msgDuplicateEmail = "Este correo ya está registrado."
	msgMissingFields  = "Nombre y correo son obligatorios."
	msgInternal       = "Error interno, intenta de nuevo."
)

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type GuestHandler struct {
	cfg      *config.Config
	register *services.RegistrationService
	checkin  *services.CheckinService
	admin    *services.GuestAdminService
	health   Pinger
	log      *zap.SugaredLogger
}

type removeRequest struct {
	ID string `form:"id" validate:"required"`
}

type pageData struct {
	Guests []models.Guest
	Error  string
}

func RegisterRoutes(e *echo.Echo, cfg *config.Config, register *services.RegistrationService,
	checkin *services.CheckinService, admin *services.GuestAdminService, health Pinger, log *zap.SugaredLogger) {
	h := &GuestHandler{cfg: cfg, register: register, checkin: checkin, admin: admin, health: health, log: log}

	e.GET("/", h.Index)
	e.POST("/", h.Register)
	e.GET("/validar/:id", h.Validate)
	if cfg.IsAdmin() {
		e.POST("/eliminar", h.Remove)
		e.GET("/invitacion/:id", h.Download)
	}

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (h *GuestHandler) Index(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, "")
}

func (h *GuestHandler) Register(c echo.Context) error {
	var req services.RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return h.renderPage(c, http.StatusBadRequest, msgMissingFields)
	}

	inv, err := h.register.Register(c.Request().Context(), req)
	switch {
	case errors.Is(err, sentinel.ErrDuplicateEmail):
		return h.renderPage(c, http.StatusConflict, msgDuplicateEmail)
	case errors.Is(err, sentinel.ErrInvalidInput):
		return h.renderPage(c, http.StatusBadRequest, msgMissingFields)
	case err != nil:
		return c.String(http.StatusInternalServerError, msgInternal)
	}

	return attachment(c, inv.Filename, inv.PDF)
}

func (h *GuestHandler) Validate(c echo.Context) error {
	adm, err := h.checkin.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, msgInternal)
	}
	return c.String(http.StatusOK, adm.Message())
}

func (h *GuestHandler) Remove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "id requerido")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, "id requerido")
	}

	if err := h.admin.Remove(c.Request().Context(), req.ID); err != nil {
		h.log.Errorw("remove guest failed", "id", req.ID, "err", err)
		return c.String(http.StatusInternalServerError, msgInternal)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *GuestHandler) Download(c echo.Context) error {
	id := c.Param("id")
	doc, err := h.admin.Invitation(c.Request().Context(), id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return c.String(http.StatusNotFound, "Invitación no encontrada")
	}
	if err != nil {
		h.log.Errorw("read invitation failed", "id", id, "err", err)
		return c.String(http.StatusInternalServerError, msgInternal)
	}
	return attachment(c, id+".pdf", doc)
}

func (h *GuestHandler) Health(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.log.Errorw("health check failed", "err", err)
		return c.String(http.StatusServiceUnavailable, "unavailable")
	}
	return c.String(http.StatusOK, "ok")
}

func (h *GuestHandler) renderPage(c echo.Context, status int, errMsg string) error {
	if !h.cfg.IsAdmin() {
		return c.Render(status, "guest.html", pageData{Error: errMsg})
	}

	guests, err := h.admin.List(c.Request().Context())
	if err != nil {
		h.log.Errorw("list guests failed", "err", err)
		return c.String(http.StatusInternalServerError, msgInternal)
	}
	return c.Render(status, "admin.html", pageData{Guests: guests, Error: errMsg})
}

func attachment(c echo.Context, filename string, doc []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, "application/pdf", doc)
}
