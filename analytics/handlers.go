package analytics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const visitorCookie = "kotoba_visitor"

// Handler exposes the view-counter HTTP endpoints.
type Handler struct {
	store   *Store
	limiter *rateLimiter
	log     zerolog.Logger
}

// NewHandler creates an analytics Handler around the store.
func NewHandler(store *Store, log zerolog.Logger) *Handler {
	return &Handler{
		store:   store,
		limiter: newRateLimiter(30, time.Minute),
		log:     log,
	}
}

// RegisterRoutes mounts the analytics endpoints on the Echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/views", h.handleRecordView)
	e.GET("/api/stats/top", h.handleTopPosts)
}

// viewRequest is the payload sent by the page beacon.
type viewRequest struct {
	Slug   string `json:"slug"`
	Locale string `json:"locale"`
}

func (h *Handler) handleRecordView(c echo.Context) error {
	if !h.limiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	var req viewRequest
	if err := c.Bind(&req); err != nil || req.Slug == "" || req.Locale == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	// First-party anonymous visitor token. Only its presence matters;
	// nothing is stored server-side per visitor.
	if _, err := c.Cookie(visitorCookie); err != nil {
		c.SetCookie(&http.Cookie{
			Name:     visitorCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 365,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	// A failed write must never break the page view itself.
	if err := h.store.RecordView(req.Slug, req.Locale, time.Now()); err != nil {
		h.log.Warn().Err(err).Str("slug", req.Slug).Msg("record view failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) handleTopPosts(c echo.Context) error {
	locale := c.QueryParam("locale")
	if locale == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "locale is required")
	}
	days := 30
	if d := c.QueryParam("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			days = n
		}
	}
	since := time.Now().AddDate(0, 0, -days)
	top, err := h.store.TopPosts(locale, since, 10)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, top)
}
