package http

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/app"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

const msgMissingPhrase = "Please provide a phrase"

type Handler struct {
	svc    *app.CueService
	assets fs.FS
}

// NewHandler serves the API from svc and the front end from assets.
func NewHandler(svc *app.CueService, assets fs.FS) *Handler {
	return &Handler{svc: svc, assets: assets}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/api/random-word", h.RandomWord)
	e.POST("/api/generate-cue", h.GenerateCue)
	e.StaticFS("/", h.assets)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) RandomWord(c echo.Context) error {
	return c.JSON(http.StatusOK, WordResponse{Word: h.svc.RandomWord()})
}

func (h *Handler) GenerateCue(c echo.Context) error {
	var req CueRequest
	if err := c.Bind(&req); err != nil {
		// An unreadable body carries no phrase.
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingPhrase})
	}

	res, err := h.svc.GenerateCue(c.Request().Context(), req.Phrase)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, CueResponse{Cue: res.Cue, Note: res.Note})
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingPhrase})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
