package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/klondike-go/internal/app"
	"github.com/randomtoy/klondike-go/internal/domain"
)

var (
	errBadBody         = errors.New("request body must be valid JSON")
	errMissingColumn   = errors.New("column is required")
	errMissingPosition = errors.New("from.position is required")
)

type Handler struct {
	svc *app.GameService
}

func NewHandler(svc *app.GameService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	g := e.Group("/v1/games")
	g.POST("", h.CreateGame)
	g.GET("/:id", h.GetGame)
	g.DELETE("/:id", h.DeleteGame)
	g.POST("/:id/draw", h.Draw)
	g.POST("/:id/flip", h.Flip)
	g.POST("/:id/auto-move", h.AutoMove)
	g.POST("/:id/move", h.Move)
	g.POST("/:id/undo", h.Undo)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateGame(c echo.Context) error {
	v, err := h.svc.NewGame(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toResponse(v, requestID(c)))
}

func (h *Handler) GetGame(c echo.Context) error {
	v, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	return h.respond(c, v, err)
}

func (h *Handler) DeleteGame(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Draw(c echo.Context) error {
	v, err := h.svc.Draw(c.Request().Context(), c.Param("id"))
	return h.respond(c, v, err)
}

func (h *Handler) Flip(c echo.Context) error {
	var req FlipRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, errBadBody)
	}
	if req.Column == nil {
		return badRequest(c, errMissingColumn)
	}
	v, err := h.svc.Flip(c.Request().Context(), c.Param("id"), *req.Column)
	return h.respond(c, v, err)
}

func (h *Handler) AutoMove(c echo.Context) error {
	var req AutoMoveRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, errBadBody)
	}
	from, err := req.From.source()
	if err != nil {
		return mapError(c, err)
	}
	v, err := h.svc.AutoMove(c.Request().Context(), c.Param("id"), from)
	return h.respond(c, v, err)
}

func (h *Handler) Move(c echo.Context) error {
	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, errBadBody)
	}
	from, err := req.From.source()
	if err != nil {
		return mapError(c, err)
	}
	to, err := req.To.location()
	if err != nil {
		return mapError(c, err)
	}
	v, err := h.svc.Move(c.Request().Context(), c.Param("id"), from, to)
	return h.respond(c, v, err)
}

func (h *Handler) Undo(c echo.Context) error {
	v, err := h.svc.Undo(c.Request().Context(), c.Param("id"))
	return h.respond(c, v, err)
}

func (h *Handler) respond(c echo.Context, v app.GameView, err error) error {
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(v, requestID(c)))
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrGameNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, errMissingPosition):
		return badRequest(c, err)
	case errors.Is(err, domain.ErrTooManyGames):
		slog.Warn("game capacity reached", "request_id", requestID(c))
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
