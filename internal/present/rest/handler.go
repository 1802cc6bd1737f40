package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
	"github.com/mzafar/marriage-bureau/internal/present/rest/presenter"
	"github.com/mzafar/marriage-bureau/internal/service"
	"github.com/mzafar/marriage-bureau/internal/usecase"
)

// HealthChecker reports whether the backing database is reachable.
type HealthChecker func(ctx context.Context) error

type Handler struct {
	person *usecase.PersonUsecase
	letter *usecase.LetterUsecase
	signal *service.SignalService
	health HealthChecker
}

func NewHandler(
	person *usecase.PersonUsecase,
	letter *usecase.LetterUsecase,
	signal *service.SignalService,
	health HealthChecker,
) *Handler {
	return &Handler{
		person: person,
		letter: letter,
		signal: signal,
		health: health,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.handleHealth)

	e.POST("/api/v1/persons", h.handlePersonCreate)
	e.GET("/api/v1/persons", h.handlePersonList)
	e.GET("/api/v1/persons/:id", h.handlePersonGet)
	e.PUT("/api/v1/persons/:id", h.handlePersonUpdate)
	e.DELETE("/api/v1/persons/:id", h.handlePersonDelete)

	e.POST("/api/v1/letters", h.handleLetterCreate)
	e.GET("/api/v1/letters", h.handleLetterList)
	e.GET("/api/v1/letters/realtime", h.handleRealtime)
	e.GET("/api/v1/letters/:id", h.handleLetterGet)
	e.POST("/api/v1/letters/:id/print", h.handleLetterPrint)
	e.DELETE("/api/v1/letters/:id", h.handleLetterDelete)
}

func (h *Handler) handleHealth(c echo.Context) error {
	if h.health != nil {
		if err := h.health(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) handlePersonCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var in bureau.PersonCreate
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	person, err := h.person.Create(ctx, in)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Created(c, person)
}

func (h *Handler) handlePersonGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	person, err := h.person.Get(ctx, id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, person)
}

func (h *Handler) handlePersonList(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset, err := pagination(c)
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	people, err := h.person.List(ctx, limit, offset)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, people)
}

func (h *Handler) handlePersonUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	var in bureau.PersonCreate
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	person, err := h.person.Update(ctx, id, in)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, person)
}

func (h *Handler) handlePersonDelete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid person id")
	}

	if err := h.person.Delete(ctx, id); err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleLetterCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var in bureau.MarriageLetterCreate
	if err := c.Bind(&in); err != nil {
		return presenter.BadRequest(c, err)
	}

	resp, err := h.letter.Create(ctx, in)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Created(c, resp)
}

func (h *Handler) handleLetterGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid letter id")
	}

	letter, err := h.letter.Get(ctx, id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, letter)
}

func (h *Handler) handleLetterList(c echo.Context) error {
	ctx := c.Request().Context()

	filter := domain.LetterFilter{}

	if letterType := c.QueryParam("type"); letterType != "" {
		if !bureau.LetterType(letterType).Valid() {
			return presenter.BadRequestMessage(c, "invalid type parameter")
		}
		filter.LetterType = letterType
	}

	if printedStr := c.QueryParam("printed"); printedStr != "" {
		printed, err := strconv.ParseBool(printedStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid printed parameter")
		}
		filter.Printed = &printed
	}

	var err error
	filter.Limit, filter.Offset, err = pagination(c)
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	summaries, err := h.letter.List(ctx, filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, summaries)
}

func (h *Handler) handleLetterPrint(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid letter id")
	}

	req := bureau.LetterPrintRequest{}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	resp, err := h.letter.Print(ctx, id, req)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, resp)
}

func (h *Handler) handleLetterDelete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid letter id")
	}

	if err := h.letter.Delete(ctx, id); err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func pagination(c echo.Context) (int, int, error) {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, errors.New("invalid limit parameter")
		}
		limit = parsed
	}
	offset := 0
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, errors.New("invalid offset parameter")
		}
		offset = parsed
	}
	return limit, offset, nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams letter lifecycle events to the client until it
// disconnects.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()

	sub := h.signal.Subscribe(ctx)
	defer sub.Close()

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			// clients send nothing but heartbeats; reads only detect close
			if _, _, err := ws.ReadMessage(); err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.DebugContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				return
			}
		}
	}()

	events := sub.Channel()
	for {
		select {
		case <-quit:
			return nil
		case <-ctx.Done():
			return nil
		case msg, open := <-events:
			if !open {
				return nil
			}
			if err := ws.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
