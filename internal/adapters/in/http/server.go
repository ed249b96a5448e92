package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"restobot/internal/adapters/in/tools"
	"restobot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToolDescription describes one invocable tool for discovery.
type ToolDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvokeRequest is the body of POST /api/v1/tools/invoke.
type InvokeRequest struct {
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

// InvokeResponse carries the narrative result of a tool invocation.
type InvokeResponse struct {
	Result string `json:"result"`
}

// Server exposes the tool facade over HTTP. It coordinates between HTTP
// handlers and the agent-facing tool surface.
type Server struct {
	facade *tools.Facade
	logger *slog.Logger
}

// NewServer creates a new HTTP server around the tool facade.
func NewServer(facade *tools.Facade, logger *slog.Logger) *Server {
	return &Server{
		facade: facade,
		logger: logger.With("component", "tool_server"),
	}
}

// Register attaches the server's routes to the given echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/tools", s.ListTools)
	e.POST("/api/v1/tools/invoke", s.InvokeTool)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListTools handles GET /api/v1/tools - lists the invocable tools.
func (s *Server) ListTools(ctx echo.Context) error {
	registered := s.facade.Tools()

	response := make([]ToolDescription, len(registered))
	for i, tool := range registered {
		response[i] = ToolDescription{Name: tool.Name, Description: tool.Description}
	}

	return ctx.JSON(http.StatusOK, response)
}

// InvokeTool handles POST /api/v1/tools/invoke - runs one named tool and
// returns its narrative result. Business-rule refusals arrive as 200 results;
// only malformed requests, unknown tools and infrastructure failures map to
// error statuses.
func (s *Server) InvokeTool(ctx echo.Context) error {
	var request InvokeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if request.Tool == "" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Tool name is required",
		})
	}

	requestCtx := ctx.Request().Context()

	result, err := s.facade.Invoke(requestCtx, request.Tool, request.Args)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		case errors.Is(err, errs.ErrValueIsInvalid),
			errors.Is(err, errs.ErrValueIsRequired),
			errors.Is(err, errs.ErrValueIsOutOfRange):
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
		default:
			s.logger.ErrorContext(requestCtx, "Tool invocation failed",
				"tool", request.Tool, "error", err)
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to invoke tool",
			})
		}
	}

	s.logger.InfoContext(requestCtx, "Tool invoked", "tool", request.Tool)
	return ctx.JSON(http.StatusOK, InvokeResponse{Result: result})
}
