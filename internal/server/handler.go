package server

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/npsgo/pension-calculator/internal/calculation"
)

// Server exposes the projection engine over HTTP.
type Server struct {
	engine *calculation.ProjectionEngine
	logger calculation.Logger
}

// New creates a server around the given engine. A nil logger is
// replaced with a no-op.
func New(engine *calculation.ProjectionEngine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{engine: engine, logger: logger}
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("pension calculator listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler routes incoming requests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/api/v1/projection":
		s.handleProjection(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	requestID := uuid.NewString()
	result, err := s.engine.Project(req.ToInput())
	if err != nil {
		var invalid *calculation.InvalidInputError
		if errors.As(err, &invalid) {
			s.logger.Debugf("request %s rejected: %v", requestID, err)
			writeError(ctx, fasthttp.StatusUnprocessableEntity, invalid.Error())
			return
		}
		s.logger.Errorf("request %s failed: %v", requestID, err)
		writeError(ctx, fasthttp.StatusInternalServerError, "projection failed")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, NewProjectionResponse(requestID, result))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encoding failed")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
