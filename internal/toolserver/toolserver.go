// Package toolserver exposes the calculation engine over the Model Context
// Protocol. Every tool is a pure function of its request: handlers share no
// state, so concurrent invocations need no coordination and equal requests
// produce identical results.
package toolserver

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"calctools/internal/config"
)

// Server wires the engine's tools into an MCP server over the configured
// transport.
type Server struct {
	cfg   config.Config
	log   *logrus.Logger
	mcp   *server.MCPServer
	tools []string
}

// New builds a fully registered server. version appears in the MCP
// initialize handshake.
func New(cfg config.Config, log *logrus.Logger, version string) *Server {
	s := &Server{cfg: cfg, log: log}

	hooks := &server.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		log.WithFields(logrus.Fields{"id": id, "method": method}).Trace("request received")
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		log.WithFields(logrus.Fields{"id": id, "method": method}).
			WithError(err).Error("request failed")
	})

	s.mcp = server.NewMCPServer(
		"calctools",
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)

	s.registerExpressionTools()
	s.registerQuadratureTools()
	s.registerAnalysisTools()
	s.registerTransformTools()
	s.registerFinanceTools()
	s.registerLinalgTools()
	s.registerProbabilityTools()
	return s
}

// Serve blocks on the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case config.TransportHTTP:
		s.log.WithField("addr", s.cfg.HTTPAddr).Info("serving streamable HTTP")
		httpServer := server.NewStreamableHTTPServer(s.mcp)
		return errors.Wrap(httpServer.Start(s.cfg.HTTPAddr), "http transport")
	default:
		s.log.Info("serving on stdio")
		return errors.Wrap(server.ServeStdio(s.mcp), "stdio transport")
	}
}

// ToolNames returns the registered tool names in sorted order.
func (s *Server) ToolNames() []string {
	names := append([]string(nil), s.tools...)
	sort.Strings(names)
	return names
}

// handler is the inner form of a tool handler: it returns a JSON-encodable
// payload or a domain error.
type handler func(ctx context.Context, req mcp.CallToolRequest) (any, error)

// wrap turns a handler into a ToolHandlerFunc, tagging each invocation
// with a fresh id and mapping domain errors onto tool-result errors so
// they surface to the caller instead of tearing down the session.
func (s *Server) wrap(name string, h handler) server.ToolHandlerFunc {
	s.tools = append(s.tools, name)
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.log.WithFields(logrus.Fields{
			"tool":       name,
			"invocation": uuid.NewString(),
		})
		start := time.Now()
		out, err := h(ctx, req)
		elapsed := time.Since(start)
		if err != nil {
			log.WithError(err).WithField("elapsed", elapsed).Warn("tool call failed")
			return mcp.NewToolResultError(renderError(err)), nil
		}
		payload, merr := json.Marshal(out)
		if merr != nil {
			return nil, errors.Wrapf(merr, "encode %s result", name)
		}
		log.WithField("elapsed", elapsed).Debug("tool call served")
		return mcp.NewToolResultText(string(payload)), nil
	}
}
