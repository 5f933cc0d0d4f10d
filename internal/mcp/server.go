// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/ytmcp/internal/ytrack"
)

const (
	// DefServerName is the server name reported to MCP clients unless
	// overridden with [WithName].
	DefServerName = "youtrack-mcp"

	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportSSE uses the Server-Sent Events transport, and additionally
	// serves the health and legacy dispatch endpoints on the same listener.
	TransportSSE Transport = "sse"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the YouTrack client it operates on.
type Server struct {
	mcp      *mcpsrv.MCPServer
	client   ytrack.Tracker
	name     string
	readOnly bool
	logger   *slog.Logger
}

// Option is the signature of the Server option-setting function.
type Option func(*Server)

// WithName overrides the server name reported to MCP clients.
func WithName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
	}
}

// WithReadOnly puts the server into read-only mode: tools that modify
// YouTrack data reject every call before any network I/O takes place.
func WithReadOnly(ro bool) Option {
	return func(s *Server) {
		s.readOnly = ro
	}
}

// WithLogger sets the logger.  If not given, slog.Default is used.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New creates a new MCP server backed by the given YouTrack client.  The
// server is populated with all available tools but does not start listening
// until one of the Serve* methods is called.
func New(client ytrack.Tracker, opt ...Option) *Server {
	s := &Server{
		client: client,
		name:   DefServerName,
		logger: slog.Default(),
	}
	for _, o := range opt {
		o(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		s.name,
		serverVersion,
		mcpsrv.WithInstructions(instructions(client, s.readOnly)),
		mcpsrv.WithToolCapabilities(true),
		mcpsrv.WithRecovery(),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the YouTrack
// instance to the connecting agent.
func instructions(client ytrack.Tracker, readOnly bool) string {
	mode := "Issue updates and comments are enabled."
	if readOnly {
		mode = "The server is in read-only mode: issue updates and comments are rejected."
	}
	return fmt.Sprintf(`You are connected to a YouTrack MCP server for the instance at %s.

Available tools allow you to:
- Search issues using the YouTrack query language
- Get a single issue by its readable ID (e.g. PROJ-123)
- Update an issue's fields
- Add a comment to an issue
- List the visible projects
- Get server information

%s

The "fields" parameter of each tool follows the YouTrack REST API field
selection syntax (e.g. "idReadable,summary,project(shortName)").
`, client.BaseURL(), mode)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8000".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// ServeSSE runs the MCP server with the SSE transport on addr until ctx is
// cancelled.  The same listener also serves GET /health and the legacy
// POST /mcp dispatch endpoint.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr, Handler: s.httpHandler()}

	s.logger.InfoContext(ctx, "mcp server listening on sse", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp sse server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp sse server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolSearchIssues(),
		s.toolGetIssue(),
		s.toolUpdateIssue(),
		s.toolAddComment(),
		s.toolListProjects(),
		s.toolServerInfo(),
	}
}

// AddTool adds an additional tool to the MCP server.  This can be called
// after New but before serving starts.
func (s *Server) AddTool(tool mcpsrv.ServerTool) {
	s.mcp.AddTool(tool.Tool, tool.Handler)
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// objArg extracts a named object argument from a tool call request.  Returns
// (nil, false) if the argument is absent or not an object.
func objArg(req mcplib.CallToolRequest, name string) (map[string]any, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}
