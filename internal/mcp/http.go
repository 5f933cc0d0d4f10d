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

// In this file: health and legacy dispatch endpoints served alongside the SSE
// transport.

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const (
	sseEndpoint     = "/sse"
	messageEndpoint = "/message"
)

// httpHandler returns the handler for the SSE transport listener: the SSE and
// message endpoints of the MCP protocol, plus the health and legacy dispatch
// endpoints.
func (s *Server) httpHandler() http.Handler {
	sse := mcpsrv.NewSSEServer(s.mcp,
		mcpsrv.WithSSEEndpoint(sseEndpoint),
		mcpsrv.WithMessageEndpoint(messageEndpoint),
	)

	mux := http.NewServeMux()
	mux.Handle(sseEndpoint, sse.SSEHandler())
	mux.Handle(messageEndpoint, sse.MessageHandler())
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /mcp", s.handleDispatch)
	return middleware.Logger(mux)
}

// healthResponse is the GET /health response body.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Env     string `json:"env"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: serverVersion,
		Env:     s.client.BaseURL(),
	})
}

// dispatchRequest is the legacy POST /mcp request envelope: the tool name
// plus the tool arguments at the top level.
type dispatchRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"-"`
}

func (d *dispatchRequest) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if name, ok := m["name"].(string); ok {
		d.Name = name
	}
	delete(m, "name")
	d.Args = m
	return nil
}

// handleDispatch implements the legacy POST /mcp endpoint: a single-shot tool
// call outside of an MCP session.  The request body carries the tool name and
// the tool arguments, the response is a {"status": ...} envelope.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var dr dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&dr); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "error", "error": "invalid request body: " + err.Error(),
		})
		return
	}
	if dr.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "error", "error": "name is required",
		})
		return
	}

	handler, ok := s.dispatchTable()[dr.Name]
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "error", "error": "unknown tool: " + dr.Name,
		})
		return
	}

	var req mcplib.CallToolRequest
	req.Params.Name = dr.Name
	req.Params.Arguments = dr.Args

	res, err := handler(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "error", "error": err.Error(),
		})
		return
	}
	if res.IsError {
		text := resultString(res)
		code := http.StatusOK
		if strings.Contains(text, ErrReadOnly.Error()) {
			code = http.StatusForbidden
		}
		writeJSON(w, code, map[string]any{"status": "error", "error": text})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success", "result": resultValue(res),
	})
}

// dispatchTable maps tool names to their handlers for the legacy endpoint.
func (s *Server) dispatchTable() map[string]mcpsrv.ToolHandlerFunc {
	return map[string]mcpsrv.ToolHandlerFunc{
		"youtrack_search_issues": s.handleSearchIssues,
		"youtrack_get_issue":     s.handleGetIssue,
		"youtrack_update_issue":  s.handleUpdateIssue,
		"youtrack_add_comment":   s.handleAddComment,
		"youtrack_list_projects": s.handleListProjects,
		"youtrack_server_info":   s.handleServerInfo,
		// historical name used by older single-shot clients.
		"server_info": s.handleServerInfo,
	}
}

// resultString returns the text of the first text content of the result.
func resultString(res *mcplib.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// resultValue returns the first text content of the result, decoded as JSON
// when it parses, as a plain string otherwise.
func resultValue(res *mcplib.CallToolResult) any {
	text := resultString(res)
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}
	return text
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// headers are already out, nothing sensible to do about an encode error.
	_ = json.NewEncoder(w).Encode(v)
}
