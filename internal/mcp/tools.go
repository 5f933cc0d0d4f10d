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

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/ytmcp/internal/ytrack"
)

// ErrReadOnly is returned by mutating tool handlers when the server runs in
// read-only mode.
var ErrReadOnly = errors.New("server is in read-only mode")

// ToolDefinitions returns the definitions of all tools the server exposes.
// Definitions are constructed without a client, so they can be listed without
// connecting to YouTrack.
func ToolDefinitions() []mcplib.Tool {
	var s Server
	tt := s.tools()
	defs := make([]mcplib.Tool, 0, len(tt))
	for _, t := range tt {
		defs = append(defs, t.Tool)
	}
	return defs
}

// ─── youtrack_search_issues ───────────────────────────────────────────────────

func (s *Server) toolSearchIssues() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_search_issues",
		mcplib.WithDescription(`Search YouTrack issues using the YouTrack query language.

Returns a JSON array of matching issues.  To page through results use the
'skip' parameter together with 'top'.  The default projection includes the
readable ID, summary and project short name; request more with 'fields' or
append extra attributes with 'custom_fields'.`),
		mcplib.WithString("query",
			mcplib.Description(`YouTrack search query (e.g. "project: PROJ #Unresolved order by: updated desc")`),
			mcplib.Required(),
		),
		mcplib.WithString("fields",
			mcplib.Description("Comma-separated YouTrack field selector overriding the default projection (e.g. \"idReadable,summary,reporter(login)\")"),
		),
		mcplib.WithString("custom_fields",
			mcplib.Description("Extra field selectors appended to the projection"),
		),
		mcplib.WithNumber("top",
			mcplib.Description("Maximum number of issues to return (1–1000, default 100)"),
		),
		mcplib.WithNumber("skip",
			mcplib.Description("Number of issues to skip before returning results. Use for pagination."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchIssues}
}

func (s *Server) handleSearchIssues(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	query, ok := stringArg(req, "query")
	if !ok || query == "" {
		return resultErr(errors.New("youtrack_search_issues: query is required")), nil
	}
	fields, _ := stringArg(req, "fields")
	customFields, _ := stringArg(req, "custom_fields")

	p := ytrack.SearchParams{
		Query:        query,
		Fields:       fields,
		CustomFields: customFields,
		Top:          intArg(req, "top", ytrack.DefTop),
		Skip:         intArg(req, "skip", 0),
	}

	s.logger.InfoContext(ctx, "mcp: youtrack_search_issues", "query", query, "top", p.Top, "skip", p.Skip)

	raw, err := s.client.SearchIssues(ctx, p)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_search_issues: %w", err)), nil
	}
	return resultText(string(raw)), nil
}

// ─── youtrack_get_issue ───────────────────────────────────────────────────────

func (s *Server) toolGetIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_get_issue",
		mcplib.WithDescription(`Get a single YouTrack issue by its readable ID.

Returns the issue as a JSON object.  The default projection includes the
summary, description, project and all custom field values.`),
		mcplib.WithString("issue_id",
			mcplib.Description("The readable issue ID (e.g. PROJ-123)"),
			mcplib.Required(),
		),
		mcplib.WithString("fields",
			mcplib.Description("Comma-separated YouTrack field selector overriding the default projection"),
		),
		mcplib.WithString("custom_fields",
			mcplib.Description("Extra field selectors appended to the projection"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetIssue}
}

func (s *Server) handleGetIssue(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	issueID, ok := stringArg(req, "issue_id")
	if !ok || issueID == "" {
		return resultErr(errors.New("youtrack_get_issue: issue_id is required")), nil
	}
	fields, _ := stringArg(req, "fields")
	customFields, _ := stringArg(req, "custom_fields")

	s.logger.InfoContext(ctx, "mcp: youtrack_get_issue", "issue_id", issueID)

	raw, err := s.client.GetIssue(ctx, issueID, fields, customFields)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_get_issue: %w", err)), nil
	}
	return resultText(string(raw)), nil
}

// ─── youtrack_update_issue ────────────────────────────────────────────────────

func (s *Server) toolUpdateIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_update_issue",
		mcplib.WithDescription(`Apply a partial update to a YouTrack issue.

The 'data' object is sent to the YouTrack REST API as-is; top-level keys such
as "summary" and "description" update the corresponding issue attributes.
Returns the requested projection of the updated issue.  Rejected when the
server runs in read-only mode.`),
		mcplib.WithString("issue_id",
			mcplib.Description("The readable issue ID (e.g. PROJ-123)"),
			mcplib.Required(),
		),
		mcplib.WithObject("data",
			mcplib.Description(`Issue attributes to update (e.g. {"summary": "New summary"})`),
			mcplib.Required(),
		),
		mcplib.WithString("fields",
			mcplib.Description("Comma-separated YouTrack field selector for the returned issue"),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUpdateIssue}
}

func (s *Server) handleUpdateIssue(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	if s.readOnly {
		return resultErr(fmt.Errorf("youtrack_update_issue: %w", ErrReadOnly)), nil
	}
	issueID, ok := stringArg(req, "issue_id")
	if !ok || issueID == "" {
		return resultErr(errors.New("youtrack_update_issue: issue_id is required")), nil
	}
	data, ok := objArg(req, "data")
	if !ok || len(data) == 0 {
		return resultErr(errors.New("youtrack_update_issue: data is required")), nil
	}
	fields, _ := stringArg(req, "fields")

	s.logger.InfoContext(ctx, "mcp: youtrack_update_issue", "issue_id", issueID)

	raw, err := s.client.UpdateIssue(ctx, issueID, data, fields)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_update_issue: %w", err)), nil
	}
	if len(raw) == 0 {
		return resultText(fmt.Sprintf("Issue %s updated.", issueID)), nil
	}
	return resultText(string(raw)), nil
}

// ─── youtrack_add_comment ─────────────────────────────────────────────────────

func (s *Server) toolAddComment() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_add_comment",
		mcplib.WithDescription(`Add a comment to a YouTrack issue.

Returns the requested projection of the created comment.  Rejected when the
server runs in read-only mode.`),
		mcplib.WithString("issue_id",
			mcplib.Description("The readable issue ID (e.g. PROJ-123)"),
			mcplib.Required(),
		),
		mcplib.WithString("comment_text",
			mcplib.Description("Comment text. YouTrack renders it as Markdown."),
			mcplib.Required(),
		),
		mcplib.WithString("fields",
			mcplib.Description("Comma-separated YouTrack field selector for the returned comment"),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddComment}
}

func (s *Server) handleAddComment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	if s.readOnly {
		return resultErr(fmt.Errorf("youtrack_add_comment: %w", ErrReadOnly)), nil
	}
	issueID, ok := stringArg(req, "issue_id")
	if !ok || issueID == "" {
		return resultErr(errors.New("youtrack_add_comment: issue_id is required")), nil
	}
	text, ok := stringArg(req, "comment_text")
	if !ok || text == "" {
		return resultErr(errors.New("youtrack_add_comment: comment_text is required")), nil
	}
	fields, _ := stringArg(req, "fields")

	s.logger.InfoContext(ctx, "mcp: youtrack_add_comment", "issue_id", issueID)

	raw, err := s.client.AddComment(ctx, issueID, text, fields)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_add_comment: %w", err)), nil
	}
	if len(raw) == 0 {
		return resultText(fmt.Sprintf("Comment added to issue %s.", issueID)), nil
	}
	return resultText(string(raw)), nil
}

// ─── youtrack_list_projects ───────────────────────────────────────────────────

func (s *Server) toolListProjects() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_list_projects",
		mcplib.WithDescription("List the YouTrack projects visible to the server's token. Returns project IDs, short names (used as issue ID prefixes) and full names."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListProjects}
}

func (s *Server) handleListProjects(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	pp, err := s.client.Projects(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_list_projects: %w", err)), nil
	}
	result, err := resultJSON(pp)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_list_projects: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── youtrack_server_info ─────────────────────────────────────────────────────

func (s *Server) toolServerInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("youtrack_server_info",
		mcplib.WithDescription("Return information about this MCP server: name, version, the YouTrack instance URL it is connected to, and whether it runs in read-only mode."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleServerInfo}
}

// serverInfo is the JSON-serialisable youtrack_server_info response.
type serverInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	YouTrackURL string `json:"youtrack_url"`
	ReadOnly    bool   `json:"read_only"`
}

func (s *Server) handleServerInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	info := serverInfo{
		Name:        s.name,
		Version:     serverVersion,
		Status:      "ok",
		YouTrackURL: s.client.BaseURL(),
		ReadOnly:    s.readOnly,
	}
	result, err := resultJSON(info)
	if err != nil {
		return resultErr(fmt.Errorf("youtrack_server_info: serialise: %w", err)), nil
	}
	return result, nil
}
