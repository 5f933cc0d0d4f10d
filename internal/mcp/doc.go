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

// Package mcp implements a Model Context Protocol (MCP) server for YouTrack.
// It exposes YouTrack issue operations through MCP tools that AI agents can
// call to search, read, update and comment on issues in a YouTrack instance.
//
// When the server runs in read-only mode, tools that modify YouTrack data
// (youtrack_update_issue, youtrack_add_comment) reject every call before any
// network I/O takes place.
//
// Transport: the server supports three transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - sse    – Server-Sent Events transport; additionally serves the health
//     and legacy dispatch HTTP endpoints on the same listener.
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
