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

// Package tools implements the "ytmcp tools" command that lists the tools
// exposed by the MCP server.
package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rusq/ytmcp/cmd/ytmcp/internal/cfg"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/golang/base"
	internalmcp "github.com/rusq/ytmcp/internal/mcp"
)

// CmdTools is the "ytmcp tools" command.
var CmdTools = &base.Command{
	UsageLine: "ytmcp tools",
	Short:     "list the tools exposed by the MCP server",
	Long: `
# Tools Command

Prints the names and descriptions of the MCP tools that the server exposes to
the connecting agent.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
	Run:        runTools,
}

func runTools(ctx context.Context, cmd *base.Command, args []string) error {
	return printTools(os.Stdout)
}

func printTools(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tool := range internalmcp.ToolDefinitions() {
		fmt.Fprintf(tw, "%s\t%s\n", tool.Name, firstLine(tool.Description))
	}
	return tw.Flush()
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for line := range strings.Lines(s) {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
