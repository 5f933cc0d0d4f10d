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

// Package serve contains the CLI command for starting the YouTrack MCP
// server.
package serve

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/ytmcp/cmd/ytmcp/internal/apiconfig"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/cfg"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/golang/base"
	internalmcp "github.com/rusq/ytmcp/internal/mcp"
	"github.com/rusq/ytmcp/internal/ytrack"
)

//go:embed assets/serve.md
var mdServe string

// CmdServe is the "ytmcp serve" command.
var CmdServe = &base.Command{
	UsageLine:      "ytmcp serve [flags]",
	Short:          "start the YouTrack MCP server",
	Long:           mdServe,
	PrintFlags:     true,
	RequireConnect: true,
	Run:            runServe,
}

var (
	transport  string
	listenAddr string
)

func init() {
	CmdServe.Flag.StringVar(&transport, "transport", "stdio", "MCP transport: \"stdio\", \"sse\" or \"http\"")
	CmdServe.Flag.StringVar(&listenAddr, "listen", defListenAddr(), "address to listen on when -transport is \"sse\" or \"http\"\n(environment: MCP_HOST, MCP_PORT)")
}

// defListenAddr assembles the default listen address from the MCP_HOST and
// MCP_PORT environment variables.  An empty MCP_HOST (e.g. "MCP_HOST=" in a
// .env file) counts as unset.
func defListenAddr() string {
	host := osenv.Value("MCP_HOST", "")
	if host == "" {
		host = "127.0.0.1"
	}
	port := osenv.Value("MCP_PORT", 8000)
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func runServe(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("serve accepts no arguments")
	}

	if cfg.ConfigFile != "" {
		if _, err := apiconfig.Load(cfg.ConfigFile); err != nil {
			base.SetExitStatus(base.SUserError)
			return fmt.Errorf("serve: config file %q: %w", cfg.ConfigFile, err)
		}
	}

	client, err := ytrack.New(cfg.YouTrackURL, cfg.YouTrackToken, ytrack.WithLimits(cfg.Limits))
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("serve: %w", err)
	}

	// verify the token before starting any transport.
	me, err := client.Me(ctx)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("serve: youtrack authentication failed: %w", err)
	}
	lg.InfoContext(ctx, "serve: authenticated", "login", me.Login, "url", client.BaseURL())

	opts := []internalmcp.Option{
		internalmcp.WithLogger(lg),
		internalmcp.WithReadOnly(cfg.ReadOnly),
	}
	if cfg.ServerName != "" {
		opts = append(opts, internalmcp.WithName(cfg.ServerName))
	}
	if cfg.ReadOnly {
		lg.InfoContext(ctx, "serve: read-only mode, issue updates and comments are disabled")
	}

	srv := internalmcp.New(client, opts...)

	switch internalmcp.Transport(strings.ToLower(transport)) {
	case internalmcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case internalmcp.TransportSSE:
		return srv.ServeSSE(ctx, listenAddr)
	case internalmcp.TransportHTTP:
		return srv.ServeHTTP(ctx, listenAddr)
	default:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("serve: unknown transport %q (use \"stdio\", \"sse\" or \"http\")", transport)
	}
}
