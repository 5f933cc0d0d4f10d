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

// Command ytmcp is a Model Context Protocol server for JetBrains YouTrack.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rusq/ytmcp/cmd/ytmcp/internal/apiconfig"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/cfg"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/golang/base"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/golang/help"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/serve"
	"github.com/rusq/ytmcp/cmd/ytmcp/internal/tools"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.Ytmcp.Commands = []*base.Command{
		serve.CmdServe,
		tools.CmdTools,
		apiconfig.CmdConfig,
		CmdVersion,
	}
}

func main() {
	loadSecrets(secrets)

	flag.Usage = func() {
		help.PrintUsage(os.Stderr, base.Ytmcp)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
	}

	base.CmdName = args[0]
	if base.CmdName == "help" {
		help.Help(os.Stdout, args[1:])
		base.Exit()
	}

	cmd, rest := resolve(base.Ytmcp, args)
	if cmd == nil {
		n := len(args) - len(rest) + 1
		fmt.Fprintf(os.Stderr, "ytmcp %s: unknown command\nRun 'ytmcp help' for usage.\n", strings.Join(args[:n], " "))
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
	base.CmdName = strings.Join(args[:len(args)-len(rest)], " ")
	if len(cmd.Commands) > 0 {
		// a command group was given without a runnable subcommand.
		if len(rest) > 0 && rest[0] == "help" {
			help.Help(os.Stdout, append(strings.Split(base.CmdName, " "), rest[1:]...))
			base.Exit()
		}
		help.PrintUsage(os.Stderr, cmd)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
	invoke(cmd, rest)
	base.Exit()
}

// resolve descends the command tree following command groups (such as
// "config"), and returns the command named by args together with the
// arguments that remain for it.  A group given without a subcommand, or with
// "help" as the subcommand, is returned as is.  Returns nil when args do not
// name a known command.
func resolve(root *base.Command, args []string) (*base.Command, []string) {
	cmd := root
Walk:
	for len(args) > 0 {
		if args[0] == "help" {
			return cmd, args
		}
		for _, sub := range cmd.Commands {
			if sub.Name() != args[0] {
				continue
			}
			if len(sub.Commands) > 0 {
				cmd, args = sub, args[1:]
				continue Walk
			}
			if !sub.Runnable() {
				continue
			}
			return sub, args[1:]
		}
		return nil, args
	}
	return cmd, args
}

func init() {
	base.Usage = mainUsage
}

func mainUsage() {
	help.PrintUsage(os.Stderr, base.Ytmcp)
	base.SetExitStatus(base.SInvalidParameters)
	base.Exit()
}

// invoke parses the command flags and runs the command.  args must not
// include the command name.
func invoke(cmd *base.Command, args []string) {
	if !cmd.CustomFlags {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() { cmd.Usage() }
		if err := cmd.Flag.Parse(args); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return
		}
		args = cmd.Flag.Args()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := initialise(cmd); err != nil {
		slog.Error("initialisation error", "error", err)
		base.SetExitStatus(base.SInitializationError)
		return
	}

	if err := cmd.Run(ctx, cmd, args); err != nil {
		slog.Error("command failed", "command", base.CmdName, "error", err)
		base.SetExitStatus(base.SApplicationError)
		return
	}
}

// initialise sets up the instrumentation and validates the connection
// parameters.
func initialise(cmd *base.Command) error {
	lg, err := initLog(cfg.LogFile, cfg.JsonHandler, cfg.Verbose)
	if err != nil {
		return err
	}
	cfg.Log = lg

	stopTrace := initTrace(cfg.TraceFile)
	base.AtExit(stopTrace)

	if cmd.RequireConnect {
		if cfg.YouTrackURL == "" {
			return fmt.Errorf("youtrack URL is not set, use -url flag or %s environment variable", "YOUTRACK_URL")
		}
		if cfg.YouTrackToken == "" {
			return fmt.Errorf("youtrack token is not set, use -token flag or %s environment variable", "YOUTRACK_TOKEN")
		}
	}
	return nil
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}
