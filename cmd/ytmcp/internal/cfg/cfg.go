// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/ytmcp/internal/network"
)

const (
	envURL      = "YOUTRACK_URL"
	envToken    = "YOUTRACK_TOKEN"
	envReadOnly = "YOUTRACK_READ_ONLY"
	envName     = "MCP_SERVER_NAME"
	envLogLevel = "MCP_LOG_LEVEL"
)

var (
	TraceFile   string
	LogFile     string
	JsonHandler bool
	Verbose     bool

	ConfigFile string

	YouTrackURL   string
	YouTrackToken string
	ReadOnly      bool
	ServerName    string

	Limits = network.DefLimits

	Log *slog.Logger = slog.Default()
)

// logLevel is the log level used by the handlers initialised in main.
var logLevel = new(slog.LevelVar)

// LogLevel returns the active log level variable for handler construction.
func LogLevel() *slog.LevelVar {
	return logLevel
}

// SetDebugLevel sets the debug level on the default logger.
func SetDebugLevel() {
	logLevel.Set(slog.LevelDebug)
}

type FlagMask int

const (
	DefaultFlags  FlagMask = 0
	OmitAuthFlags FlagMask = 1 << iota
	OmitConfigFlag

	OmitAll = OmitAuthFlags |
		OmitConfigFlag
)

// SetBaseFlags sets base flags
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JsonHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", verboseEnv()), "verbose messages")

	if mask&OmitAuthFlags == 0 {
		fs.StringVar(&YouTrackURL, "url", osenv.Value(envURL, ""), "YouTrack instance `URL`, i.e. https://example.youtrack.cloud\n(environment: "+envURL+")")
		fs.StringVar(&YouTrackToken, "token", osenv.Secret(envToken, ""), "YouTrack permanent `token`\n(environment: "+envToken+")")
		fs.BoolVar(&ReadOnly, "ro", osenv.Value(envReadOnly, false), "read-only mode: reject issue updates and comments\n(environment: "+envReadOnly+")")
		fs.StringVar(&ServerName, "name", osenv.Value(envName, ""), "server `name` reported to MCP clients\n(environment: "+envName+")")
	}
	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "api-config", "", "configuration `file` with YouTrack API limits overrides.\nYou can generate one with default values with 'ytmcp config new'")
	}
}

// verboseEnv reports whether MCP_LOG_LEVEL requests debug logging.
func verboseEnv() bool {
	return strings.EqualFold(os.Getenv(envLogLevel), "debug")
}
