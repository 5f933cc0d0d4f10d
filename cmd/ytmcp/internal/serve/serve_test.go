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

package serve

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rusq/ytmcp/cmd/ytmcp/internal/cfg"
)

func TestDefListenAddr(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// t.Setenv registers the restore, Unsetenv makes sure the
		// variables are genuinely absent.
		t.Setenv("MCP_HOST", "x")
		t.Setenv("MCP_PORT", "1")
		os.Unsetenv("MCP_HOST")
		os.Unsetenv("MCP_PORT")
		assert.Equal(t, "127.0.0.1:8000", defListenAddr())
	})
	t.Run("empty values count as unset", func(t *testing.T) {
		t.Setenv("MCP_HOST", "")
		t.Setenv("MCP_PORT", "")
		assert.Equal(t, "127.0.0.1:8000", defListenAddr())
	})
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("MCP_HOST", "0.0.0.0")
		t.Setenv("MCP_PORT", "9999")
		assert.Equal(t, "0.0.0.0:9999", defListenAddr())
	})
}

// setConnection sets the connection variables, restoring them when the test
// completes.
func setConnection(t *testing.T, url, token string) {
	t.Helper()
	oldURL, oldToken := cfg.YouTrackURL, cfg.YouTrackToken
	t.Cleanup(func() {
		cfg.YouTrackURL, cfg.YouTrackToken = oldURL, oldToken
	})
	cfg.YouTrackURL, cfg.YouTrackToken = url, token
}

func TestRunServe_errors(t *testing.T) {
	t.Run("arguments are rejected", func(t *testing.T) {
		err := runServe(t.Context(), CmdServe, []string{"unexpected"})
		assert.Error(t, err)
	})
	t.Run("missing url", func(t *testing.T) {
		setConnection(t, "", "perm:token")
		err := runServe(t.Context(), CmdServe, nil)
		assert.Error(t, err)
	})
	t.Run("token verification failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Unauthorized","error_description":"Token is invalid"}`))
		}))
		defer srv.Close()
		setConnection(t, srv.URL, "perm:bad-token")

		err := runServe(t.Context(), CmdServe, nil)
		assert.ErrorContains(t, err, "authentication failed")
	})
	t.Run("unknown transport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"1-2","login":"bob"}`))
		}))
		defer srv.Close()
		setConnection(t, srv.URL, "perm:token")

		old := transport
		defer func() { transport = old }()
		transport = "carrier-pigeon"

		err := runServe(t.Context(), CmdServe, nil)
		assert.ErrorContains(t, err, "unknown transport")
	})
}
