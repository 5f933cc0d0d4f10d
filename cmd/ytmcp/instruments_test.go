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

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	t.Run("no file", func(t *testing.T) {
		lg, err := initLog("", false, false)
		require.NoError(t, err)
		assert.NotNil(t, lg)
	})
	t.Run("log file is created", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "test.log")
		lg, err := initLog(filename, false, true)
		require.NoError(t, err)
		lg.Info("test message")
		data, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Contains(t, string(data), "test message")
	})
	t.Run("unwritable path returns error", func(t *testing.T) {
		_, err := initLog(filepath.Join(t.TempDir(), "no", "such", "dir", "test.log"), false, false)
		assert.Error(t, err)
	})
}

func TestInitTrace(t *testing.T) {
	t.Run("empty filename is a noop", func(t *testing.T) {
		stop := initTrace("")
		require.NotNil(t, stop)
		assert.NotPanics(t, stop)
	})
	t.Run("trace file is written", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "trace.out")
		stop := initTrace(filename)
		require.NotNil(t, stop)
		stop()
		_, err := os.Stat(filename)
		assert.NoError(t, err)
	})
}

func TestLoadSecrets(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("YTMCP_TEST_SECRET=loaded\n"), 0o644))
	t.Setenv("YTMCP_TEST_SECRET", "") // ensure restore after the test
	os.Unsetenv("YTMCP_TEST_SECRET")

	loadSecrets(secrets)
	assert.Equal(t, "loaded", os.Getenv("YTMCP_TEST_SECRET"))
}
