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

package apiconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/ytmcp/internal/network"
)

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "limits.toml")
	require.NoError(t, Save(filename, network.DefLimits))

	got, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, network.DefLimits, *got)
}

func TestLoad_errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
		assert.Error(t, err)
	})
	t.Run("unknown keys are rejected", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "limits.toml")
		require.NoError(t, os.WriteFile(filename, []byte("retries = 3\nbanana = 1\n"), 0o644))
		_, err := Load(filename)
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})
	t.Run("out of range values fail validation", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "limits.toml")
		limits := network.DefLimits
		limits.Retries = 500
		require.NoError(t, Save(filename, limits))
		_, err := Load(filename)
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})
}

func TestShouldOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.toml")
	require.NoError(t, os.WriteFile(existing, []byte("retries = 3\n"), 0o644))

	tests := []struct {
		name     string
		filename string
		override bool
		want     bool
	}{
		{"new file", filepath.Join(dir, "new.toml"), false, true},
		{"existing file without override", existing, false, false},
		{"existing file with override", existing, true, true},
		{"directory is never overwritten", dir, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldOverwrite(tt.filename, tt.override))
		})
	}
}

func TestMaybeFixExt(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"no extension", "config", "config.toml"},
		{"toml extension", "config.toml", "config.toml"},
		{"tml extension", "config.tml", "config.tml"},
		{"other extension", "config.yaml", "config.yaml.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maybeFixExt(tt.filename))
		})
	}
}
