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

package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTools(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, printTools(&buf))

	out := buf.String()
	for _, name := range []string{
		"youtrack_search_issues",
		"youtrack_get_issue",
		"youtrack_update_issue",
		"youtrack_add_comment",
		"youtrack_list_projects",
		"youtrack_server_info",
	} {
		assert.Contains(t, out, name)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "one line", "one line"},
		{"multiline", "first\nsecond", "first"},
		{"leading blank lines", "\n\n  first\nsecond", "first"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstLine(tt.in))
		})
	}
}
