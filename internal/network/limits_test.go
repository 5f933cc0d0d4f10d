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

package network

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{"default limits are valid", DefLimits, false},
		{"empty limits are an error", Limits{}, true},
		{
			"invalid retries",
			Limits{
				Retries: 0,
				Search:  TierLimit{Burst: 1},
				Read:    TierLimit{Burst: 1},
				Mutate:  TierLimit{Burst: 1},
				Request: RequestLimit{Issues: 100},
			},
			true,
		},
		{
			"zero burst",
			Limits{
				Retries: 3,
				Search:  TierLimit{Burst: 0},
				Read:    TierLimit{Burst: 1},
				Mutate:  TierLimit{Burst: 1},
				Request: RequestLimit{Issues: 100},
			},
			true,
		},
		{
			"issues page size out of range",
			Limits{
				Retries: 3,
				Search:  TierLimit{Burst: 1},
				Read:    TierLimit{Burst: 1},
				Mutate:  TierLimit{Burst: 1},
				Request: RequestLimit{Issues: 5000},
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLimits_Validate_translations(t *testing.T) {
	t.Parallel()
	var l Limits
	err := l.Validate()
	require.Error(t, err)
	var vErr validator.ValidationErrors
	require.ErrorAs(t, err, &vErr)
	// every entry must have an english translation.
	for _, e := range vErr {
		assert.NotEmpty(t, e.Translate(ErrTranslations))
	}
}

func TestLimits_Apply(t *testing.T) {
	t.Parallel()
	t.Run("valid override is applied", func(t *testing.T) {
		l := DefLimits
		other := DefLimits
		other.Search.Boost = 60
		other.Request.Issues = 50

		require.NoError(t, l.Apply(other))
		assert.Equal(t, 60, l.Search.Boost)
		assert.Equal(t, 50, l.Request.Issues)
	})
	t.Run("invalid override leaves receiver unmodified", func(t *testing.T) {
		l := DefLimits
		require.Error(t, l.Apply(Limits{}))
		assert.Equal(t, DefLimits, l)
	})
}
