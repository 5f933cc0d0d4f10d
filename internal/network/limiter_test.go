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
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_every(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		tier  Tier
		boost int
		want  time.Duration
	}{
		{"search, no boost", TierSearch, 0, time.Second},
		{"read, no boost", TierRead, 0, 250 * time.Millisecond},
		{"mutate, no boost", TierMutate, 0, 500 * time.Millisecond},
		{"search with boost", TierSearch, 60, 500 * time.Millisecond},
		{"negative boost slows down", TierMutate, -60, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, every(tt.tier, tt.boost))
		})
	}
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()
	l := NewLimiter(TierRead, 3, 0)
	assert.Equal(t, 3, l.Burst())
	assert.InDelta(t, 4.0, float64(l.Limit()), 0.01) // 240 per minute
}
