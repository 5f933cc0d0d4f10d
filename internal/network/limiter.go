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
	"time"

	"golang.org/x/time/rate"
)

// Tier is the base request allowance for a class of YouTrack API calls,
// defined in events per minute.  YouTrack does not publish fixed rate tiers,
// so these are conservative values that have proven safe on both Cloud and
// self-hosted instances.
type Tier int

const (
	// NoTier applies no meaningful throttling.
	NoTier Tier = 6000

	// TierSearch covers issue search, the most expensive call class.
	TierSearch Tier = 60
	// TierRead covers single-entity reads (issue, project, user).
	TierRead Tier = 240
	// TierMutate covers issue updates and comment creation.
	TierMutate Tier = 120
)

// NewLimiter returns throttler with rateLimit requests per minute.
// optionally caller may specify the boost
func NewLimiter(t Tier, burst uint, boost int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every(t, boost)), int(burst))
}

func every(t Tier, boost int) time.Duration {
	return time.Minute / time.Duration(int(t)+boost)
}
