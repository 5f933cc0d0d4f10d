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

// In this file: API limits and their validation.

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Limits is the set of rate limits and retry counts applied to YouTrack API
// calls.  Use [DefLimits] as the starting point and [Limits.Apply] to
// override from a configuration file.
type Limits struct {
	// Retries is the number of attempts made on transient errors (HTTP 429
	// and recoverable server errors).
	Retries int `toml:"retries" validate:"gte=1,lte=10"`
	// Search is the limit for issue search calls.
	Search TierLimit `toml:"search" validate:"required"`
	// Read is the limit for single-entity reads (issue, project, user).
	Read TierLimit `toml:"read" validate:"required"`
	// Mutate is the limit for issue updates and comment creation.
	Mutate TierLimit `toml:"mutate" validate:"required"`
	// Request contains per-request paging limits.
	Request RequestLimit `toml:"per_request"`
}

// TierLimit adjusts the base tier allowance.
type TierLimit struct {
	// Boost is added to the tier events-per-minute value.  Negative values
	// slow the limiter down.
	Boost int `toml:"boost" validate:"gte=-50"`
	// Burst is the limiter burst in events per second.  Default value of 1
	// is safe.
	Burst uint `toml:"burst" validate:"gte=1"`
}

// RequestLimit defines the paging limits for requests that return
// collections.
type RequestLimit struct {
	// Issues is the maximum number of issues requested per search page
	// (the $top query parameter).
	Issues int `toml:"issues" validate:"gt=0,lte=1000"`
}

// DefLimits are the default limits, conservative enough not to trip the
// YouTrack Cloud throttling.
var DefLimits = Limits{
	Retries: 3,
	Search:  TierLimit{Boost: 0, Burst: 1},
	Read:    TierLimit{Boost: 0, Burst: 3},
	Mutate:  TierLimit{Boost: 0, Burst: 2},
	Request: RequestLimit{Issues: 100},
}

var (
	validate *validator.Validate
	// ErrTranslations is the english translations catalogue for the
	// validation errors returned by [Limits.Validate].
	ErrTranslations ut.Translator
)

func init() {
	validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	var ok bool
	ErrTranslations, ok = uni.GetTranslator("en")
	if !ok {
		panic("internal error: failed to init translator")
	}
	if err := entranslations.RegisterDefaultTranslations(validate, ErrTranslations); err != nil {
		panic("internal error: failed to register translations: " + err.Error())
	}
}

// Validate checks the limits for sanity.  The returned error, if not nil, is
// a [validator.ValidationErrors] that can be translated with
// [ErrTranslations].
func (o *Limits) Validate() error {
	return validate.Struct(o)
}

// Apply overrides the current limits with the other limits, and validates
// the result.  If the result fails validation, the receiver is left
// unmodified.
func (o *Limits) Apply(other Limits) error {
	if err := other.Validate(); err != nil {
		return err
	}
	*o = other
	return nil
}
