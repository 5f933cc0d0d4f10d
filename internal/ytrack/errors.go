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

package ytrack

import "fmt"

// APIError is the structured error that YouTrack returns in the response
// body, i.e. {"error":"Not Found","error_description":"Entity with id X not
// found"}.
type APIError struct {
	StatusCode  int    `json:"-"`
	Err         string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("youtrack api error (HTTP %d): %s", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("youtrack api error (HTTP %d): %s: %s", e.StatusCode, e.Err, e.Description)
}
