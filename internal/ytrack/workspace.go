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

// In this file: project listing and token verification.

import (
	"context"
	"encoding/json"
	"net/url"
)

// Project is a YouTrack project.
type Project struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
}

// User is a YouTrack user profile.
type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"fullName"`
}

// Projects returns the projects visible to the token user.
func (cl *Client) Projects(ctx context.Context) ([]Project, error) {
	q := url.Values{"fields": []string{"id,shortName,name"}}
	raw, err := cl.get(ctx, cl.limRead, "admin/projects", q)
	if err != nil {
		return nil, err
	}
	var pp []Project
	if err := json.Unmarshal(raw, &pp); err != nil {
		return nil, err
	}
	return pp, nil
}

// Me returns the profile of the token user.  It is called on startup to
// verify that the URL and the token are usable.
func (cl *Client) Me(ctx context.Context) (User, error) {
	q := url.Values{"fields": []string{"id,login,fullName"}}
	raw, err := cl.get(ctx, cl.limRead, "users/me", q)
	if err != nil {
		return User{}, err
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
