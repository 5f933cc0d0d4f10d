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

// In this file: issue search, read and update operations.

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Default field projections requested from YouTrack when the caller does not
// specify their own.  These match what an agent typically needs to identify
// and reason about an issue.
const (
	// DefSearchFields is the default projection for search results.
	DefSearchFields = "idReadable,summary,project(shortName)"
	// DefIssueFields is the default projection for a single issue,
	// including custom field values.
	DefIssueFields = "idReadable,summary,description,project(shortName)," +
		"customFields(projectCustomField(field(name)),value(name,login,fullName,text))"
	// DefUpdateFields is the default projection returned after an update.
	DefUpdateFields = "idReadable,summary"
)

// Search paging bounds for the $top parameter.
const (
	DefTop = 100
	MinTop = 1
	MaxTop = 1000
)

// SearchParams are the parameters for [Client.SearchIssues].  Zero values
// are replaced with the defaults.
type SearchParams struct {
	// Query is the search query in the YouTrack query syntax, i.e.
	// "project: PROJ #Unresolved".
	Query string
	// Fields is the comma separated list of fields to return for each
	// issue.  Empty value requests DefSearchFields.
	Fields string
	// CustomFields is an additional comma separated list of custom fields
	// to include; appended to Fields.
	CustomFields string
	// Top is the maximum number of issues to return, clamped to
	// [MinTop, MaxTop].
	Top int
	// Skip is the number of issues to skip from the beginning of the
	// results.
	Skip int
}

// normalised returns a copy of p with defaults applied and Top clamped.
func (p SearchParams) normalised() SearchParams {
	if p.Fields == "" {
		p.Fields = DefSearchFields
	}
	if p.Top == 0 {
		p.Top = DefTop
	}
	p.Top = max(min(p.Top, MaxTop), MinTop)
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// SearchIssues searches for issues using the YouTrack query syntax, and
// returns the raw JSON array of matching issues.
func (cl *Client) SearchIssues(ctx context.Context, p SearchParams) (json.RawMessage, error) {
	p = p.normalised()
	q := url.Values{
		"query":  []string{p.Query},
		"fields": []string{joinFields(p.Fields, p.CustomFields)},
		"$top":   []string{strconv.Itoa(p.Top)},
		"$skip":  []string{strconv.Itoa(p.Skip)},
	}
	return cl.get(ctx, cl.limSearch, "issues", q)
}

// GetIssue returns the issue with the given readable ID (i.e. "PROJ-123")
// as a raw JSON object.  Empty fields value requests DefIssueFields.
func (cl *Client) GetIssue(ctx context.Context, issueID string, fields string, customFields string) (json.RawMessage, error) {
	if issueID == "" {
		return nil, ErrNoIssueID
	}
	if fields == "" {
		fields = DefIssueFields
	}
	q := url.Values{"fields": []string{joinFields(fields, customFields)}}
	return cl.get(ctx, cl.limRead, "issues/"+url.PathEscape(issueID), q)
}

// UpdateIssue applies a partial update to the issue.  data maps field names
// to their new values, i.e. {"summary": "New summary"}; custom fields use
// the value shape YouTrack expects ({"name": ...} for enums, {"login": ...}
// for users).  Returns the requested projection of the updated issue;
// empty fields value requests DefUpdateFields.
func (cl *Client) UpdateIssue(ctx context.Context, issueID string, data map[string]any, fields string) (json.RawMessage, error) {
	if issueID == "" {
		return nil, ErrNoIssueID
	}
	if fields == "" {
		fields = DefUpdateFields
	}
	q := url.Values{"fields": []string{fields}}
	return cl.post(ctx, cl.limMutate, "issues/"+url.PathEscape(issueID), q, data)
}
