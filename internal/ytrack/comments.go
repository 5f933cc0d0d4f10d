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

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
)

// DefCommentFields is the default projection returned for a created comment.
const DefCommentFields = "id,text,author(login)"

// ErrNoText is returned when the comment text is empty.
var ErrNoText = errors.New("comment text is empty")

// commentRequest is the body of the comment creation request.
type commentRequest struct {
	Text string `json:"text"`
}

// AddComment creates a comment with the given text on the issue, and returns
// the requested projection of the created comment.  Empty fields value
// requests DefCommentFields.
func (cl *Client) AddComment(ctx context.Context, issueID string, text string, fields string) (json.RawMessage, error) {
	if issueID == "" {
		return nil, ErrNoIssueID
	}
	if text == "" {
		return nil, ErrNoText
	}
	if fields == "" {
		fields = DefCommentFields
	}
	q := url.Values{"fields": []string{fields}}
	return cl.post(ctx, cl.limMutate, "issues/"+url.PathEscape(issueID)+"/comments", q, commentRequest{Text: text})
}
