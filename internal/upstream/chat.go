package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"ai-jobmatch/internal/domain/profile"
)

type chatRequest struct {
	Message     string           `json:"message"`
	UserProfile *profile.Profile `json:"user_profile,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// SendChat posts one user message together with the current profile and
// returns the assistant reply verbatim. An empty reply is not an error
// here; the caller decides how to present it.
func (c *Client) SendChat(ctx context.Context, message string, prof *profile.Profile) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message, UserProfile: prof})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/chat/"), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out chatResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}
