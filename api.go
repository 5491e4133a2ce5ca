package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) get(ctx context.Context, endpoint, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.apiBase+endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request for %s: %w", endpoint, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.h.Do(req)
	if err != nil {
		return fmt.Errorf("could not get response from api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("received non-200 response from api. code was %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response body: %w", err)
	}

	return nil
}

// Me fetches the profile of the person the token belongs to. The response
// must carry a displayName; anything else is an *APIError.
func (c *Client) Me(ctx context.Context, token string) (*Person, error) {
	var person Person
	if err := c.get(ctx, "/people/me", token, &person); err != nil {
		return nil, &APIError{Endpoint: "/people/me", Err: err}
	}

	if person.DisplayName == "" {
		return nil, &APIError{Endpoint: "/people/me", Err: fmt.Errorf("response contained no displayName")}
	}

	return &person, nil
}

// Rooms lists the rooms the token's owner belongs to. Items come back as-is,
// without schema validation.
func (c *Client) Rooms(ctx context.Context, token string) ([]Room, error) {
	var list roomList
	if err := c.get(ctx, "/rooms", token, &list); err != nil {
		return nil, &APIError{Endpoint: "/rooms", Err: err}
	}

	return list.Items, nil
}
