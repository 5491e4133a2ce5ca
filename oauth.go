package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultTokenURL  = "https://webexapis.com/v1/access_token"
	DefaultAPIBase   = "https://webexapis.com/v1"
	DefaultLogoutURL = "https://idbroker.webex.com/idb/oauth2/v1/logout"
)

// Client drives the authorization-code exchange against a Webex-style
// provider and performs bearer-authed API calls with the resulting token.
type Client struct {
	h            *http.Client
	authURL      *url.URL
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	apiBase      string
	logoutURL    string
}

type ClientArgs struct {
	H *http.Client

	// AuthURL is the base authorization URL. Its query string must carry
	// client_id and redirect_uri; scope is optional.
	AuthURL      string
	ClientSecret string

	// Endpoint overrides. Zero values select the Webex production endpoints.
	TokenURL  string
	APIBase   string
	LogoutURL string
}

func NewClient(args ClientArgs) (*Client, error) {
	if args.AuthURL == "" {
		return nil, fmt.Errorf("no authorization url provided")
	}

	if args.ClientSecret == "" {
		return nil, fmt.Errorf("no client secret provided")
	}

	u, err := url.Parse(args.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse authorization url: %w", err)
	}

	q := u.Query()

	clientID := q.Get("client_id")
	if clientID == "" {
		return nil, fmt.Errorf("authorization url is missing the client_id parameter")
	}

	redirectURI := q.Get("redirect_uri")
	if redirectURI == "" {
		return nil, fmt.Errorf("authorization url is missing the redirect_uri parameter")
	}

	if args.H == nil {
		// No timeout on purpose: a hung downstream call parks the one
		// request goroutine without affecting the rest of the server.
		args.H = &http.Client{}
	}

	if args.TokenURL == "" {
		args.TokenURL = DefaultTokenURL
	}

	if args.APIBase == "" {
		args.APIBase = DefaultAPIBase
	}

	if args.LogoutURL == "" {
		args.LogoutURL = DefaultLogoutURL
	}

	return &Client{
		h:            args.H,
		authURL:      u,
		clientID:     clientID,
		clientSecret: args.ClientSecret,
		redirectURI:  redirectURI,
		tokenURL:     args.TokenURL,
		apiBase:      strings.TrimSuffix(args.APIBase, "/"),
		logoutURL:    args.LogoutURL,
	}, nil
}

// AuthURL returns the authorization URL with the state parameter set to the
// given value. The rest of the configured URL passes through untouched.
func (c *Client) AuthURL(state string) string {
	u := *c.authURL

	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()

	return u.String()
}

// HandleCallback validates the provider callback query and, when it passes,
// exchanges the authorization code for an access token. Checks run in order
// and short-circuit: a provider error, a missing code or state, or a state
// mismatch each fail before any network call is made.
func (c *Client) HandleCallback(ctx context.Context, query url.Values, expectedState string) (string, error) {
	if ec := query.Get("error"); ec != "" {
		return "", newProviderError(ec)
	}

	code := query.Get("code")
	state := query.Get("state")

	if code == "" || state == "" {
		return "", ErrMalformedCallback
	}

	if state != expectedState {
		return "", ErrStateMismatch
	}

	return c.exchangeCode(ctx, code)
}

func (c *Client) exchangeCode(ctx context.Context, code string) (string, error) {
	params := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"code":          {code},
		"redirect_uri":  {c.redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", &ExchangeError{Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.h.Do(req)
	if err != nil {
		return "", &ExchangeError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ExchangeError{Err: fmt.Errorf("token endpoint returned status %d", resp.StatusCode)}
	}

	var tokenResponse TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", &ExchangeError{Err: fmt.Errorf("could not decode token response: %w", err)}
	}

	if tokenResponse.AccessToken == "" {
		return "", &ExchangeError{Err: fmt.Errorf("token response contained no access_token")}
	}

	return tokenResponse.AccessToken, nil
}

// LogoutURL returns the provider logout endpoint with the given token
// appended, stale or not.
func (c *Client) LogoutURL(token string) string {
	u, err := url.Parse(c.logoutURL)
	if err != nil {
		return c.logoutURL
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String()
}
