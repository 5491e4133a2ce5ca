package oauth

// TokenResponse is the token endpoint's JSON body. Only the access token is
// consumed; the refresh fields arrive but are never persisted.
type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int    `json:"expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in"`
	TokenType             string `json:"token_type"`
}

// Person is the subset of /people/me this client cares about.
type Person struct {
	ID          string   `json:"id"`
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
	NickName    string   `json:"nickName"`
	OrgID       string   `json:"orgId"`
	Type        string   `json:"type"`
}

// Room is one entry of the /rooms listing, kept as an opaque attribute map.
// The demo renders whatever attributes the provider sends back.
type Room map[string]any

type roomList struct {
	Items []Room `json:"items"`
}
