package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oauth "github.com/webex-samples/webex-oauth-golang"
)

type fixture struct {
	s   *Server
	srv *httptest.Server

	tokenCalls atomic.Int64
	meCalls    atomic.Int64
	roomsCalls atomic.Int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{}

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		w.Write([]byte(`{"access_token":"T1","expires_in":1209600}`))
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/people/me":
			f.meCalls.Add(1)
			w.Write([]byte(`{"id":"P1","displayName":"Test User"}`))
		case "/rooms":
			f.roomsCalls.Add(1)
			w.Write([]byte(`{"items":[{"id":"R1","title":"General","type":"group"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(apiSrv.Close)

	oauthClient, err := oauth.NewClient(oauth.ClientArgs{
		AuthURL:      "https://webexapis.com/v1/authorize?client_id=C1&redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Foauth&scope=spark%3Aall",
		ClientSecret: "shhh",
		TokenURL:     tokenSrv.URL,
		APIBase:      apiSrv.URL,
	})
	require.NoError(t, err)

	s, err := newServer(&config{
		State:     "s1",
		PublicDir: t.TempDir(),
	}, oauthClient)
	require.NoError(t, err)

	f.s = s
	f.srv = httptest.NewServer(s.e)
	t.Cleanup(f.srv.Close)

	return f
}

// get issues a request without following redirects so that 302 targets can
// be asserted directly.
func (f *fixture) get(t *testing.T, path string, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest("GET", f.srv.URL+path, nil)
	require.NoError(t, err)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestRootRedirectsToIndex(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/", nil)

	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/index.html", resp.Header.Get("Location"))
}

func TestIndexWithoutTokenShowsLoginLink(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/index.html", nil)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "Log in with Webex")
	assert.Contains(t, body, "state=s1")
	assert.EqualValues(t, 0, f.meCalls.Load())
}

func TestListRoomsWithoutTokenRedirectsHome(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/listrooms", nil)

	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.EqualValues(t, 0, f.roomsCalls.Load())
}

func TestCallbackWithProviderErrorRendersMessage(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/oauth?error=invalid_scope", nil)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "scopes are invalid")
	assert.EqualValues(t, 0, f.tokenCalls.Load())
}

func TestCallbackWithMissingParams(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/oauth?code=abc", nil)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, body, "missing its code or state parameter")
	assert.EqualValues(t, 0, f.tokenCalls.Load())
}

func TestCallbackWithWrongState(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/oauth?code=abc&state=wrong", nil)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, body, "did not match the pending authorization request")
	assert.EqualValues(t, 0, f.tokenCalls.Load())
}

func TestFullLoginFlow(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/oauth?code=abc&state=s1", nil)

	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/index.html", resp.Header.Get("Location"))
	assert.EqualValues(t, 1, f.tokenCalls.Load())

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	resp, body := f.get(t, "/index.html", cookies)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "Welcome, Test User!")
	assert.EqualValues(t, 1, f.meCalls.Load())

	resp, body = f.get(t, "/listrooms", cookies)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, "General")
	assert.EqualValues(t, 1, f.roomsCalls.Load())
}

func TestLogoutDestroysSessionAndRedirects(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/oauth?code=abc&state=s1", nil)
	require.Equal(t, 302, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	resp, _ = f.get(t, "/logout", cookies)

	assert.Equal(t, 302, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "idbroker.webex.com", loc.Hostname())
	assert.Equal(t, "T1", loc.Query().Get("token"))

	// the server-side token is gone even if the old cookie is replayed
	resp, _ = f.get(t, "/listrooms", cookies)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogoutWithoutSessionStillRedirects(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/logout", nil)

	assert.Equal(t, 302, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "idbroker.webex.com", loc.Hostname())
	assert.Equal(t, "", loc.Query().Get("token"))
}
