package main

import (
	"errors"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	oauth "github.com/webex-samples/webex-oauth-golang"
)

func (s *Server) handleOAuthCallback(e echo.Context) error {
	token, err := s.oauth.HandleCallback(e.Request().Context(), e.QueryParams(), s.state)
	if err != nil {
		slog.Debug("oauth callback rejected", "err", err)
		return s.renderCallbackError(e, err)
	}

	sid, err := s.sessionID(e)
	if err != nil {
		return err
	}

	s.store.Put(sid, token)

	return e.Redirect(302, "/index.html")
}

func (s *Server) renderCallbackError(e echo.Context, err error) error {
	var pe *oauth.ProviderError
	if errors.As(err, &pe) {
		return e.Render(200, "error.html", map[string]any{
			"Message": "Authorization was not granted: " + pe.Description + ".",
		})
	}

	if errors.Is(err, oauth.ErrMalformedCallback) {
		return e.Render(400, "error.html", map[string]any{
			"Message": "The callback request was missing its code or state parameter.",
		})
	}

	if errors.Is(err, oauth.ErrStateMismatch) {
		return e.Render(400, "error.html", map[string]any{
			"Message": "The callback state did not match the pending authorization request.",
		})
	}

	return e.Render(502, "error.html", map[string]any{
		"Message": "The authorization code could not be exchanged for an access token.",
	})
}

func (s *Server) handleLogout(e echo.Context) error {
	sess, err := session.Get(sessionName, e)
	if err != nil {
		return err
	}

	var token string
	if sid, ok := sess.Values["sid"].(string); ok {
		token, _ = s.store.Get(sid)
		s.store.Delete(sid)
	}

	// the session dies even when the token is empty or stale
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}

	if err := sess.Save(e.Request(), e.Response()); err != nil {
		return err
	}

	return e.Redirect(302, s.oauth.LogoutURL(token))
}
