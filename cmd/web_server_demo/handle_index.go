package main

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleIndex(e echo.Context) error {
	token, ok := s.sessionToken(e)
	if !ok {
		return e.Render(200, "index.html", map[string]any{
			"AuthURL": s.oauth.AuthURL(s.state),
		})
	}

	person, err := s.oauth.Me(e.Request().Context(), token)
	if err != nil {
		slog.Debug("could not fetch profile", "err", err)
		return e.Render(502, "error.html", map[string]any{
			"Message": "Your profile could not be fetched from Webex.",
		})
	}

	return e.Render(200, "index.html", map[string]any{
		"DisplayName": person.DisplayName,
	})
}
