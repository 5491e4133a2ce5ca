package main

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListRooms(e echo.Context) error {
	token, ok := s.sessionToken(e)
	if !ok {
		return e.Redirect(302, "/")
	}

	rooms, err := s.oauth.Rooms(e.Request().Context(), token)
	if err != nil {
		slog.Debug("could not list rooms", "err", err)
		return e.Render(502, "error.html", map[string]any{
			"Message": "Your rooms could not be fetched from Webex.",
		})
	}

	return e.Render(200, "rooms.html", map[string]any{
		"Rooms": rooms,
	})
}
